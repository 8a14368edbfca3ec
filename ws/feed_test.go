package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev := <-sub.C:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSubscribeFiltersByTable(t *testing.T) {
	h := NewFeedHub()
	sub := h.Subscribe([]string{"orders"}, EventAny)
	defer sub.Close()

	h.Publish("menu_items", EventInsert, nil)
	h.Publish("orders", EventInsert, map[string]any{"id": 1})

	ev := recvEvent(t, sub)
	assert.Equal(t, "orders", ev.Table)
	assert.Equal(t, EventInsert, ev.Type)
}

func TestSubscribeFiltersByEventType(t *testing.T) {
	h := NewFeedHub()
	sub := h.Subscribe([]string{"orders"}, EventUpdate)
	defer sub.Close()

	h.Publish("orders", EventInsert, nil)
	h.Publish("orders", EventUpdate, nil)

	ev := recvEvent(t, sub)
	assert.Equal(t, EventUpdate, ev.Type)
	select {
	case ev, ok := <-sub.C:
		if ok {
			t.Fatalf("unexpected extra event: %+v", ev)
		}
	default:
	}
}

func TestSubscribeAllTables(t *testing.T) {
	h := NewFeedHub()
	sub := h.Subscribe(nil, EventAny)
	defer sub.Close()

	h.Publish("settings", EventUpdate, nil)
	ev := recvEvent(t, sub)
	assert.Equal(t, "settings", ev.Table)
}

func TestCloseStopsDelivery(t *testing.T) {
	h := NewFeedHub()
	sub := h.Subscribe(nil, EventAny)
	sub.Close()
	sub.Close() // idempotent

	// channel ปิดแล้ว
	_, ok := <-sub.C
	require.False(t, ok)

	// publish หลังปิดไม่ panic
	h.Publish("orders", EventInsert, nil)
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	h := NewFeedHub()
	sub := h.Subscribe(nil, EventAny)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Publish("orders", EventInsert, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on full subscriber buffer")
	}
}
