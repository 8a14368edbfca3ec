package ws

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Row-change feed: service ฝั่งเขียน publish event ต่อ table
// subscriber เลือก table + ชนิด event ได้ (INSERT/UPDATE/DELETE หรือ *)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"
	EventAny    = "*"
)

type Event struct {
	Table   string    `json:"table"`
	Type    string    `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// Subscription คือ handle ที่ caller ต้องปิดเองตอนเลิกใช้
type Subscription struct {
	C chan Event

	hub       *FeedHub
	tables    map[string]bool // ว่าง = ทุก table
	eventType string
	closeOnce sync.Once
}

func (s *Subscription) matches(ev Event) bool {
	if len(s.tables) > 0 && !s.tables[ev.Table] {
		return false
	}
	return s.eventType == EventAny || s.eventType == ev.Type
}

func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.unsubscribe(s)
	})
}

type FeedHub struct {
	mu   sync.Mutex
	subs map[*Subscription]bool
}

func NewFeedHub() *FeedHub {
	return &FeedHub{subs: make(map[*Subscription]bool)}
}

func (h *FeedHub) Subscribe(tables []string, eventType string) *Subscription {
	if eventType == "" {
		eventType = EventAny
	}
	sub := &Subscription{
		C:         make(chan Event, 16),
		hub:       h,
		tables:    make(map[string]bool, len(tables)),
		eventType: eventType,
	}
	for _, t := range tables {
		if t != "" {
			sub.tables[t] = true
		}
	}
	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()
	return sub
}

func (h *FeedHub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	if h.subs[sub] {
		delete(h.subs, sub)
		close(sub.C)
	}
	h.mu.Unlock()
}

// Publish ไม่ block: subscriber ที่ buffer เต็มจะพลาด event นั้นไป
// (ฝั่ง consume ใช้ debounce refresh อยู่แล้ว)
func (h *FeedHub) Publish(table, eventType string, payload any) {
	ev := Event{Table: table, Type: eventType, Payload: payload, At: time.Now()}
	h.mu.Lock()
	for sub := range h.subs {
		if !sub.matches(ev) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
		}
	}
	h.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/feed?tables=orders,menu_items&event=INSERT
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	var tables []string
	if raw := c.Query("tables"); raw != "" {
		tables = strings.Split(raw, ",")
	}
	eventType := c.Query("event")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := h.Subscribe(tables, eventType)

	// อ่านทิ้งไว้เฉย ๆ เพื่อรู้ว่า client หลุดเมื่อไหร่
	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer conn.Close()
		for ev := range sub.C {
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("ws write error: %v", err)
				sub.Close()
				return
			}
		}
	}()
}
