package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDefault     Kind = "default"
	KindDestructive Kind = "destructive"
)

// Viewport ของ display ที่แสดง toast — กำหนดเวลาที่ค้างบนจอ
type Viewport string

const (
	ViewportMobile  Viewport = "mobile"
	ViewportDesktop Viewport = "desktop"
)

type Toast struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Listener func([]Toast)

// Store คือ notification queue แบบ inject ไม่ใช่ global:
// - limit จำกัดจำนวนที่โชว์พร้อมกัน (default 1) ตัวใหม่เบียดตัวเก่าออก
// - Dismiss แค่ mark ปิด (Open=false) ตัว toast หลุดจาก list เมื่อ timer หมด
type Store struct {
	mu        sync.Mutex
	limit     int
	durations map[Viewport]time.Duration
	toasts    []Toast
	timers    map[string]*time.Timer
	listeners map[int]Listener
	nextKey   int
	closed    bool
}

type Options struct {
	Limit           int
	MobileDuration  time.Duration
	DesktopDuration time.Duration
}

func NewStore(opts Options) *Store {
	if opts.Limit <= 0 {
		opts.Limit = 1
	}
	if opts.MobileDuration <= 0 {
		opts.MobileDuration = 3 * time.Second
	}
	if opts.DesktopDuration <= 0 {
		opts.DesktopDuration = 5 * time.Second
	}
	return &Store{
		limit: opts.Limit,
		durations: map[Viewport]time.Duration{
			ViewportMobile:  opts.MobileDuration,
			ViewportDesktop: opts.DesktopDuration,
		},
		timers:    make(map[string]*time.Timer),
		listeners: make(map[int]Listener),
	}
}

// SetLimit ให้ settings แก้จำนวน slot ได้ตอน runtime
func (s *Store) SetLimit(limit int) {
	if limit <= 0 {
		return
	}
	s.mu.Lock()
	s.limit = limit
	s.mu.Unlock()
}

func (s *Store) Push(kind Kind, title, description string, vp Viewport) string {
	d, ok := s.durations[vp]
	if !ok {
		d = s.durations[ViewportDesktop]
	}

	t := Toast{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: description,
		Open:        true,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return t.ID
	}
	// ใหม่สุดอยู่หน้าสุด ตัวที่เกิน limit ถูกตัดทิ้งเลย
	s.toasts = append([]Toast{t}, s.toasts...)
	for len(s.toasts) > s.limit {
		last := s.toasts[len(s.toasts)-1]
		s.toasts = s.toasts[:len(s.toasts)-1]
		if tm, ok := s.timers[last.ID]; ok {
			tm.Stop()
			delete(s.timers, last.ID)
		}
	}
	s.timers[t.ID] = time.AfterFunc(d, func() { s.remove(t.ID) })
	s.mu.Unlock()

	s.notify()
	return t.ID
}

// Dismiss ปิดก่อนเวลา: mark Open=false แล้วรอ timer เก็บออกจริง
func (s *Store) Dismiss(id string) {
	s.mu.Lock()
	for i := range s.toasts {
		if s.toasts[i].ID == id {
			s.toasts[i].Open = false
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	out := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.toasts = out
	delete(s.timers, id)
	s.mu.Unlock()
	s.notify()
}

func (s *Store) List() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Subscribe คืน unsubscribe func; listener ถูกเรียกทุกครั้งที่ list เปลี่ยน
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	key := s.nextKey
	s.nextKey++
	s.listeners[key] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, key)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	snapshot := make([]Toast, len(s.toasts))
	copy(snapshot, s.toasts)
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(snapshot)
	}
}

// Close หยุด timer ทั้งหมด (ใช้ตอน shutdown และในเทสต์)
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	for id, tm := range s.timers {
		tm.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
}
