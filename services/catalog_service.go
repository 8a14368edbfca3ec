package services

import (
	"log"
	"sync"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/ws"
)

// CatalogService อ่าน reference data (เมนู + toppings) และถือ cache ไว้หนึ่งชุด
// feed event จาก table เมนู → refresh แบบ debounce ~1s
// refresh พังก็เก็บของเก่าไว้ ไม่เคลียร์ทิ้ง
type CatalogService struct {
	MenuRepo    *repository.MenuRepository
	ToppingRepo *repository.ToppingRepository

	mu         sync.Mutex
	categories []entity.MenuCategory
	items      []entity.MenuItem

	sub      *ws.Subscription
	debounce *time.Timer
	done     chan struct{}
}

const catalogDebounce = time.Second

func NewCatalogService(mr *repository.MenuRepository, tr *repository.ToppingRepository) *CatalogService {
	return &CatalogService{MenuRepo: mr, ToppingRepo: tr, done: make(chan struct{})}
}

// Start โหลด snapshot แรกและเริ่มฟัง feed; คู่กับ Stop ตอน shutdown
func (s *CatalogService) Start(feed *ws.FeedHub) {
	s.refresh()
	s.sub = feed.Subscribe([]string{"menu_categories", "menu_items", "topping_categories", "toppings"}, ws.EventAny)
	go func() {
		for {
			select {
			case _, ok := <-s.sub.C:
				if !ok {
					return
				}
				s.scheduleRefresh()
			case <-s.done:
				return
			}
		}
	}()
}

func (s *CatalogService) Stop() {
	s.mu.Lock()
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.mu.Unlock()
	if s.sub != nil {
		s.sub.Close()
	}
	close(s.done)
}

// event รัว ๆ (เช่น migration/seed) นับเป็น refresh เดียว
func (s *CatalogService) scheduleRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(catalogDebounce, s.refresh)
}

func (s *CatalogService) refresh() {
	cats, err := s.MenuRepo.ListCategories()
	if err != nil {
		log.Printf("catalog refresh failed (keeping stale data): %v", err)
		return
	}
	items, err := s.MenuRepo.ListItems(0)
	if err != nil {
		log.Printf("catalog refresh failed (keeping stale data): %v", err)
		return
	}
	s.mu.Lock()
	s.categories = cats
	s.items = items
	s.mu.Unlock()
}

// Snapshot คืน cache ปัจจุบัน (copy slice header พอ entity อ่านอย่างเดียว)
func (s *CatalogService) Snapshot() ([]entity.MenuCategory, []entity.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories, s.items
}

// ---- reads ตรงจาก DB สำหรับ endpoint ปกติ ----

func (s *CatalogService) ListCategories() ([]entity.MenuCategory, error) {
	return s.MenuRepo.ListCategories()
}

func (s *CatalogService) ListItems(categoryID uint) ([]entity.MenuItem, error) {
	return s.MenuRepo.ListItems(categoryID)
}

func (s *CatalogService) GetItem(id uint) (*entity.MenuItem, error) {
	return s.MenuRepo.GetItem(id)
}

// topping catalog ของเมนูหนึ่งตัว — pure read, ไม่ cache ข้าม request
func (s *CatalogService) ToppingsForItem(menuItemID uint) ([]entity.ToppingCategory, error) {
	if _, err := s.MenuRepo.GetItemBasics(menuItemID); err != nil {
		return nil, err
	}
	return s.ToppingRepo.FindByMenuItem(menuItemID)
}

// CheckToppingIncrement ให้หน้า customize ถามก่อนกด + จริง:
// เกิน MaxQty ของ topping หรือเกิน MaxSelect ของ category → error
func (s *CatalogService) CheckToppingIncrement(menuItemID, toppingID uint, picks map[uint]int) error {
	cats, err := s.ToppingRepo.FindByMenuItem(menuItemID)
	if err != nil {
		return err
	}
	for _, cat := range cats {
		for _, t := range cat.Toppings {
			if t.ID != toppingID {
				continue
			}
			// นับเฉพาะ picks ใน category เดียวกัน
			catPicks := make(map[uint]int, len(cat.Toppings))
			for _, ct := range cat.Toppings {
				if q := picks[ct.ID]; q > 0 {
					catPicks[ct.ID] = q
				}
			}
			return CheckIncrement(t, cat, catPicks)
		}
	}
	return ErrInvalidToppings
}
