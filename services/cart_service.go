package services

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// DecrementPolicy: กด - ตอน qty = 1 แล้วเกิดอะไร
// kiosk บล็อกไว้ (no-op), waiter ลบ line ทิ้ง — ทั้งสองแบบตั้งใจ ไม่รวมเป็นแบบเดียว
type DecrementPolicy string

const (
	DecrementPolicyBlock  DecrementPolicy = "block"
	DecrementPolicyRemove DecrementPolicy = "remove"
)

func DecrementPolicyForMode(mode string) DecrementPolicy {
	if mode == entity.CartModeWaiter {
		return DecrementPolicyRemove
	}
	return DecrementPolicyBlock
}

var (
	ErrItemUnavailable = errors.New("menu item unavailable")
	ErrInvalidToppings = errors.New("invalid toppings for this menu item")
	ErrNotCustomizable = errors.New("menu item is not customizable")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrLineNotFound    = errors.New("cart line not found")
)

// SelectionError รวม message ต่อ category ที่ไม่ผ่าน
type SelectionError struct{ Messages []string }

func (e *SelectionError) Error() string { return strings.Join(e.Messages, "; ") }

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	MenuRepo    *repository.MenuRepository
	ToppingRepo *repository.ToppingRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, tr *repository.ToppingRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, ToppingRepo: tr}
}

type AddToCartIn struct {
	MenuItemID uint          `json:"menuItemId" binding:"required"`
	Mode       string        `json:"mode" binding:"omitempty,oneof=kiosk waiter"`
	Note       string        `json:"note"`
	Picks      []ToppingPick `json:"picks"`
}

type AddToCartOut struct {
	Merged bool // true = รวมกับ line เดิม (item updated), false = line ใหม่ (item added)
}

func (s *CartService) Get(tenantID, deviceID string) (*entity.Cart, int64, error) {
	c, err := s.CartRepo.GetCartWithLines(tenantID, deviceID)
	if err != nil {
		return nil, 0, err
	}
	var subtotal int64
	for _, l := range c.Lines {
		subtotal += l.Total
	}
	return c, subtotal, nil
}

func (s *CartService) Add(tenantID, deviceID string, in *AddToCartIn) (*AddToCartOut, error) {
	m, err := s.MenuRepo.GetItemBasics(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !m.Available {
		return nil, ErrItemUnavailable
	}

	picks := make(map[uint]int, len(in.Picks))
	for _, p := range in.Picks {
		picks[p.ToppingID] += p.Qty
	}

	var selRows []entity.CartLineTopping
	if len(picks) > 0 {
		if !m.Customizable {
			return nil, ErrNotCustomizable
		}
		ids := make([]uint, 0, len(picks))
		for id := range picks {
			ids = append(ids, id)
		}
		cnt, err := s.ToppingRepo.CountToppingsBelongToMenuItem(m.ID, ids)
		if err != nil {
			return nil, err
		}
		if cnt != int64(len(ids)) {
			return nil, ErrInvalidToppings
		}
	}

	// validate ตามข้อจำกัด min/max ของทุก category ของเมนูนี้
	if m.Customizable {
		cats, err := s.ToppingRepo.FindByMenuItem(m.ID)
		if err != nil {
			return nil, err
		}
		if msgs := ValidateSelections(cats, picks); len(msgs) > 0 {
			return nil, &SelectionError{Messages: msgs}
		}
		// snapshot ชื่อกับราคาตามลำดับ category/topping ใน catalog
		order := 0
		for _, cat := range cats {
			for _, t := range cat.Toppings {
				q := picks[t.ID]
				if q <= 0 {
					continue
				}
				selRows = append(selRows, entity.CartLineTopping{
					ToppingID: t.ID, Name: t.Name, Price: t.Price, Qty: q, SortOrder: order,
				})
				order++
			}
		}
	}

	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, in.Mode)
	if err != nil {
		return nil, err
	}

	unit := LineUnitPrice(m.Price, selRows)
	line := &entity.CartLine{
		MenuItemID: m.ID, Qty: 1, UnitPrice: unit, Total: unit, Note: in.Note,
		ToppingKey: toppingKey(selRows), Toppings: selRows,
	}

	out := &AddToCartOut{}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		merged, err := s.CartRepo.UpsertLine(tx, c.ID, line)
		if err != nil {
			return err
		}
		out.Merged = merged
		return s.CartRepo.SetOpen(tx, c.ID, true)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) Increment(tenantID, deviceID string, lineID uint) error {
	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, "")
	if err != nil {
		return err
	}
	line, err := s.CartRepo.GetLine(c.ID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateLineQty(tx, c.ID, line.ID, line.Qty+1)
	})
}

func (s *CartService) Decrement(tenantID, deviceID string, lineID uint) error {
	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, "")
	if err != nil {
		return err
	}
	line, err := s.CartRepo.GetLine(c.ID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return err
	}

	if line.Qty <= 1 {
		switch DecrementPolicyForMode(c.Mode) {
		case DecrementPolicyRemove:
			return s.DB.Transaction(func(tx *gorm.DB) error {
				return s.CartRepo.RemoveLine(tx, c.ID, line.ID)
			})
		default:
			// kiosk: คงไว้ที่ 1
			return nil
		}
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateLineQty(tx, c.ID, line.ID, line.Qty-1)
	})
}

func (s *CartService) SetNote(tenantID, deviceID string, lineID uint, note string) error {
	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, "")
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetLineNote(tx, c.ID, lineID, note)
	})
}

func (s *CartService) RemoveLine(tenantID, deviceID string, lineID uint) error {
	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, "")
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveLine(tx, c.ID, lineID)
	})
}

func (s *CartService) Clear(tenantID, deviceID string) error {
	c, err := s.CartRepo.GetOrCreateCart(tenantID, deviceID, "")
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, c.ID)
	})
}

// toppingKey = topping ids แบบ distinct เรียงแล้ว ใช้เทียบว่า set เดียวกันไหม
// (qty ไม่เกี่ยว เทียบแค่ presence)
func toppingKey(rows []entity.CartLineTopping) string {
	if len(rows) == 0 {
		return ""
	}
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, int(r.ToppingID))
	}
	sort.Ints(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ",")
}
