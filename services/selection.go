package services

import (
	"errors"
	"fmt"

	"backend/entity"
)

var (
	ErrMaxQtyReached      = errors.New("max quantity reached")
	ErrCategoryMaxReached = errors.New("category max reached")
)

// ToppingPick คือจำนวนที่เลือกต่อ topping ตอน customize เมนู
type ToppingPick struct {
	ToppingID uint `json:"toppingId" binding:"required"`
	Qty       int  `json:"qty" binding:"min=1"`
}

// CheckIncrement ตัดสินว่ากด + ได้ไหม ก่อน caller จะ apply จริง
// picks = qty ปัจจุบันต่อ topping id (เฉพาะใน category เดียวกัน)
func CheckIncrement(t entity.Topping, cat entity.ToppingCategory, picks map[uint]int) error {
	if picks[t.ID]+1 > t.MaxQty {
		return ErrMaxQtyReached
	}
	// topping ใหม่ (qty 0) นับเป็น distinct ตัวที่ n+1
	if picks[t.ID] == 0 && cat.MaxSelect > 0 {
		selected := 0
		for _, q := range picks {
			if q > 0 {
				selected++
			}
		}
		if selected+1 > cat.MaxSelect {
			return ErrCategoryMaxReached
		}
	}
	return nil
}

// ValidateSelections ตรวจก่อน finalize line:
// - qty ต่อ topping ไม่เกิน MaxQty
// - distinct ต่อ category ไม่เกิน MaxSelect
// - category ที่ required ต้องเลือกอย่างน้อย MinSelect
// คืน error message ต่อ category ที่ไม่ผ่าน ไม่หยุดที่ตัวแรก
func ValidateSelections(cats []entity.ToppingCategory, picks map[uint]int) []string {
	var msgs []string
	for _, cat := range cats {
		selected := 0
		for _, t := range cat.Toppings {
			q := picks[t.ID]
			if q <= 0 {
				continue
			}
			if q > t.MaxQty {
				msgs = append(msgs, fmt.Sprintf("%s: %s allows at most %d", cat.Name, t.Name, t.MaxQty))
			}
			selected++
		}
		if cat.MaxSelect > 0 && selected > cat.MaxSelect {
			msgs = append(msgs, fmt.Sprintf("%s: select at most %d", cat.Name, cat.MaxSelect))
		}
		if cat.IsRequired && selected < cat.MinSelect {
			msgs = append(msgs, fmt.Sprintf("%s: select at least %d", cat.Name, cat.MinSelect))
		}
	}
	return msgs
}
