package entity

import (
	"gorm.io/gorm"
)

type CartLineTopping struct {
	gorm.Model
	CartLineID uint     `json:"cartLineId"`
	CartLine   CartLine `json:"-"`

	ToppingID uint    `json:"toppingId"`
	Topping   Topping `json:"-"`

	// snapshot ตอนเลือก ไม่อ้างราคาปัจจุบัน
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	SortOrder int    `json:"sortOrder"`
}
