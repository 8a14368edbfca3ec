package entity

import (
	"gorm.io/gorm"
)

type CartLine struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshot: base + topping deltas
	Total     int64  `json:"total"`
	Note      string `json:"note"`

	// สรุป topping ids แบบเรียงแล้ว ใช้หา line ที่ merge ได้
	ToppingKey string `gorm:"index" json:"-"`

	Toppings []CartLineTopping `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
}
