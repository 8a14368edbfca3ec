package entity

import (
	"gorm.io/gorm"
)

type OrderItemTopping struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"` // ไม่ serialize กลับ เพื่อเลี่ยง loop

	ToppingID uint    `json:"toppingId"`
	Topping   Topping `json:"-"`

	Name  string `json:"name"`
	Price int64  `json:"price"` // snapshot
	Qty   int    `json:"qty"`
}
