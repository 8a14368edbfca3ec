package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
	Note      string `json:"note"`
	Name      string `json:"name"` // snapshot ชื่อเมนูตอนสั่ง

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"` // preload แค่ตอนต้องการ order detail

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Toppings []OrderItemTopping `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toppings"`
}
