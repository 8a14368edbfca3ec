package entity

import (
	"gorm.io/gorm"
)

type ToppingCategory struct {
	gorm.Model
	Name       string `json:"name"`
	MinSelect  int    `json:"minSelect"`
	MaxSelect  int    `json:"maxSelect"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`

	// preload toppings บ่อย → keep
	Toppings []Topping `json:"toppings"`

	// ไม่จำเป็นต้องส่ง relation กลับ
	MenuItems []MenuItem `gorm:"many2many:menu_item_topping_categories;" json:"-"`
}
