package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name    string `json:"name"`
	Detail  string `json:"detail"`
	Price   int64  `json:"price"` // minor units
	Picture string `json:"picture"`

	Customizable bool `json:"customizable"`
	Available    bool `gorm:"default:true" json:"available"`
	SortOrder    int  `gorm:"not null;default:0" json:"sortOrder"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"` // preload เฉพาะตอน detail

	ToppingCategories []ToppingCategory `gorm:"many2many:menu_item_topping_categories;" json:"-"`
	OrderItems        []OrderItem       `json:"-"`
}
