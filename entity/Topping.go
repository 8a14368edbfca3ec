package entity

import (
	"gorm.io/gorm"
)

type Topping struct {
	gorm.Model
	ToppingCategoryID uint            `json:"toppingCategoryId"`
	ToppingCategory   ToppingCategory `json:"-"`

	Name        string `json:"name"`
	Price       int64  `json:"price"` // minor units
	MaxQty      int    `gorm:"not null;default:1" json:"maxQty"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
	SortOrder   int    `json:"sortOrder"`
}
