package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	Name      string `json:"name"`
	SortOrder int    `gorm:"not null;default:0" json:"sortOrder"`

	Items []MenuItem `json:"-"`
}
