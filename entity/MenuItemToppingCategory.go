package entity

type MenuItemToppingCategory struct {
	MenuItemID        uint `gorm:"primaryKey" json:"menuItemId"`
	ToppingCategoryID uint `gorm:"primaryKey" json:"toppingCategoryId"`
	SortOrder         int  `gorm:"not null;default:0" json:"sortOrder"`
}
