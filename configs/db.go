package configs

import (
	"backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// join table มีคอลัมน์ sort_order ของตัวเอง ต้อง register ก่อน migrate
	db.SetupJoinTable(&entity.MenuItem{}, "ToppingCategories", &entity.MenuItemToppingCategory{})
	db.SetupJoinTable(&entity.ToppingCategory{}, "MenuItems", &entity.MenuItemToppingCategory{})

	// Migrate the schema
	db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemToppingCategory{},
		&entity.ToppingCategory{}, &entity.Topping{},
		&entity.Cart{}, &entity.CartLine{}, &entity.CartLineTopping{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemTopping{},
		&entity.PrintJob{},
		&entity.SettingsRow{},
	)
}
