package services

import (
	"path/filepath"
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.SetupJoinTable(&entity.MenuItem{}, "ToppingCategories", &entity.MenuItemToppingCategory{}))
	require.NoError(t, db.SetupJoinTable(&entity.ToppingCategory{}, "MenuItems", &entity.MenuItemToppingCategory{}))
	require.NoError(t, db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemToppingCategory{},
		&entity.ToppingCategory{}, &entity.Topping{},
		&entity.Cart{}, &entity.CartLine{}, &entity.CartLineTopping{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemTopping{},
		&entity.PrintJob{},
		&entity.SettingsRow{},
	))
	return db
}

type fixture struct {
	burger  entity.MenuItem // customizable, 10.00
	cola    entity.MenuItem // plain, 3.50
	extras  entity.ToppingCategory
	sauce   entity.ToppingCategory // required, min 1 max 1
	cheese  entity.Topping         // 1.50, max 2
	bacon   entity.Topping         // 2.50, max 2
	ketchup entity.Topping         // 0.00, max 1
}

func seedCatalog(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	cat := entity.MenuCategory{Name: "Food"}
	require.NoError(t, db.Create(&cat).Error)

	f.extras = entity.ToppingCategory{Name: "Extras", MaxSelect: 2}
	require.NoError(t, db.Create(&f.extras).Error)
	f.sauce = entity.ToppingCategory{Name: "Sauce", MinSelect: 1, MaxSelect: 1, IsRequired: true}
	require.NoError(t, db.Create(&f.sauce).Error)

	f.cheese = entity.Topping{ToppingCategoryID: f.extras.ID, Name: "Cheese", Price: 150, MaxQty: 2, IsAvailable: true}
	require.NoError(t, db.Create(&f.cheese).Error)
	f.bacon = entity.Topping{ToppingCategoryID: f.extras.ID, Name: "Bacon", Price: 250, MaxQty: 2, IsAvailable: true}
	require.NoError(t, db.Create(&f.bacon).Error)
	f.ketchup = entity.Topping{ToppingCategoryID: f.sauce.ID, Name: "Ketchup", Price: 0, MaxQty: 1, IsAvailable: true}
	require.NoError(t, db.Create(&f.ketchup).Error)

	f.burger = entity.MenuItem{Name: "Burger", Price: 1000, Customizable: true, Available: true, MenuCategoryID: cat.ID}
	require.NoError(t, db.Create(&f.burger).Error)
	require.NoError(t, db.Create(&entity.MenuItemToppingCategory{MenuItemID: f.burger.ID, ToppingCategoryID: f.extras.ID, SortOrder: 0}).Error)
	require.NoError(t, db.Create(&entity.MenuItemToppingCategory{MenuItemID: f.burger.ID, ToppingCategoryID: f.sauce.ID, SortOrder: 1}).Error)

	f.cola = entity.MenuItem{Name: "Cola", Price: 350, Available: true, MenuCategoryID: cat.ID}
	require.NoError(t, db.Create(&f.cola).Error)

	return f
}
