package configs

import (
	"encoding/json"
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.Admin{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
	}
	return db.Create(&admin).Error
}

// Seed เมนูตัวอย่าง + settings เริ่มต้น (เฉพาะ DB ว่าง)
func SeedDemo(tenantID string) error {
	db := DB()

	var count int64
	if err := db.Model(&entity.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		burgers := entity.MenuCategory{Name: "Burgers", SortOrder: 1}
		drinks := entity.MenuCategory{Name: "Drinks", SortOrder: 2}
		db.Create(&burgers)
		db.Create(&drinks)

		extras := entity.ToppingCategory{
			Name: "Extras", MinSelect: 0, MaxSelect: 3, SortOrder: 1,
			Toppings: []entity.Topping{
				{Name: "Cheese", Price: 150, MaxQty: 2, SortOrder: 1},
				{Name: "Bacon", Price: 250, MaxQty: 2, SortOrder: 2},
				{Name: "Pickles", Price: 50, MaxQty: 1, SortOrder: 3},
			},
		}
		sauce := entity.ToppingCategory{
			Name: "Sauce", MinSelect: 1, MaxSelect: 1, IsRequired: true, SortOrder: 2,
			Toppings: []entity.Topping{
				{Name: "Ketchup", Price: 0, MaxQty: 1, SortOrder: 1},
				{Name: "BBQ", Price: 0, MaxQty: 1, SortOrder: 2},
			},
		}
		db.Create(&extras)
		db.Create(&sauce)

		classic := entity.MenuItem{
			Name: "Classic Burger", Price: 1000, Customizable: true,
			MenuCategoryID: burgers.ID, SortOrder: 1,
			ToppingCategories: []entity.ToppingCategory{extras, sauce},
		}
		cola := entity.MenuItem{
			Name: "Cola", Price: 350, MenuCategoryID: drinks.ID, SortOrder: 1,
		}
		db.Create(&classic)
		db.Create(&cola)
	}

	// default settings ต่อ kind ถ้ายังไม่มี
	defaults := map[string]any{
		entity.SettingsKindPrinting:      entity.PrintingSettings{Copies: 1},
		entity.SettingsKindNotifications: entity.NotificationSettings{SoundEnabled: true, ToastLimit: 1, MobileSeconds: 3, DesktopSeconds: 5},
		entity.SettingsKindAppearance:    entity.AppearanceSettings{Theme: "system"},
	}
	for kind, v := range defaults {
		raw, _ := json.Marshal(v)
		row := entity.SettingsRow{TenantID: tenantID, Kind: kind, Data: string(raw)}
		if err := db.Where("tenant_id = ? AND kind = ?", tenantID, kind).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
