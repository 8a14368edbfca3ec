package entity

import (
	"gorm.io/gorm"
)

const (
	SettingsKindPrinting      = "printing"
	SettingsKindNotifications = "notifications"
	SettingsKindAppearance    = "appearance"
)

// SettingsRow เก็บ payload เป็น JSON ต่อ kind ต่อร้าน
// shape ของ Data ถูก validate ก่อนเขียนเสมอ (ดู services/settings_service.go)
type SettingsRow struct {
	gorm.Model
	TenantID string `gorm:"uniqueIndex:idx_settings_tenant_kind" json:"tenantId"`
	Kind     string `gorm:"uniqueIndex:idx_settings_tenant_kind" json:"kind"`
	Data     string `json:"data"`
}

type PrintingSettings struct {
	Enabled   bool   `json:"enabled"`
	APIKey    string `json:"apiKey"`
	PrinterID string `json:"printerId"`
	Copies    int    `json:"copies" binding:"omitempty,min=1,max=5"`
}

type NotificationSettings struct {
	SoundEnabled   bool `json:"soundEnabled"`
	ToastLimit     int  `json:"toastLimit" binding:"omitempty,min=1,max=10"`
	MobileSeconds  int  `json:"mobileSeconds" binding:"omitempty,min=1"`
	DesktopSeconds int  `json:"desktopSeconds" binding:"omitempty,min=1"`
}

type AppearanceSettings struct {
	Theme       string `json:"theme" binding:"omitempty,oneof=light dark system"`
	AccentColor string `json:"accentColor"`
	LogoURL     string `json:"logoUrl"`
}
