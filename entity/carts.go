package entity

import (
	"gorm.io/gorm"
)

// CartMode เลือก policy ตอน decrement: kiosk บล็อกที่ qty 1, waiter ลบทิ้งเมื่อถึง 0
const (
	CartModeKiosk  = "kiosk"
	CartModeWaiter = "waiter"
)

type Cart struct {
	gorm.Model
	TenantID string `gorm:"uniqueIndex:idx_cart_tenant_device" json:"tenantId"`
	DeviceID string `gorm:"uniqueIndex:idx_cart_tenant_device" json:"deviceId"`
	Mode     string `gorm:"not null;default:kiosk" json:"mode"`
	Open     bool   `json:"open"`

	Lines []CartLine `json:"lines" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
