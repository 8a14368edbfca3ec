package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusNew       = "New"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

const (
	CustomerTypeDineIn   = "dinein"
	CustomerTypeTakeaway = "takeaway"
)

type Order struct {
	gorm.Model
	TenantID    string `gorm:"index" json:"tenantId"`
	OrderNumber string `gorm:"uniqueIndex" json:"orderNumber"`

	CustomerType string `json:"customerType"`
	TableNumber  string `json:"tableNumber"` // เฉพาะ dinein
	Status       string `gorm:"not null;default:New" json:"status"`

	ItemCount int   `json:"itemCount"`
	Subtotal  int64 `json:"subtotal"`
	Tax       int64 `json:"tax"`
	Total     int64 `json:"total"`

	// denormalized จาก print job ล่าสุด (อัปเดตผ่าน webhook)
	PrintStatus string `json:"printStatus"`

	// preload แค่ตอน detail
	Items     []OrderItem `json:"-"`
	PrintJobs []PrintJob  `json:"-"`
}
