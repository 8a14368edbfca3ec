package entity

import (
	"gorm.io/gorm"
)

const (
	PrintJobQueued = "queued"
	PrintJobDone   = "done"
	PrintJobFailed = "failed"
	PrintJobLocal  = "local" // fallback พิมพ์ฝั่ง client
)

type PrintJob struct {
	gorm.Model
	Ref       string `gorm:"uniqueIndex" json:"ref"` // uuid ใช้ match กับ webhook callback
	PrinterID string `json:"printerId"`
	Status    string `gorm:"not null;default:queued" json:"status"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
