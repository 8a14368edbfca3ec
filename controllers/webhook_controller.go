package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// รับ callback สถานะงานพิมพ์จาก cloud print API
// ลายเซ็นคือ HMAC-SHA256 ของ raw body ด้วย shared secret (hex ใน X-Signature)
type WebhookController struct {
	DB           *gorm.DB
	PrintJobRepo *repository.PrintJobRepository
	OrderRepo    *repository.OrderRepository
	Secret       string
}

func NewWebhookController(db *gorm.DB, pr *repository.PrintJobRepository, or *repository.OrderRepository, secret string) *WebhookController {
	return &WebhookController{DB: db, PrintJobRepo: pr, OrderRepo: or, Secret: secret}
}

func VerifySignature(secret string, body []byte, signatureHex string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	want := mac.Sum(nil)
	got, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}

type printStatusPayload struct {
	Ref    string `json:"ref"`
	Status string `json:"status"`
}

// POST /webhooks/print
func (h *WebhookController) PrintStatus(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "cannot read body")
		return
	}

	sig := c.GetHeader("X-Signature")
	if sig == "" || !VerifySignature(h.Secret, body, sig) {
		resp.Unauthorized(c, "invalid signature")
		return
	}

	var payload printStatusPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.Ref == "" || payload.Status == "" {
		resp.BadRequest(c, "malformed payload")
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		job, err := h.PrintJobRepo.GetByRef(payload.Ref)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// upsert: ไม่เคยเห็น ref นี้ก็เก็บ row ใหม่ไว้ก่อน
			return tx.Create(&entity.PrintJob{Ref: payload.Ref, Status: payload.Status}).Error
		}
		if err != nil {
			return err
		}
		if err := h.PrintJobRepo.UpdateStatus(tx, payload.Ref, payload.Status); err != nil {
			return err
		}
		if job.OrderID != 0 {
			return h.OrderRepo.UpdatePrintStatus(tx, job.OrderID, payload.Status)
		}
		return nil
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
