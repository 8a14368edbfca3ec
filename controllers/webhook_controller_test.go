package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const webhookSecret = "shh"

func newWebhookRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.SetupJoinTable(&entity.MenuItem{}, "ToppingCategories", &entity.MenuItemToppingCategory{}))
	require.NoError(t, db.SetupJoinTable(&entity.ToppingCategory{}, "MenuItems", &entity.MenuItemToppingCategory{}))
	require.NoError(t, db.AutoMigrate(
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemToppingCategory{},
		&entity.ToppingCategory{}, &entity.Topping{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemTopping{},
		&entity.PrintJob{},
	))

	ctrl := NewWebhookController(db,
		repository.NewPrintJobRepository(db),
		repository.NewOrderRepository(db),
		webhookSecret,
	)
	r := gin.New()
	r.POST("/webhooks/print", ctrl.PrintStatus)
	return r, db
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(r *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/print", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookValidSignatureUpdatesJobAndOrder(t *testing.T) {
	r, db := newWebhookRouter(t)

	o := entity.Order{TenantID: "t1", OrderNumber: "K-AAAA1111", Status: entity.OrderStatusNew}
	require.NoError(t, db.Create(&o).Error)
	job := entity.PrintJob{Ref: "job-1", OrderID: o.ID, Status: entity.PrintJobQueued}
	require.NoError(t, db.Create(&job).Error)

	body := []byte(`{"ref":"job-1","status":"done"}`)
	w := postWebhook(r, body, sign(webhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)

	var gotJob entity.PrintJob
	require.NoError(t, db.Where("ref = ?", "job-1").First(&gotJob).Error)
	assert.Equal(t, "done", gotJob.Status)

	var gotOrder entity.Order
	require.NoError(t, db.First(&gotOrder, o.ID).Error)
	assert.Equal(t, "done", gotOrder.PrintStatus)
}

func TestWebhookMutatedBodyRejected(t *testing.T) {
	r, _ := newWebhookRouter(t)

	body := []byte(`{"ref":"job-1","status":"done"}`)
	sig := sign(webhookSecret, body)

	// สลับหนึ่ง byte ใน body
	mutated := bytes.Replace(body, []byte("done"), []byte("dome"), 1)
	w := postWebhook(r, mutated, sig)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookMutatedSignatureRejected(t *testing.T) {
	r, _ := newWebhookRouter(t)

	body := []byte(`{"ref":"job-1","status":"done"}`)
	sig := []byte(sign(webhookSecret, body))
	if sig[0] == '0' {
		sig[0] = '1'
	} else {
		sig[0] = '0'
	}
	w := postWebhook(r, body, string(sig))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookMissingSignatureRejected(t *testing.T) {
	r, _ := newWebhookRouter(t)
	w := postWebhook(r, []byte(`{"ref":"job-1","status":"done"}`), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookWrongSecretRejected(t *testing.T) {
	r, _ := newWebhookRouter(t)
	body := []byte(`{"ref":"job-1","status":"done"}`)
	w := postWebhook(r, body, sign("wrong", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookMalformedJSON(t *testing.T) {
	r, _ := newWebhookRouter(t)
	body := []byte(`{"ref":`)
	w := postWebhook(r, body, sign(webhookSecret, body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookUnknownRefUpserts(t *testing.T) {
	r, db := newWebhookRouter(t)

	body := []byte(`{"ref":"never-seen","status":"failed"}`)
	w := postWebhook(r, body, sign(webhookSecret, body))
	assert.Equal(t, http.StatusOK, w.Code)

	var job entity.PrintJob
	require.NoError(t, db.Where("ref = ?", "never-seen").First(&job).Error)
	assert.Equal(t, "failed", job.Status)
}

func TestVerifySignature(t *testing.T) {
	body := []byte("payload")
	assert.True(t, VerifySignature("s", body, sign("s", body)))
	assert.False(t, VerifySignature("s", body, "zz-not-hex"))
	assert.False(t, VerifySignature("s", []byte("payloae"), sign("s", body)))
}
