package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB) entity.Order {
	t.Helper()
	o := entity.Order{
		TenantID: testTenant, OrderNumber: "K-PRINT001",
		CustomerType: entity.CustomerTypeDineIn, TableNumber: "4",
		Status: entity.OrderStatusNew, ItemCount: 2,
		Subtotal: 2300, Tax: 230, Total: 2530,
	}
	require.NoError(t, db.Create(&o).Error)
	oi := entity.OrderItem{OrderID: o.ID, Name: "Burger", Qty: 2, UnitPrice: 1150, Total: 2300, Note: "no onion"}
	require.NoError(t, db.Create(&oi).Error)
	require.NoError(t, db.Create(&entity.OrderItemTopping{OrderItemID: oi.ID, Name: "Cheese", Price: 150, Qty: 1}).Error)
	return o
}

func TestRenderReceipt(t *testing.T) {
	db := newTestDB(t)
	o := seedOrder(t, db)
	items, err := repository.NewOrderRepository(db).GetOrderItems(o.ID)
	require.NoError(t, err)

	out := RenderReceipt(&o, items)
	assert.Contains(t, out, "ORDER K-PRINT001")
	assert.Contains(t, out, "TABLE 4")
	assert.Contains(t, out, "2x Burger")
	assert.Contains(t, out, "+ 1x Cheese")
	assert.Contains(t, out, "* no onion")
	assert.Contains(t, out, "25.30")
}

func TestRenderReceiptTakeaway(t *testing.T) {
	o := entity.Order{OrderNumber: "K-X", CustomerType: entity.CustomerTypeTakeaway}
	out := RenderReceipt(&o, nil)
	assert.Contains(t, out, "TAKEAWAY")
	assert.NotContains(t, out, "TABLE")
}

func TestPrintOrderFallsBackToLocal(t *testing.T) {
	db := newTestDB(t)
	o := seedOrder(t, db)

	svc := NewPrintService(db, repository.NewOrderRepository(db), repository.NewPrintJobRepository(db),
		"http://unused.example", "", "")
	require.NoError(t, svc.PrintOrder(o.ID))

	var job entity.PrintJob
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&job).Error)
	assert.Equal(t, entity.PrintJobLocal, job.Status)
}

func TestPrintOrderPostsToCloudAPI(t *testing.T) {
	db := newTestDB(t)
	o := seedOrder(t, db)

	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	svc := NewPrintService(db, repository.NewOrderRepository(db), repository.NewPrintJobRepository(db),
		srv.URL, "api-key", "printer-9")
	require.NoError(t, svc.PrintOrder(o.ID))

	assert.Equal(t, "Bearer api-key", gotAuth)
	assert.Equal(t, "printer-9", gotBody["printerId"])
	assert.Contains(t, gotBody["content"], "ORDER K-PRINT001")

	var job entity.PrintJob
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&job).Error)
	assert.Equal(t, entity.PrintJobQueued, job.Status)
	assert.Equal(t, gotBody["ref"], job.Ref)
}

func TestPrintOrderMarksFailedOnAPIError(t *testing.T) {
	db := newTestDB(t)
	o := seedOrder(t, db)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewPrintService(db, repository.NewOrderRepository(db), repository.NewPrintJobRepository(db),
		srv.URL, "api-key", "printer-9")
	require.Error(t, svc.PrintOrder(o.ID))

	var job entity.PrintJob
	require.NoError(t, db.Where("order_id = ?", o.ID).First(&job).Error)
	assert.Equal(t, entity.PrintJobFailed, job.Status)
}
