package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(tenantID string, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND tenant_id = ?", orderID, tenantID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerType string    `json:"customerType"`
	TableNumber  string    `json:"tableNumber"`
	Status       string    `json:"status"`
	ItemCount    int       `json:"itemCount"`
	Total        int64     `json:"total"`
	PrintStatus  string    `json:"printStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrders(tenantID, status string, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	base := r.DB.Model(&entity.Order{}).Where("tenant_id = ?", tenantID)
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	err := base.
		Select("id, order_number, customer_type, table_number, status, item_count, total, print_status, created_at").
		Order("id DESC").Limit(limit).Offset(offset).
		Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("Toppings").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// อัปเดตสถานะแบบมี guard: สำเร็จเฉพาะตอน status ปัจจุบันตรงกับ from
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) UpdatePrintStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("print_status", status).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreateOrderItemTopping(tx *gorm.DB, oit *entity.OrderItemTopping) error {
	return tx.Create(oit).Error
}
