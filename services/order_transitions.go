package services

import (
	"errors"

	"backend/entity"
	"backend/repository"
	"backend/ws"

	"gorm.io/gorm"
)

var ErrBadTransition = errors.New("invalid status transition")

// ลำดับที่อนุญาต: New → Preparing → Ready → Completed; Cancelled ได้ก่อนเริ่มทำ
var allowedTransitions = map[string][]string{
	entity.OrderStatusNew:       {entity.OrderStatusPreparing, entity.OrderStatusCancelled},
	entity.OrderStatusPreparing: {entity.OrderStatusReady, entity.OrderStatusCancelled},
	entity.OrderStatusReady:     {entity.OrderStatusCompleted},
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Feed *ws.FeedHub
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, feed *ws.FeedHub) *OrderService {
	return &OrderService{DB: db, Repo: repo, Feed: feed}
}

func (s *OrderService) List(tenantID, status string, page, limit int) ([]repository.OrderSummary, int64, error) {
	return s.Repo.ListOrders(tenantID, status, page, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) Detail(tenantID string, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(tenantID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// UpdateStatus แบบมี guard: เขียนสำเร็จเฉพาะตอน status ปัจจุบันยังเป็น from
func (s *OrderService) UpdateStatus(tenantID string, orderID uint, to string) error {
	o, err := s.Repo.GetOrder(tenantID, orderID)
	if err != nil {
		return err
	}
	if !transitionAllowed(o.Status, to) {
		return ErrBadTransition
	}

	var changed bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, o.Status, to)
		changed = ok
		return err
	})
	if err != nil {
		return err
	}
	if !changed {
		// มีใครแก้ไประหว่างนั้น
		return ErrBadTransition
	}

	if s.Feed != nil {
		o.Status = to
		s.Feed.Publish("orders", ws.EventUpdate, o)
	}
	return nil
}
