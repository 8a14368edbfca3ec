package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"backend/entity"
	"backend/repository"
	"backend/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// สถานะของ checkout ต่อ cart: idle → submitting → confirmed | failed
const (
	CheckoutStateIdle       = "idle"
	CheckoutStateSubmitting = "submitting"
	CheckoutStateConfirmed  = "confirmed"
	CheckoutStateFailed     = "failed"
)

var (
	ErrSubmitInFlight  = errors.New("checkout already in progress")
	ErrTableRequired   = errors.New("table number is required for dine-in")
	ErrBadCustomerType = errors.New("invalid customer type")
)

type CheckoutService struct {
	DB          *gorm.DB
	OrderRepo   *repository.OrderRepository
	CartRepo    *repository.CartRepository
	ToppingRepo *repository.ToppingRepository

	TaxRate decimal.Decimal
	Feed    *ws.FeedHub
	Printer *PrintService

	mu       sync.Mutex
	inFlight map[uint]bool // cart id → submitting
}

func NewCheckoutService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	toppingRepo *repository.ToppingRepository,
	taxRate decimal.Decimal,
	feed *ws.FeedHub,
	printer *PrintService,
) *CheckoutService {
	return &CheckoutService{
		DB: db, OrderRepo: orderRepo, CartRepo: cartRepo, ToppingRepo: toppingRepo,
		TaxRate: taxRate, Feed: feed, Printer: printer,
		inFlight: make(map[uint]bool),
	}
}

type CheckoutIn struct {
	CustomerType string `json:"customerType" binding:"required,oneof=dinein takeaway"`
	TableNumber  string `json:"tableNumber"`
}

type CheckoutOut struct {
	OrderID     uint   `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
	State       string `json:"state"`
	Totals      Totals `json:"totals"`
}

// State ของ cart สำหรับให้ FE ปิดปุ่ม submit ระหว่างรอ
func (s *CheckoutService) State(cartID uint) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[cartID] {
		return CheckoutStateSubmitting
	}
	return CheckoutStateIdle
}

func (s *CheckoutService) acquire(cartID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[cartID] {
		return false
	}
	s.inFlight[cartID] = true
	return true
}

func (s *CheckoutService) release(cartID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, cartID)
}

// Submit แปลง cart เป็น order: order + items + toppings + เคลียร์ cart
// อยู่ใน transaction เดียว — สำเร็จทั้งก้อนหรือไม่เกิดอะไรเลย
func (s *CheckoutService) Submit(tenantID, deviceID string, in *CheckoutIn) (*CheckoutOut, error) {
	switch in.CustomerType {
	case entity.CustomerTypeDineIn:
		if strings.TrimSpace(in.TableNumber) == "" {
			return nil, ErrTableRequired
		}
	case entity.CustomerTypeTakeaway:
		in.TableNumber = ""
	default:
		return nil, ErrBadCustomerType
	}

	cart, err := s.CartRepo.GetCartWithLines(tenantID, deviceID)
	if err != nil {
		return nil, err
	}
	if cart.ID == 0 || len(cart.Lines) == 0 {
		return nil, ErrCartEmpty
	}

	// กันกดซ้ำระหว่างรอ network
	if !s.acquire(cart.ID) {
		return nil, ErrSubmitInFlight
	}
	defer s.release(cart.ID)

	// ตรวจ required categories ของทุก line อีกรอบก่อนสร้าง order
	if msgs := s.validateLines(cart.Lines); len(msgs) > 0 {
		return nil, &SelectionError{Messages: msgs}
	}

	totals := CartTotals(cart.Lines, s.TaxRate)
	itemCount := 0
	for _, l := range cart.Lines {
		itemCount += l.Qty
	}

	order := entity.Order{
		TenantID:     tenantID,
		OrderNumber:  newOrderNumber(),
		CustomerType: in.CustomerType,
		TableNumber:  in.TableNumber,
		Status:       entity.OrderStatusNew,
		ItemCount:    itemCount,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range cart.Lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Name:       l.MenuItem.Name,
				Qty:        l.Qty,
				UnitPrice:  l.UnitPrice,
				Total:      l.Total,
				Note:       l.Note,
			}
			if err := s.OrderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			for _, t := range l.Toppings {
				oit := entity.OrderItemTopping{
					OrderItemID: oi.ID,
					ToppingID:   t.ToppingID,
					Name:        t.Name,
					Price:       t.Price,
					Qty:         t.Qty,
				}
				if err := s.OrderRepo.CreateOrderItemTopping(tx, &oit); err != nil {
					return err
				}
			}
		}
		// เคลียร์ cart ใน tx เดียวกัน จะได้ไม่มีสถานะครึ่ง ๆ กลาง ๆ
		return s.CartRepo.ClearCart(tx, cart.ID)
	})
	if err != nil {
		// order ไม่ถูกสร้าง cart ยังอยู่ครบ ให้ user กดใหม่ได้
		return &CheckoutOut{State: CheckoutStateFailed}, err
	}

	if s.Feed != nil {
		s.Feed.Publish("orders", ws.EventInsert, order)
	}
	if s.Printer != nil {
		// การพิมพ์ไม่กระทบผล order แล้ว แค่ log ถ้าพัง
		go func(id uint) {
			if err := s.Printer.PrintOrder(id); err != nil {
				log.Printf("print handoff failed for order %d: %v", id, err)
			}
		}(order.ID)
	}

	return &CheckoutOut{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		State:       CheckoutStateConfirmed,
		Totals:      totals,
	}, nil
}

func (s *CheckoutService) validateLines(lines []entity.CartLine) []string {
	var msgs []string
	for _, l := range lines {
		cats, err := s.ToppingRepo.FindByMenuItem(l.MenuItemID)
		if err != nil || len(cats) == 0 {
			continue
		}
		picks := make(map[uint]int, len(l.Toppings))
		for _, t := range l.Toppings {
			picks[t.ToppingID] = t.Qty
		}
		msgs = append(msgs, ValidateSelections(cats, picks)...)
	}
	return msgs
}

// เลขออเดอร์ฝั่ง client แยกจาก id ที่ DB ออกให้
func newOrderNumber() string {
	return fmt.Sprintf("K-%s", strings.ToUpper(uuid.NewString()[:8]))
}
