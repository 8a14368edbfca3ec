package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrintService ส่งใบเสร็จไป cloud print API ภายนอก
// ไม่มี API key → fallback เป็น local print (client พิมพ์เอง) แล้ว mark ไว้
type PrintService struct {
	DB           *gorm.DB
	OrderRepo    *repository.OrderRepository
	PrintJobRepo *repository.PrintJobRepository

	APIURL    string
	APIKey    string
	PrinterID string

	HTTPClient *http.Client
}

func NewPrintService(db *gorm.DB, or *repository.OrderRepository, pr *repository.PrintJobRepository, apiURL, apiKey, printerID string) *PrintService {
	return &PrintService{
		DB: db, OrderRepo: or, PrintJobRepo: pr,
		APIURL: apiURL, APIKey: apiKey, PrinterID: printerID,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *PrintService) PrintOrder(orderID uint) error {
	var o entity.Order
	if err := s.DB.First(&o, orderID).Error; err != nil {
		return err
	}
	items, err := s.OrderRepo.GetOrderItems(o.ID)
	if err != nil {
		return err
	}

	job := &entity.PrintJob{
		Ref:       uuid.NewString(),
		PrinterID: s.PrinterID,
		OrderID:   o.ID,
		Status:    entity.PrintJobQueued,
	}

	if s.APIKey == "" || s.PrinterID == "" {
		job.Status = entity.PrintJobLocal
		log.Printf("print: no cloud printer configured, order %s falls back to local print", o.OrderNumber)
		return s.PrintJobRepo.Create(job)
	}

	receipt := RenderReceipt(&o, items)
	body, _ := json.Marshal(map[string]any{
		"ref":       job.Ref,
		"printerId": s.PrinterID,
		"title":     fmt.Sprintf("Order %s", o.OrderNumber),
		"content":   receipt,
	})

	req, err := http.NewRequest(http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	if err := s.PrintJobRepo.Create(job); err != nil {
		return err
	}

	res, err := s.HTTPClient.Do(req)
	if err != nil {
		s.markFailed(job.Ref)
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		s.markFailed(job.Ref)
		return fmt.Errorf("print api returned %d", res.StatusCode)
	}
	return nil
}

func (s *PrintService) markFailed(ref string) {
	if err := s.PrintJobRepo.UpdateStatus(s.DB, ref, entity.PrintJobFailed); err != nil {
		log.Printf("print: cannot mark job %s failed: %v", ref, err)
	}
}

// RenderReceipt แปลง order เป็นใบเสร็จ plain text
func RenderReceipt(o *entity.Order, items []entity.OrderItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ORDER %s\n", o.OrderNumber)
	if o.CustomerType == entity.CustomerTypeDineIn {
		fmt.Fprintf(&b, "TABLE %s\n", o.TableNumber)
	} else {
		b.WriteString("TAKEAWAY\n")
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")

	for _, it := range items {
		fmt.Fprintf(&b, "%dx %-20s %8s\n", it.Qty, it.Name, FormatMoney(it.Total))
		for _, t := range it.Toppings {
			fmt.Fprintf(&b, "   + %dx %-16s %8s\n", t.Qty, t.Name, FormatMoney(t.Price*int64(t.Qty)))
		}
		if it.Note != "" {
			fmt.Fprintf(&b, "   * %s\n", it.Note)
		}
	}

	b.WriteString(strings.Repeat("-", 32) + "\n")
	fmt.Fprintf(&b, "%-24s %8s\n", "Subtotal", FormatMoney(o.Subtotal))
	fmt.Fprintf(&b, "%-24s %8s\n", "Tax", FormatMoney(o.Tax))
	fmt.Fprintf(&b, "%-24s %8s\n", "Total", FormatMoney(o.Total))
	return b.String()
}
