package services

import (
	"backend/entity"

	"github.com/shopspring/decimal"
)

// ราคาเก็บเป็น minor units (สตางค์) ตลอด ใช้ decimal เฉพาะตอนคิดภาษีกับ format

// LineUnitPrice = ราคาเมนู + Σ topping.price × qty
func LineUnitPrice(basePrice int64, toppings []entity.CartLineTopping) int64 {
	unit := basePrice
	for _, t := range toppings {
		unit += t.Price * int64(t.Qty)
	}
	return unit
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// CartTotals คิด subtotal จาก snapshot ใน cart แล้วบวกภาษีตาม rate
// ปัดภาษีแบบ half-up ที่ระดับ minor unit
func CartTotals(lines []entity.CartLine, taxRate decimal.Decimal) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.UnitPrice * int64(l.Qty)
	}
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal + tax}
}

// FormatMoney แปลง minor units เป็นสตริงทศนิยมสองตำแหน่ง (ใช้บนใบเสร็จ)
func FormatMoney(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100)).StringFixed(2)
}
