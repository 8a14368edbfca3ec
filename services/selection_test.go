package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
)

func topping(id uint, maxQty int) entity.Topping {
	t := entity.Topping{MaxQty: maxQty}
	t.ID = id
	return t
}

func TestCheckIncrementMaxQty(t *testing.T) {
	cat := entity.ToppingCategory{MaxSelect: 3}
	ch := topping(1, 2)

	picks := map[uint]int{}
	assert.NoError(t, CheckIncrement(ch, cat, picks))
	picks[1] = 1
	assert.NoError(t, CheckIncrement(ch, cat, picks))
	picks[1] = 2
	assert.ErrorIs(t, CheckIncrement(ch, cat, picks), ErrMaxQtyReached)
	// reject แล้ว caller ไม่ apply → picks ไม่เปลี่ยน
	assert.Equal(t, 2, picks[1])
}

func TestCheckIncrementCategoryMax(t *testing.T) {
	cat := entity.ToppingCategory{MaxSelect: 2}
	picks := map[uint]int{1: 1, 2: 1}

	// ตัวที่เลือกอยู่แล้วยังเพิ่ม qty ได้
	assert.NoError(t, CheckIncrement(topping(2, 3), cat, picks))
	// ตัวใหม่เป็น distinct ตัวที่ 3 → เกิน MaxSelect
	assert.ErrorIs(t, CheckIncrement(topping(3, 3), cat, picks), ErrCategoryMaxReached)
}

func TestCheckIncrementUnlimitedCategory(t *testing.T) {
	cat := entity.ToppingCategory{MaxSelect: 0} // ไม่จำกัด distinct
	picks := map[uint]int{1: 1, 2: 1, 3: 1}
	assert.NoError(t, CheckIncrement(topping(9, 1), cat, picks))
}

func TestValidateSelectionsRequired(t *testing.T) {
	sauce := entity.ToppingCategory{Name: "Sauce", MinSelect: 1, MaxSelect: 1, IsRequired: true}
	sauce.ID = 1
	size := entity.ToppingCategory{Name: "Size", MinSelect: 1, MaxSelect: 1, IsRequired: true}
	size.ID = 2
	extras := entity.ToppingCategory{Name: "Extras", MaxSelect: 3}
	extras.ID = 3

	// ไม่เลือกอะไรเลย → หนึ่ง message ต่อ required category ที่ไม่ผ่าน
	msgs := ValidateSelections([]entity.ToppingCategory{sauce, size, extras}, map[uint]int{})
	assert.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Sauce")
	assert.Contains(t, msgs[1], "Size")
}

func TestValidateSelectionsWithinLimits(t *testing.T) {
	ketchup := topping(10, 1)
	ketchup.Name = "Ketchup"
	sauce := entity.ToppingCategory{Name: "Sauce", MinSelect: 1, MaxSelect: 1, IsRequired: true, Toppings: []entity.Topping{ketchup}}

	msgs := ValidateSelections([]entity.ToppingCategory{sauce}, map[uint]int{10: 1})
	assert.Empty(t, msgs)
}

func TestValidateSelectionsOverMax(t *testing.T) {
	a := topping(1, 1)
	a.Name = "A"
	b := topping(2, 1)
	b.Name = "B"
	cat := entity.ToppingCategory{Name: "Pick one", MaxSelect: 1, Toppings: []entity.Topping{a, b}}

	msgs := ValidateSelections([]entity.ToppingCategory{cat}, map[uint]int{1: 1, 2: 1})
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "at most 1")
}

func TestValidateSelectionsOverToppingMaxQty(t *testing.T) {
	a := topping(1, 2)
	a.Name = "Cheese"
	cat := entity.ToppingCategory{Name: "Extras", MaxSelect: 3, Toppings: []entity.Topping{a}}

	msgs := ValidateSelections([]entity.ToppingCategory{cat}, map[uint]int{1: 3})
	assert.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Cheese")
}
