package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB, fixture) {
	db := newTestDB(t)
	f := seedCatalog(t, db)
	svc := NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewToppingRepository(db),
	)
	return svc, db, f
}

const (
	testTenant = "t1"
	testDevice = "dev1"
)

func addBurger(t *testing.T, svc *CartService, f fixture, picks []ToppingPick) *AddToCartOut {
	t.Helper()
	out, err := svc.Add(testTenant, testDevice, &AddToCartIn{
		MenuItemID: f.burger.ID,
		Picks:      picks,
	})
	require.NoError(t, err)
	return out
}

func TestAddMergesIdenticalToppingSets(t *testing.T) {
	svc, _, f := newCartService(t)
	picks := []ToppingPick{{ToppingID: f.cheese.ID, Qty: 1}, {ToppingID: f.ketchup.ID, Qty: 1}}

	out := addBurger(t, svc, f, picks)
	assert.False(t, out.Merged)

	// ลำดับ picks สลับกันก็ยัง merge เพราะเทียบเป็น set
	out = addBurger(t, svc, f, []ToppingPick{{ToppingID: f.ketchup.ID, Qty: 1}, {ToppingID: f.cheese.ID, Qty: 1}})
	assert.True(t, out.Merged)

	cart, subtotal, err := svc.Get(testTenant, testDevice)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Qty)
	// 10.00 + 1.50 = 11.50 ต่อชิ้น
	assert.Equal(t, int64(1150), cart.Lines[0].UnitPrice)
	assert.Equal(t, int64(2300), subtotal)
	assert.True(t, cart.Open)
}

func TestAddDifferentToppingSetsMakesTwoLines(t *testing.T) {
	svc, _, f := newCartService(t)

	addBurger(t, svc, f, []ToppingPick{{ToppingID: f.cheese.ID, Qty: 1}, {ToppingID: f.ketchup.ID, Qty: 1}})
	out := addBurger(t, svc, f, []ToppingPick{{ToppingID: f.bacon.ID, Qty: 1}, {ToppingID: f.ketchup.ID, Qty: 1}})
	assert.False(t, out.Merged)

	cart, _, err := svc.Get(testTenant, testDevice)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}

func TestAddRejectsRequiredCategoryUnderSelected(t *testing.T) {
	svc, db, f := newCartService(t)

	// ไม่เลือก sauce ที่ required
	_, err := svc.Add(testTenant, testDevice, &AddToCartIn{
		MenuItemID: f.burger.ID,
		Picks:      []ToppingPick{{ToppingID: f.cheese.ID, Qty: 1}},
	})
	var selErr *SelectionError
	require.ErrorAs(t, err, &selErr)
	require.Len(t, selErr.Messages, 1)
	assert.Contains(t, selErr.Messages[0], "Sauce")

	// ไม่มี line ถูกสร้าง
	var cnt int64
	db.Model(&entity.CartLine{}).Count(&cnt)
	assert.Zero(t, cnt)
}

func TestAddRejectsForeignTopping(t *testing.T) {
	svc, _, f := newCartService(t)

	// topping ของเมนูอื่น/ไม่มีจริง
	_, err := svc.Add(testTenant, testDevice, &AddToCartIn{
		MenuItemID: f.burger.ID,
		Picks:      []ToppingPick{{ToppingID: 9999, Qty: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidToppings)
}

func TestAddPlainItemNoPicks(t *testing.T) {
	svc, _, f := newCartService(t)

	out, err := svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID})
	require.NoError(t, err)
	assert.False(t, out.Merged)

	out, err = svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID})
	require.NoError(t, err)
	assert.True(t, out.Merged)
}

func TestIncrementDecrement(t *testing.T) {
	svc, _, f := newCartService(t)
	require.NoError(t, addErr(svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID})))

	cart, _, _ := svc.Get(testTenant, testDevice)
	lineID := cart.Lines[0].ID

	require.NoError(t, svc.Increment(testTenant, testDevice, lineID))
	require.NoError(t, svc.Increment(testTenant, testDevice, lineID))
	cart, subtotal, _ := svc.Get(testTenant, testDevice)
	assert.Equal(t, 3, cart.Lines[0].Qty)
	assert.Equal(t, int64(1050), subtotal)

	require.NoError(t, svc.Decrement(testTenant, testDevice, lineID))
	cart, _, _ = svc.Get(testTenant, testDevice)
	assert.Equal(t, 2, cart.Lines[0].Qty)
}

func TestDecrementAtFloorKioskBlocks(t *testing.T) {
	svc, _, f := newCartService(t)
	require.NoError(t, addErr(svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID, Mode: entity.CartModeKiosk})))

	cart, _, _ := svc.Get(testTenant, testDevice)
	lineID := cart.Lines[0].ID

	// kiosk: qty 1 → no-op ไม่มีวันต่ำกว่า 1
	require.NoError(t, svc.Decrement(testTenant, testDevice, lineID))
	require.NoError(t, svc.Decrement(testTenant, testDevice, lineID))
	cart, _, _ = svc.Get(testTenant, testDevice)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Qty)
}

func TestDecrementAtFloorWaiterRemoves(t *testing.T) {
	svc, _, f := newCartService(t)
	require.NoError(t, addErr(svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID, Mode: entity.CartModeWaiter})))

	cart, _, _ := svc.Get(testTenant, testDevice)
	lineID := cart.Lines[0].ID

	require.NoError(t, svc.Decrement(testTenant, testDevice, lineID))
	cart, _, _ = svc.Get(testTenant, testDevice)
	assert.Empty(t, cart.Lines)
	// ตะกร้าว่าง → ปิด visibility
	assert.False(t, cart.Open)
}

func TestRemoveLastLineClosesCart(t *testing.T) {
	svc, _, f := newCartService(t)
	require.NoError(t, addErr(svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID})))

	cart, _, _ := svc.Get(testTenant, testDevice)
	require.True(t, cart.Open)

	require.NoError(t, svc.RemoveLine(testTenant, testDevice, cart.Lines[0].ID))
	cart, _, _ = svc.Get(testTenant, testDevice)
	assert.Empty(t, cart.Lines)
	assert.False(t, cart.Open)
}

func TestSetNoteAndClear(t *testing.T) {
	svc, _, f := newCartService(t)
	require.NoError(t, addErr(svc.Add(testTenant, testDevice, &AddToCartIn{MenuItemID: f.cola.ID})))

	cart, _, _ := svc.Get(testTenant, testDevice)
	require.NoError(t, svc.SetNote(testTenant, testDevice, cart.Lines[0].ID, "no ice"))

	cart, _, _ = svc.Get(testTenant, testDevice)
	assert.Equal(t, "no ice", cart.Lines[0].Note)

	require.NoError(t, svc.Clear(testTenant, testDevice))
	cart, subtotal, _ := svc.Get(testTenant, testDevice)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, subtotal)
	assert.False(t, cart.Open)
}

func TestDecrementPolicyForMode(t *testing.T) {
	assert.Equal(t, DecrementPolicyBlock, DecrementPolicyForMode(entity.CartModeKiosk))
	assert.Equal(t, DecrementPolicyRemove, DecrementPolicyForMode(entity.CartModeWaiter))
	assert.Equal(t, DecrementPolicyBlock, DecrementPolicyForMode(""))
}

func addErr(_ *AddToCartOut, err error) error { return err }
