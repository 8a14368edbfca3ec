package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ device (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้ FE แสดงได้)
func (r *CartRepository) GetCartWithLines(tenantID, deviceID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("tenant_id = ? AND device_id = ?", tenantID, deviceID).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		// checkout snapshot ชื่อเมนูจาก line → ต้องมี MenuItem มาด้วย
		Preload("Lines.MenuItem").
		Preload("Lines.Toppings", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{TenantID: tenantID, DeviceID: deviceID, Mode: entity.CartModeKiosk}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(tenantID, deviceID, mode string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("tenant_id = ? AND device_id = ?", tenantID, deviceID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if mode == "" {
			mode = entity.CartModeKiosk
		}
		c = entity.Cart{TenantID: tenantID, DeviceID: deviceID, Mode: mode}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// เพิ่มหรือรวม line: เมนูเดียวกัน + topping set เดียวกัน (ToppingKey) → qty+1
// คืน true ถ้า merge กับ line เดิม
func (r *CartRepository) UpsertLine(tx *gorm.DB, cartID uint, row *entity.CartLine) (bool, error) {
	var exist entity.CartLine
	err := tx.Where("cart_id = ? AND menu_item_id = ? AND topping_key = ?",
		cartID, row.MenuItemID, row.ToppingKey).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = int64(exist.Qty) * exist.UnitPrice
		return true, tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	row.CartID = cartID
	if err := tx.Create(row).Error; err != nil {
		return false, err
	}
	return false, nil
}

func (r *CartRepository) GetLine(cartID, lineID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	err := r.DB.Where("id = ? AND cart_id = ?", lineID, cartID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) UpdateLineQty(tx *gorm.DB, cartID, lineID uint, qty int) error {
	return tx.Exec(`
		UPDATE cart_lines
		   SET qty = ?, total = unit_price * ?
		 WHERE id = ? AND cart_id = ? AND deleted_at IS NULL
	`, qty, qty, lineID, cartID).Error
}

func (r *CartRepository) SetLineNote(tx *gorm.DB, cartID, lineID uint, note string) error {
	return tx.Model(&entity.CartLine{}).
		Where("id = ? AND cart_id = ?", lineID, cartID).
		Update("note", note).Error
}

func (r *CartRepository) RemoveLine(tx *gorm.DB, cartID, lineID uint) error {
	if err := tx.Where("cart_line_id = ?", lineID).
		Delete(&entity.CartLineTopping{}).Error; err != nil {
		return err
	}
	if err := tx.Where("id = ? AND cart_id = ?", lineID, cartID).
		Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	// ตะกร้าว่างแล้ว → ปิด flag แสดงตะกร้า
	return tx.Exec(`
		UPDATE carts SET open = ?
		 WHERE id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_lines cl WHERE cl.cart_id = carts.id AND cl.deleted_at IS NULL)
	`, false, cartID).Error
}

func (r *CartRepository) SetOpen(tx *gorm.DB, cartID uint, open bool) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("open", open).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Exec(`
		DELETE FROM cart_line_toppings
		 WHERE cart_line_id IN (SELECT id FROM cart_lines WHERE cart_id = ?)
	`, cartID).Error; err != nil {
		return err
	}
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("open", false).Error
}
