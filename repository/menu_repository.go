package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListCategories() ([]entity.MenuCategory, error) {
	var out []entity.MenuCategory
	err := r.DB.Order("sort_order ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListItems(categoryID uint) ([]entity.MenuItem, error) {
	q := r.DB.Where("available = ?", true)
	if categoryID != 0 {
		q = q.Where("menu_category_id = ?", categoryID)
	}
	var out []entity.MenuItem
	err := q.Order("sort_order ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("MenuCategory").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// เอาเฉพาะ field ที่ใช้คิดราคา
func (r *MenuRepository) GetItemBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, name, price, customizable, available").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) CreateCategory(mc *entity.MenuCategory) error {
	return r.DB.Create(mc).Error
}

func (r *MenuRepository) CreateItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) UpdateItem(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// Attach/Detach topping category ให้เมนู (join table มี sort order)
func (r *MenuRepository) AttachToppingCategory(menuItemID, categoryID uint, sortOrder int) error {
	row := entity.MenuItemToppingCategory{
		MenuItemID: menuItemID, ToppingCategoryID: categoryID, SortOrder: sortOrder,
	}
	return r.DB.Create(&row).Error
}

func (r *MenuRepository) DetachToppingCategory(menuItemID, categoryID uint) error {
	return r.DB.
		Where("menu_item_id = ? AND topping_category_id = ?", menuItemID, categoryID).
		Delete(&entity.MenuItemToppingCategory{}).Error
}
