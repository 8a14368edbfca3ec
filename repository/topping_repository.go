package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ToppingRepository struct{ DB *gorm.DB }

func NewToppingRepository(db *gorm.DB) *ToppingRepository { return &ToppingRepository{DB: db} }

// topping categories ของเมนูหนึ่งตัว เรียงตาม join table แล้วค่อยเรียง options ข้างใน
func (r *ToppingRepository) FindByMenuItem(menuItemID uint) ([]entity.ToppingCategory, error) {
	var cats []entity.ToppingCategory
	err := r.DB.
		Joins("JOIN menu_item_topping_categories mitc ON mitc.topping_category_id = topping_categories.id").
		Where("mitc.menu_item_id = ?", menuItemID).
		Order("mitc.sort_order ASC, topping_categories.id ASC").
		Preload("Toppings", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("sort_order ASC, id ASC")
		}).
		Find(&cats).Error
	return cats, err
}

func (r *ToppingRepository) FindAllCategories() ([]entity.ToppingCategory, error) {
	var cats []entity.ToppingCategory
	err := r.DB.Order("sort_order ASC, id ASC").
		Preload("Toppings", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Find(&cats).Error
	return cats, err
}

func (r *ToppingRepository) FindCategoryByID(id uint) (*entity.ToppingCategory, error) {
	var cat entity.ToppingCategory
	if err := r.DB.Preload("Toppings").First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// ตรวจว่า toppings ทั้งหมด belong กับ categories ของเมนูนี้
func (r *ToppingRepository) CountToppingsBelongToMenuItem(menuItemID uint, toppingIDs []uint) (int64, error) {
	if len(toppingIDs) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.Topping{}).
		Joins("JOIN menu_item_topping_categories mitc ON mitc.topping_category_id = toppings.topping_category_id").
		Where("mitc.menu_item_id = ? AND toppings.id IN ?", menuItemID, toppingIDs).
		Count(&cnt).Error
	return cnt, err
}

func (r *ToppingRepository) CreateCategory(cat *entity.ToppingCategory) error {
	return r.DB.Create(cat).Error
}

func (r *ToppingRepository) UpdateCategory(cat *entity.ToppingCategory) error {
	return r.DB.Save(cat).Error
}

func (r *ToppingRepository) DeleteCategory(id uint) error {
	return r.DB.Delete(&entity.ToppingCategory{}, id).Error
}

func (r *ToppingRepository) CreateTopping(t *entity.Topping) error {
	return r.DB.Create(t).Error
}

func (r *ToppingRepository) UpdateTopping(t *entity.Topping) error {
	return r.DB.Save(t).Error
}

func (r *ToppingRepository) DeleteTopping(id uint) error {
	return r.DB.Delete(&entity.Topping{}, id).Error
}
