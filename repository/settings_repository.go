package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

func (r *SettingsRepository) Get(tenantID, kind string) (*entity.SettingsRow, error) {
	var row entity.SettingsRow
	err := r.DB.Where("tenant_id = ? AND kind = ?", tenantID, kind).First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *SettingsRepository) Upsert(tenantID, kind, data string) error {
	var row entity.SettingsRow
	err := r.DB.Where("tenant_id = ? AND kind = ?", tenantID, kind).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = entity.SettingsRow{TenantID: tenantID, Kind: kind, Data: data}
		return r.DB.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.Data = data
	return r.DB.Save(&row).Error
}
