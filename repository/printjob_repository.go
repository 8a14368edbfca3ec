package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PrintJobRepository struct{ DB *gorm.DB }

func NewPrintJobRepository(db *gorm.DB) *PrintJobRepository { return &PrintJobRepository{DB: db} }

func (r *PrintJobRepository) Create(job *entity.PrintJob) error {
	return r.DB.Create(job).Error
}

func (r *PrintJobRepository) GetByRef(ref string) (*entity.PrintJob, error) {
	var job entity.PrintJob
	if err := r.DB.Where("ref = ?", ref).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *PrintJobRepository) UpdateStatus(tx *gorm.DB, ref, status string) error {
	return tx.Model(&entity.PrintJob{}).
		Where("ref = ?", ref).
		Update("status", status).Error
}
