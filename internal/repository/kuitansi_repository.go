package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type KuitansiRepository interface {
	Create(kuitansi *model.Kuitansi) error
	GetAll() ([]model.Kuitansi, error)
	GetByID(id uint) (*model.Kuitansi, error)
	GetByInvoiceID(invoiceID uint) ([]model.Kuitansi, error)
	Delete(id uint) error
}

type kuitansiRepository struct {
	db *gorm.DB
}

func NewKuitansiRepository(db *gorm.DB) KuitansiRepository {
	return &kuitansiRepository{db}
}

func (r *kuitansiRepository) Create(kuitansi *model.Kuitansi) error {
	return r.db.Create(kuitansi).Error
}

func (r *kuitansiRepository) GetAll() ([]model.Kuitansi, error) {
	var list []model.Kuitansi
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *kuitansiRepository) GetByID(id uint) (*model.Kuitansi, error) {
	var kuitansi model.Kuitansi
	err := r.db.First(&kuitansi, id).Error
	return &kuitansi, err
}

func (r *kuitansiRepository) GetByInvoiceID(invoiceID uint) ([]model.Kuitansi, error) {
	var list []model.Kuitansi
	err := r.db.Where("invoice_id = ?", invoiceID).Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *kuitansiRepository) Delete(id uint) error {
	return r.db.Delete(&model.Kuitansi{}, id).Error
}
