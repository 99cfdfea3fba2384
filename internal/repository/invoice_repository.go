package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(invoice *model.Invoice) error
	GetAll() ([]model.Invoice, error)
	GetByID(id uint) (*model.Invoice, error)
	GetByOrderID(orderID uint) (*model.Invoice, error)
	Update(invoice *model.Invoice) error
	Delete(id uint) error
}

type invoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db}
}

func (r *invoiceRepository) Create(invoice *model.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *invoiceRepository) GetAll() ([]model.Invoice, error) {
	var list []model.Invoice
	err := r.db.Preload("Customer").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *invoiceRepository) GetByID(id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Kuitansis").First(&invoice, id).Error
	return &invoice, err
}

func (r *invoiceRepository) GetByOrderID(orderID uint) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Where("order_id = ?", orderID).First(&invoice).Error
	return &invoice, err
}

func (r *invoiceRepository) Update(invoice *model.Invoice) error {
	return r.db.Save(invoice).Error
}

func (r *invoiceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Invoice{}, id).Error
}
