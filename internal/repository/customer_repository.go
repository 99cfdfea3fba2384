package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	GetAll() ([]model.Customer, error)
	GetByID(id uint) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uint) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db}
}

func (r *customerRepository) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetAll() ([]model.Customer, error) {
	var list []model.Customer
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *customerRepository) GetByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, id).Error
	return &customer, err
}

func (r *customerRepository) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Customer{}, id).Error
}
