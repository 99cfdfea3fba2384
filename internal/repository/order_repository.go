package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	GetAll() ([]model.Order, error)
	GetByID(id uint) (*model.Order, error)
	GetByStage(stage string) ([]model.Order, error)
	Update(order *model.Order) error
	Delete(id uint) error
	// ListSPKNumbers mengembalikan semua nomor SPK yang diawali prefix
	// (contoh prefix: "SPK-202609-"), untuk menentukan sequence berikutnya.
	ListSPKNumbers(prefix string) ([]string, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db}
}

func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetAll() ([]model.Order, error) {
	var list []model.Order
	err := r.db.Preload("Customer").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *orderRepository) GetByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Customer").First(&order, id).Error
	return &order, err
}

func (r *orderRepository) GetByStage(stage string) ([]model.Order, error) {
	var list []model.Order
	err := r.db.Preload("Customer").Where("stage = ?", stage).Order("stage_entered_at asc").Find(&list).Error
	return list, err
}

func (r *orderRepository) Update(order *model.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) Delete(id uint) error {
	// Hard delete: nomor SPK order soft-delete tetap tertahan unique index
	// padahal tidak terlihat lagi oleh ListSPKNumbers.
	return r.db.Unscoped().Delete(&model.Order{}, id).Error
}

func (r *orderRepository) ListSPKNumbers(prefix string) ([]string, error) {
	var nums []string
	err := r.db.Model(&model.Order{}).
		Where("spk_number LIKE ?", prefix+"%").
		Pluck("spk_number", &nums).Error
	return nums, err
}
