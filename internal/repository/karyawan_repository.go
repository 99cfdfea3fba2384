package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type KaryawanRepository interface {
	Create(karyawan *model.Karyawan) error
	GetAll() ([]model.Karyawan, error)
	GetByID(id uint) (*model.Karyawan, error)
	GetByNIK(nik string) (*model.Karyawan, error)
	Update(karyawan *model.Karyawan) error
	Delete(id uint) error
	CountActive() (int64, error)
}

type karyawanRepository struct {
	db *gorm.DB
}

func NewKaryawanRepository(db *gorm.DB) KaryawanRepository {
	return &karyawanRepository{db}
}

func (r *karyawanRepository) Create(karyawan *model.Karyawan) error {
	return r.db.Create(karyawan).Error
}

func (r *karyawanRepository) GetAll() ([]model.Karyawan, error) {
	var list []model.Karyawan
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}

func (r *karyawanRepository) GetByID(id uint) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.First(&karyawan, id).Error
	return &karyawan, err
}

func (r *karyawanRepository) GetByNIK(nik string) (*model.Karyawan, error) {
	var karyawan model.Karyawan
	err := r.db.Where("nik = ?", nik).First(&karyawan).Error
	return &karyawan, err
}

func (r *karyawanRepository) Update(karyawan *model.Karyawan) error {
	return r.db.Save(karyawan).Error
}

func (r *karyawanRepository) Delete(id uint) error {
	return r.db.Delete(&model.Karyawan{}, id).Error
}

func (r *karyawanRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&model.Karyawan{}).Where("status = ?", model.KaryawanAktif).Count(&count).Error
	return count, err
}
