package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type DeficitRepository interface {
	// Upsert menambah jam defisit ke baris (karyawan, bulan, tahun) yang
	// sudah ada, atau membuat baris baru kalau belum ada. Tidak pernah
	// menghitung ulang dari seluruh log.
	Upsert(karyawanID uint, bulan string, tahun string, deficitHours float64) error
	GetByMonth(bulan string, tahun string) ([]model.AttendanceDeficitReport, error)
	GetByKaryawan(karyawanID uint) ([]model.AttendanceDeficitReport, error)
}

type deficitRepository struct {
	db *gorm.DB
}

func NewDeficitRepository(db *gorm.DB) DeficitRepository {
	return &deficitRepository{db}
}

func (r *deficitRepository) Upsert(karyawanID uint, bulan string, tahun string, deficitHours float64) error {
	var report model.AttendanceDeficitReport
	err := r.db.Where("karyawan_id = ? AND bulan = ? AND tahun = ?", karyawanID, bulan, tahun).
		First(&report).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		report = model.AttendanceDeficitReport{
			KaryawanID:        karyawanID,
			Bulan:             bulan,
			Tahun:             tahun,
			TotalDeficitHours: deficitHours,
			DeficitCount:      1,
		}
		return r.db.Create(&report).Error
	}

	report.TotalDeficitHours += deficitHours
	report.DeficitCount++
	return r.db.Save(&report).Error
}

func (r *deficitRepository) GetByMonth(bulan string, tahun string) ([]model.AttendanceDeficitReport, error) {
	var list []model.AttendanceDeficitReport
	err := r.db.Preload("Karyawan").Where("bulan = ? AND tahun = ?", bulan, tahun).Find(&list).Error
	return list, err
}

func (r *deficitRepository) GetByKaryawan(karyawanID uint) ([]model.AttendanceDeficitReport, error) {
	var list []model.AttendanceDeficitReport
	err := r.db.Where("karyawan_id = ?", karyawanID).Order("tahun desc, bulan desc").Find(&list).Error
	return list, err
}
