package repository

import (
	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	// CreateIfAbsent menyimpan log baru secara atomik. Mengembalikan false
	// kalau sudah ada log untuk (karyawan, tanggal) yang sama (bukan error).
	CreateIfAbsent(log *model.AttendanceLog) (bool, error)
	GetByKaryawanAndDate(karyawanID uint, tanggal string) (*model.AttendanceLog, error)
	GetByID(id uint) (*model.AttendanceLog, error)
	GetByDate(tanggal string) ([]model.AttendanceLog, error)
	GetByMonth(karyawanID uint, bulan string, tahun string) ([]model.AttendanceLog, error)
	Update(log *model.AttendanceLog) error
	Delete(id uint) error
	CountByDate(tanggal string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) CreateIfAbsent(log *model.AttendanceLog) (bool, error) {
	// Insert-if-absent lewat unique index (karyawan_id, tanggal), bukan
	// cek-dulu-baru-insert, supaya tidak ada race saat mesin mengirim dobel.
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(log)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *attendanceRepository) GetByKaryawanAndDate(karyawanID uint, tanggal string) (*model.AttendanceLog, error) {
	var log model.AttendanceLog
	err := r.db.Where("karyawan_id = ? AND tanggal = ?", karyawanID, tanggal).First(&log).Error
	return &log, err
}

func (r *attendanceRepository) GetByID(id uint) (*model.AttendanceLog, error) {
	var log model.AttendanceLog
	err := r.db.First(&log, id).Error
	return &log, err
}

func (r *attendanceRepository) GetByDate(tanggal string) ([]model.AttendanceLog, error) {
	var list []model.AttendanceLog
	err := r.db.Preload("Karyawan").Where("tanggal = ?", tanggal).Order("check_in asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(karyawanID uint, bulan string, tahun string) ([]model.AttendanceLog, error) {
	var list []model.AttendanceLog
	err := r.db.Where("karyawan_id = ? AND tanggal LIKE ?", karyawanID, tahun+"-"+bulan+"-%").
		Order("tanggal asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) Update(log *model.AttendanceLog) error {
	return r.db.Save(log).Error
}

func (r *attendanceRepository) Delete(id uint) error {
	// Hard delete: baris soft-delete masih menempel di unique index
	// (karyawan_id, tanggal) dan memblokir check-in ulang hari itu.
	return r.db.Unscoped().Delete(&model.AttendanceLog{}, id).Error
}

func (r *attendanceRepository) CountByDate(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceLog{}).Where("tanggal = ?", tanggal).Count(&count).Error
	return count, err
}
