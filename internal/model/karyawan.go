package model

import "gorm.io/gorm"

const (
	KaryawanAktif    = "active"
	KaryawanNonaktif = "inactive"
)

type Karyawan struct {
	gorm.Model
	NIK     string `json:"nik" gorm:"column:nik;unique;not null"` // Badge ID di mesin fingerprint
	Nama    string `json:"nama"`
	Jabatan string `json:"jabatan"`
	Status  string `json:"status" gorm:"default:active"` // active / inactive

	// Relasi
	AttendanceLogs []AttendanceLog `json:"attendance_logs,omitempty" gorm:"foreignKey:KaryawanID"`
}
