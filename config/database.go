package config

import (
	"fmt"

	"erp-kozo-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "kozo_erp"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Karyawan{})
	db.AutoMigrate(&model.AttendanceLog{})
	db.AutoMigrate(&model.AttendanceDeficitReport{})
	db.AutoMigrate(&model.Customer{})
	db.AutoMigrate(&model.Order{})
	db.AutoMigrate(&model.Invoice{})
	db.AutoMigrate(&model.Kuitansi{})

	DB = db
}
