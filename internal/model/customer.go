package model

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Nama   string `json:"nama"`
	NoHP   string `json:"no_hp"`
	Email  string `json:"email"`
	Alamat string `json:"alamat"`

	// Relasi
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}
