package model

import "gorm.io/gorm"

// Kuitansi: satu pembayaran terhadap tepat satu invoice.
type Kuitansi struct {
	gorm.Model
	InvoiceID  uint    `json:"invoice_id" gorm:"index;not null"`
	Nomor      string  `json:"nomor" gorm:"unique;not null"`
	Jumlah     float64 `json:"jumlah"`
	Metode     string  `json:"metode"` // transfer / tunai
	Keterangan string  `json:"keterangan"`
}
