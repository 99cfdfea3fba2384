package model

import "gorm.io/gorm"

const (
	StatusBelumLunas = "BELUM_LUNAS"
	StatusSudahLunas = "SUDAH_LUNAS"
)

// Invoice. TotalDibayar, SisaTagihan dan StatusPembayaran adalah field turunan
// dari kumpulan kuitansi; dihitung ulang lewat usecase.InvoiceUsecase.RecalcInvoice
// setiap kuitansi ditambah/dihapus.
type Invoice struct {
	gorm.Model
	OrderID    *uint  `json:"order_id" gorm:"index"`
	CustomerID uint   `json:"customer_id" gorm:"not null"`
	Nomor      string `json:"nomor" gorm:"unique;not null"`

	SubTotal  float64 `json:"sub_total"`
	PpnAmount float64 `json:"ppn_amount"`
	Total     float64 `json:"total"`

	TotalDibayar     float64 `json:"total_dibayar"`
	SisaTagihan      float64 `json:"sisa_tagihan"`
	StatusPembayaran string  `json:"status_pembayaran" gorm:"default:BELUM_LUNAS"`

	Customer  Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Kuitansis []Kuitansi `json:"kuitansis,omitempty" gorm:"foreignKey:InvoiceID"`
}
