package model

import (
	"time"

	"gorm.io/gorm"
)

// Urutan stage pipeline produksi. Transisi hanya boleh maju satu langkah,
// lihat usecase.OrderUsecase.
const (
	StageCustomerDpDesain = "customer_dp_desain"
	StageProsesDesain     = "proses_desain"
	StageDpProduksi       = "dp_produksi"
	StageAntreanProduksi  = "antrean_produksi"
	StagePrintPress       = "print_press"
	StageCuttingJahit     = "cutting_jahit"
	StagePacking          = "packing"
	StagePelunasan        = "pelunasan"
	StagePengiriman       = "pengiriman"
)

const (
	JenisDpDesain   = "dp_desain"
	JenisDpProduksi = "dp_produksi"
	JenisPelunasan  = "pelunasan"
)

type Order struct {
	gorm.Model
	CustomerID  uint   `json:"customer_id" gorm:"not null"`
	NamaPesanan string `json:"nama_pesanan"`
	Jumlah      int    `json:"jumlah"` // Qty jersey
	Catatan     string `json:"catatan"`

	Stage          string    `json:"stage" gorm:"default:customer_dp_desain"`
	StageEnteredAt time.Time `json:"stage_entered_at"` // Direset tiap pindah stage, untuk deteksi bottleneck

	// Tiga slot pembayaran: DP desain, DP produksi, pelunasan
	DpDesain             float64    `json:"dp_desain"`
	DpDesainVerified     bool       `json:"dp_desain_verified"`
	DpDesainVerifiedAt   *time.Time `json:"dp_desain_verified_at"`
	DpProduksi           float64    `json:"dp_produksi"`
	DpProduksiVerified   bool       `json:"dp_produksi_verified"`
	DpProduksiVerifiedAt *time.Time `json:"dp_produksi_verified_at"`
	Pelunasan            float64    `json:"pelunasan"`
	PelunasanVerified    bool       `json:"pelunasan_verified"`
	PelunasanVerifiedAt  *time.Time `json:"pelunasan_verified_at"`

	SpkNumber      *string    `json:"spk_number" gorm:"uniqueIndex"` // Nomor SPK, digenerate saat masuk antrean produksi
	TrackingNumber *string    `json:"tracking_number"`
	ShippedAt      *time.Time `json:"shipped_at"`

	Customer Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// OrderStages mengembalikan urutan stage dari awal sampai akhir.
func OrderStages() []string {
	return []string{
		StageCustomerDpDesain,
		StageProsesDesain,
		StageDpProduksi,
		StageAntreanProduksi,
		StagePrintPress,
		StageCuttingJahit,
		StagePacking,
		StagePelunasan,
		StagePengiriman,
	}
}
