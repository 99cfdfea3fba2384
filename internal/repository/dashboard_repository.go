package repository

import (
	"time"

	"erp-kozo-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(tanggal string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(tanggal string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// 1. Total Karyawan Aktif
	var totalKaryawan int64
	r.db.Model(&model.Karyawan{}).Where("status = ?", model.KaryawanAktif).Count(&totalKaryawan)
	stats["total_karyawan"] = totalKaryawan

	// 2. Absensi Hari Ini
	var hadirHariIni int64
	r.db.Model(&model.AttendanceLog{}).Where("tanggal = ?", tanggal).Count(&hadirHariIni)
	stats["hadir_hari_ini"] = hadirHariIni

	// 3. Jumlah Order per Stage (papan Kanban)
	var perStage []struct {
		Stage string
		Count int64
	}
	r.db.Table("orders").Where("deleted_at IS NULL").
		Group("stage").Select("stage, count(*) as count").Scan(&perStage)

	stageMap := map[string]int64{}
	for _, s := range model.OrderStages() {
		stageMap[s] = 0
	}
	for _, s := range perStage {
		stageMap[s.Stage] = s.Count
	}
	stats["order_per_stage"] = stageMap

	// 4. Dwell time terlama per stage (jam sejak stage_entered_at),
	// untuk deteksi bottleneck.
	var oldest []struct {
		Stage          string
		StageEnteredAt time.Time
	}
	r.db.Table("orders").Where("deleted_at IS NULL").
		Group("stage").Select("stage, MIN(stage_entered_at) as stage_entered_at").Scan(&oldest)

	dwellMap := map[string]float64{}
	now := time.Now()
	for _, o := range oldest {
		dwellMap[o.Stage] = now.Sub(o.StageEnteredAt).Hours()
	}
	stats["dwell_terlama_jam"] = dwellMap

	// 5. Invoice yang belum lunas
	var belumLunas int64
	r.db.Model(&model.Invoice{}).Where("status_pembayaran = ?", model.StatusBelumLunas).Count(&belumLunas)
	stats["invoice_belum_lunas"] = belumLunas

	return stats, nil
}
