package usecase

import (
	"time"

	"erp-kozo-backend/internal/model"
)

const (
	// Jam istirahat flat, selalu dipotong dari total jam di kantor.
	BreakTimeHours = 1.0
	// Standar jam kerja efektif per hari.
	StandarJamKerja = 8.0
	// Minimal jam efektif di hari Minggu agar dihitung lembur libur.
	MinJamLemburLibur = 4.0
)

// WIB: semua tanggal dan hari absensi dihitung di zona mesin (UTC+7).
var WIB = time.FixedZone("WIB", 7*60*60)

type ShiftResult struct {
	TotalHours     float64 `json:"total_hours"`
	EffectiveHours float64 `json:"effective_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	DeficitHours   float64 `json:"deficit_hours"`
	IsHoliday      bool    `json:"is_holiday"`
	Status         string  `json:"status"`
}

// HitungShift mengubah pasangan check-in/check-out menjadi jam efektif,
// lembur dan defisit. Fungsi murni, dipakai untuk payroll: angkanya harus
// persis (float64), jangan dibulatkan di sini.
//
// Pada effective == 8.0 persis, lembur dan defisit dua-duanya nol.
func HitungShift(checkIn time.Time, checkOut time.Time) ShiftResult {
	total := checkOut.Sub(checkIn).Hours()

	effective := total - BreakTimeHours
	if effective < 0 {
		effective = 0
	}

	overtime := effective - StandarJamKerja
	if overtime < 0 {
		overtime = 0
	}

	deficit := 0.0
	if effective < StandarJamKerja {
		deficit = StandarJamKerja - effective
	}

	isHoliday := checkOut.In(WIB).Weekday() == time.Sunday

	status := model.StatusPresent
	if isHoliday && effective >= MinJamLemburLibur {
		status = model.StatusHolidayOvertime
	}

	return ShiftResult{
		TotalHours:     total,
		EffectiveHours: effective,
		OvertimeHours:  overtime,
		DeficitHours:   deficit,
		IsHoliday:      isHoliday,
		Status:         status,
	}
}
