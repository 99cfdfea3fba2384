package usecase

import (
	"testing"
	"time"

	"erp-kozo-backend/internal/model"
)

func wib(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, WIB)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHitungShiftSkenario(t *testing.T) {
	tests := []struct {
		name           string
		checkIn        string
		checkOut       string
		totalHours     float64
		effectiveHours float64
		overtimeHours  float64
		deficitHours   float64
		isHoliday      bool
		status         string
	}{
		{
			name:     "hari kerja normal 9 jam",
			checkIn:  "2026-02-03 08:00:00",
			checkOut: "2026-02-03 17:00:00",
			totalHours: 9, effectiveHours: 8, overtimeHours: 0, deficitHours: 0,
			isHoliday: false, status: model.StatusPresent,
		},
		{
			name:     "minggu 6 jam dihitung lembur libur",
			checkIn:  "2026-02-01 08:00:00",
			checkOut: "2026-02-01 14:00:00",
			totalHours: 6, effectiveHours: 5, overtimeHours: 0, deficitHours: 3,
			isHoliday: true, status: model.StatusHolidayOvertime,
		},
		{
			name:     "minggu kurang dari 4 jam efektif tetap present",
			checkIn:  "2026-02-01 08:00:00",
			checkOut: "2026-02-01 12:00:00",
			totalHours: 4, effectiveHours: 3, overtimeHours: 0, deficitHours: 5,
			isHoliday: true, status: model.StatusPresent,
		},
		{
			name:     "pulang cepat menghasilkan defisit",
			checkIn:  "2026-02-03 08:00:00",
			checkOut: "2026-02-03 14:30:00",
			totalHours: 6.5, effectiveHours: 5.5, overtimeHours: 0, deficitHours: 2.5,
			isHoliday: false, status: model.StatusPresent,
		},
		{
			name:     "lembur hari kerja",
			checkIn:  "2026-02-03 08:00:00",
			checkOut: "2026-02-03 20:00:00",
			totalHours: 12, effectiveHours: 11, overtimeHours: 3, deficitHours: 0,
			isHoliday: false, status: model.StatusPresent,
		},
		{
			name:     "durasi lebih pendek dari istirahat di-clamp ke nol",
			checkIn:  "2026-02-03 08:00:00",
			checkOut: "2026-02-03 08:30:00",
			totalHours: 0.5, effectiveHours: 0, overtimeHours: 0, deficitHours: 8,
			isHoliday: false, status: model.StatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasil := HitungShift(wib(tt.checkIn), wib(tt.checkOut))

			if hasil.TotalHours != tt.totalHours {
				t.Errorf("TotalHours = %v, mau %v", hasil.TotalHours, tt.totalHours)
			}
			if hasil.EffectiveHours != tt.effectiveHours {
				t.Errorf("EffectiveHours = %v, mau %v", hasil.EffectiveHours, tt.effectiveHours)
			}
			if hasil.OvertimeHours != tt.overtimeHours {
				t.Errorf("OvertimeHours = %v, mau %v", hasil.OvertimeHours, tt.overtimeHours)
			}
			if hasil.DeficitHours != tt.deficitHours {
				t.Errorf("DeficitHours = %v, mau %v", hasil.DeficitHours, tt.deficitHours)
			}
			if hasil.IsHoliday != tt.isHoliday {
				t.Errorf("IsHoliday = %v, mau %v", hasil.IsHoliday, tt.isHoliday)
			}
			if hasil.Status != tt.status {
				t.Errorf("Status = %q, mau %q", hasil.Status, tt.status)
			}
		})
	}
}

func TestHitungShiftBatasDelapanJam(t *testing.T) {
	// Tepat 8 jam efektif (9 jam di kantor): lembur dan defisit dua-duanya nol
	hasil := HitungShift(wib("2026-02-03 08:00:00"), wib("2026-02-03 17:00:00"))
	if hasil.OvertimeHours != 0 || hasil.DeficitHours != 0 {
		t.Fatalf("pada 8 jam efektif: overtime=%v deficit=%v, mau 0 dan 0",
			hasil.OvertimeHours, hasil.DeficitHours)
	}
}

func TestHitungShiftLemburDanDefisitTidakPernahBersamaan(t *testing.T) {
	checkIn := wib("2026-02-03 07:00:00")
	for m := 0; m <= 14*60; m += 7 {
		checkOut := checkIn.Add(time.Duration(m) * time.Minute)
		hasil := HitungShift(checkIn, checkOut)
		if hasil.OvertimeHours > 0 && hasil.DeficitHours > 0 {
			t.Fatalf("durasi %d menit: overtime=%v dan deficit=%v dua-duanya positif",
				m, hasil.OvertimeHours, hasil.DeficitHours)
		}
	}
}

func TestHitungShiftHariLiburPakaiHariCheckOut(t *testing.T) {
	// Check-in Sabtu malam, check-out Minggu pagi: dihitung hari libur
	hasil := HitungShift(wib("2026-01-31 22:00:00"), wib("2026-02-01 06:00:00"))
	if !hasil.IsHoliday {
		t.Fatalf("checkout jatuh di hari Minggu, IsHoliday harus true")
	}
	if hasil.Status != model.StatusHolidayOvertime {
		t.Fatalf("Status = %q, mau %q (7 jam efektif >= 4)", hasil.Status, model.StatusHolidayOvertime)
	}
}
