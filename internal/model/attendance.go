package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPresent         = "present"
	StatusHolidayOvertime = "holiday_overtime"

	MethodFingerprint = "fingerprint"
	MethodManual      = "manual"
)

// AttendanceLog: satu baris per karyawan per tanggal (dipaksa unique index).
type AttendanceLog struct {
	gorm.Model
	KaryawanID uint   `json:"karyawan_id" gorm:"uniqueIndex:idx_karyawan_tanggal;not null"`
	Tanggal    string `json:"tanggal" gorm:"size:10;uniqueIndex:idx_karyawan_tanggal;not null"` // Format YYYY-MM-DD (WIB)

	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`

	TotalTimeInOffice float64 `json:"total_time_in_office"`
	BreakTime         float64 `json:"break_time" gorm:"default:1"` // Jam istirahat, flat 1 jam
	EffectiveHours    float64 `json:"effective_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	DeficitHours      float64 `json:"deficit_hours"`

	Status   string  `json:"status" gorm:"default:present"` // present / holiday_overtime
	Method   string  `json:"method"`                        // fingerprint / manual
	DeviceSN *string `json:"device_sn"`

	Karyawan Karyawan `json:"karyawan,omitempty" gorm:"foreignKey:KaryawanID"`
}

// AttendanceDeficitReport: rekap kekurangan jam per karyawan per bulan.
// Diupdate incremental setiap ada check-out yang menghasilkan defisit,
// tidak pernah dihitung ulang dari nol.
type AttendanceDeficitReport struct {
	gorm.Model
	KaryawanID uint   `json:"karyawan_id" gorm:"uniqueIndex:idx_defisit_periode;not null"`
	Bulan      string `json:"bulan" gorm:"size:2;uniqueIndex:idx_defisit_periode;not null"` // Format 01-12
	Tahun      string `json:"tahun" gorm:"size:4;uniqueIndex:idx_defisit_periode;not null"`

	TotalDeficitHours float64 `json:"total_deficit_hours"`
	DeficitCount      int     `json:"deficit_count"`

	Karyawan Karyawan `json:"karyawan,omitempty" gorm:"foreignKey:KaryawanID"`
}
