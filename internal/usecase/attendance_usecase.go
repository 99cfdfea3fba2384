package usecase

import (
	"errors"
	"fmt"
	"time"

	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
)

var (
	ErrKaryawanTidakDitemukan = errors.New("karyawan dengan NIK tersebut tidak ditemukan")
	ErrKaryawanNonaktif       = errors.New("karyawan sudah nonaktif")
	ErrSudahCheckIn           = errors.New("sudah ada check-in untuk tanggal ini")
	ErrBelumCheckIn           = errors.New("belum ada check-in untuk tanggal ini")
	ErrSudahCheckOut          = errors.New("sudah ada check-out untuk tanggal ini")
	ErrDurasiNegatif          = errors.New("jam pulang tidak boleh sebelum jam masuk")
)

type EventType string

const (
	EventCheckIn  EventType = "check_in"
	EventCheckOut EventType = "check_out"
)

// AttendanceEvent: bentuk ternormalisasi dari ketiga format mesin absensi
// (push SDK, webhook vendor, protokol bulk ATTLOG) maupun input manual.
type AttendanceEvent struct {
	BadgeID   string
	Timestamp time.Time
	Type      EventType
	Method    string // model.MethodFingerprint / model.MethodManual
	DeviceSN  string
}

type AttendanceUsecase struct {
	karyawanRepo repository.KaryawanRepository
	logRepo      repository.AttendanceRepository
	deficitRepo  repository.DeficitRepository
}

func NewAttendanceUsecase(karyawanRepo repository.KaryawanRepository, logRepo repository.AttendanceRepository, deficitRepo repository.DeficitRepository) *AttendanceUsecase {
	return &AttendanceUsecase{
		karyawanRepo: karyawanRepo,
		logRepo:      logRepo,
		deficitRepo:  deficitRepo,
	}
}

// ProcessEvent menjalankan state machine check-in/check-out per karyawan per
// tanggal. Error yang dikembalikan bersifat informatif; handler webhook
// mesin tetap membalas "OK" apapun hasilnya, hanya path interaktif yang
// meneruskan error ke pemanggil.
func (u *AttendanceUsecase) ProcessEvent(ev AttendanceEvent) (*model.AttendanceLog, error) {
	karyawan, err := u.karyawanRepo.GetByNIK(ev.BadgeID)
	if err != nil {
		return nil, ErrKaryawanTidakDitemukan
	}
	if karyawan.Status != model.KaryawanAktif {
		return nil, ErrKaryawanNonaktif
	}

	ts := ev.Timestamp.In(WIB)
	tanggal := ts.Format("2006-01-02")

	switch ev.Type {
	case EventCheckIn:
		return u.handleCheckIn(karyawan, ts, tanggal, ev)
	case EventCheckOut:
		return u.handleCheckOut(karyawan, ts, tanggal, ev)
	default:
		return nil, fmt.Errorf("tipe event tidak dikenal: %s", ev.Type)
	}
}

func (u *AttendanceUsecase) handleCheckIn(karyawan *model.Karyawan, ts time.Time, tanggal string, ev AttendanceEvent) (*model.AttendanceLog, error) {
	log := &model.AttendanceLog{
		KaryawanID: karyawan.ID,
		Tanggal:    tanggal,
		CheckIn:    &ts,
		BreakTime:  BreakTimeHours,
		Status:     model.StatusPresent,
		Method:     ev.Method,
	}
	if ev.DeviceSN != "" {
		sn := ev.DeviceSN
		log.DeviceSN = &sn
	}

	created, err := u.logRepo.CreateIfAbsent(log)
	if err != nil {
		return nil, err
	}
	if !created {
		// Mesin sering mengirim event yang sama dua kali; idempotent no-op.
		return nil, ErrSudahCheckIn
	}
	return log, nil
}

func (u *AttendanceUsecase) handleCheckOut(karyawan *model.Karyawan, ts time.Time, tanggal string, ev AttendanceEvent) (*model.AttendanceLog, error) {
	log, err := u.logRepo.GetByKaryawanAndDate(karyawan.ID, tanggal)
	if err != nil {
		return nil, ErrBelumCheckIn
	}
	if log.CheckIn == nil {
		return nil, ErrBelumCheckIn
	}
	if log.CheckOut != nil {
		return nil, ErrSudahCheckOut
	}

	hasil := HitungShift(*log.CheckIn, ts)

	log.CheckOut = &ts
	log.TotalTimeInOffice = hasil.TotalHours
	log.EffectiveHours = hasil.EffectiveHours
	log.OvertimeHours = hasil.OvertimeHours
	log.DeficitHours = hasil.DeficitHours
	log.Status = hasil.Status
	if log.DeviceSN == nil && ev.DeviceSN != "" {
		sn := ev.DeviceSN
		log.DeviceSN = &sn
	}

	if err := u.logRepo.Update(log); err != nil {
		return nil, err
	}

	if hasil.DeficitHours > 0 {
		if err := u.deficitRepo.Upsert(karyawan.ID, ts.Format("01"), ts.Format("2006"), hasil.DeficitHours); err != nil {
			// Rekap defisit bukan bagian dari kontrak ke mesin; log saja.
			fmt.Println("Gagal update rekap defisit:", err)
		}
	}

	return log, nil
}

// ManualEntry: input absensi satu hari penuh (masuk + pulang) oleh admin.
// Berbeda dengan path mesin, durasi negatif ditolak eksplisit di sini.
func (u *AttendanceUsecase) ManualEntry(nik string, checkIn time.Time, checkOut time.Time) (*model.AttendanceLog, error) {
	karyawan, err := u.karyawanRepo.GetByNIK(nik)
	if err != nil {
		return nil, ErrKaryawanTidakDitemukan
	}
	if karyawan.Status != model.KaryawanAktif {
		return nil, ErrKaryawanNonaktif
	}
	if checkOut.Before(checkIn) {
		return nil, ErrDurasiNegatif
	}

	in := checkIn.In(WIB)
	out := checkOut.In(WIB)
	hasil := HitungShift(in, out)

	log := &model.AttendanceLog{
		KaryawanID:        karyawan.ID,
		Tanggal:           in.Format("2006-01-02"),
		CheckIn:           &in,
		CheckOut:          &out,
		TotalTimeInOffice: hasil.TotalHours,
		BreakTime:         BreakTimeHours,
		EffectiveHours:    hasil.EffectiveHours,
		OvertimeHours:     hasil.OvertimeHours,
		DeficitHours:      hasil.DeficitHours,
		Status:            hasil.Status,
		Method:            model.MethodManual,
	}

	created, err := u.logRepo.CreateIfAbsent(log)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrSudahCheckIn
	}

	if hasil.DeficitHours > 0 {
		if err := u.deficitRepo.Upsert(karyawan.ID, out.Format("01"), out.Format("2006"), hasil.DeficitHours); err != nil {
			fmt.Println("Gagal update rekap defisit:", err)
		}
	}

	return log, nil
}

// CorrectLog: koreksi jam masuk/pulang oleh owner. Field turunan dihitung
// ulang; rekap defisit bulan berjalan TIDAK dikoreksi retroaktif (rekap
// bersifat incremental, lihat model.AttendanceDeficitReport).
func (u *AttendanceUsecase) CorrectLog(id uint, checkIn time.Time, checkOut time.Time) (*model.AttendanceLog, error) {
	log, err := u.logRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if checkOut.Before(checkIn) {
		return nil, ErrDurasiNegatif
	}

	in := checkIn.In(WIB)
	out := checkOut.In(WIB)
	hasil := HitungShift(in, out)

	log.CheckIn = &in
	log.CheckOut = &out
	log.TotalTimeInOffice = hasil.TotalHours
	log.EffectiveHours = hasil.EffectiveHours
	log.OvertimeHours = hasil.OvertimeHours
	log.DeficitHours = hasil.DeficitHours
	log.Status = hasil.Status

	if err := u.logRepo.Update(log); err != nil {
		return nil, err
	}
	return log, nil
}
