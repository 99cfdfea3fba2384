package handler

import (
	"errors"
	"time"

	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AbsensiHandler struct {
	uc          *usecase.AttendanceUsecase
	logRepo     repository.AttendanceRepository
	deficitRepo repository.DeficitRepository
}

func NewAbsensiHandler(uc *usecase.AttendanceUsecase, logRepo repository.AttendanceRepository, deficitRepo repository.DeficitRepository) *AbsensiHandler {
	return &AbsensiHandler{uc: uc, logRepo: logRepo, deficitRepo: deficitRepo}
}

type ManualEntryRequest struct {
	NIK      string `json:"nik" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`  // "2006-01-02 15:04:05" WIB
	CheckOut string `json:"check_out" validate:"required"` // "2006-01-02 15:04:05" WIB
}

// ManualEntry: input absensi manual oleh admin (mesin rusak / karyawan lupa).
func (h *AbsensiHandler) ManualEntry(c *fiber.Ctx) error {
	var req ManualEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field nik, check_in dan check_out wajib diisi"})
	}

	checkIn, err := time.ParseInLocation("2006-01-02 15:04:05", req.CheckIn, usecase.WIB)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format check_in harus YYYY-MM-DD HH:MM:SS"})
	}
	checkOut, err := time.ParseInLocation("2006-01-02 15:04:05", req.CheckOut, usecase.WIB)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format check_out harus YYYY-MM-DD HH:MM:SS"})
	}

	log, err := h.uc.ManualEntry(req.NIK, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, usecase.ErrKaryawanTidakDitemukan) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Absensi tersimpan", "data": log})
}

// GetByDate: daftar absensi satu tanggal (default hari ini).
func (h *AbsensiHandler) GetByDate(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal")
	if tanggal == "" {
		tanggal = time.Now().In(usecase.WIB).Format("2006-01-02")
	}

	list, err := h.logRepo.GetByDate(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

// GetDeficitReport: rekap defisit bulanan.
func (h *AbsensiHandler) GetDeficitReport(c *fiber.Ctx) error {
	bulan := c.Query("bulan")
	tahun := c.Query("tahun")
	if len(bulan) == 1 {
		bulan = "0" + bulan
	}
	if bulan == "" || tahun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bulan dan Tahun wajib diisi"})
	}

	list, err := h.deficitRepo.GetByMonth(bulan, tahun)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil rekap defisit"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

type CorrectLogRequest struct {
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

// Correct: koreksi jam masuk/pulang, khusus owner.
func (h *AbsensiHandler) Correct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req CorrectLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field check_in dan check_out wajib diisi"})
	}

	checkIn, err := time.ParseInLocation("2006-01-02 15:04:05", req.CheckIn, usecase.WIB)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format check_in harus YYYY-MM-DD HH:MM:SS"})
	}
	checkOut, err := time.ParseInLocation("2006-01-02 15:04:05", req.CheckOut, usecase.WIB)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format check_out harus YYYY-MM-DD HH:MM:SS"})
	}

	log, err := h.uc.CorrectLog(uint(id), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, usecase.ErrDurasiNegatif) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Log absensi tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Absensi dikoreksi", "data": log})
}

// Delete: hapus log absensi, khusus owner.
func (h *AbsensiHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if _, err := h.logRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Log absensi tidak ditemukan"})
	}

	if err := h.logRepo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus log absensi"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Log absensi dihapus"})
}
