package handler

import (
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type KaryawanHandler struct {
	repo repository.KaryawanRepository
}

func NewKaryawanHandler(repo repository.KaryawanRepository) *KaryawanHandler {
	return &KaryawanHandler{repo: repo}
}

type CreateKaryawanRequest struct {
	NIK     string `json:"nik" validate:"required"`
	Nama    string `json:"nama" validate:"required"`
	Jabatan string `json:"jabatan"`
}

func (h *KaryawanHandler) Create(c *fiber.Ctx) error {
	var req CreateKaryawanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field nik dan nama wajib diisi"})
	}

	karyawan := model.Karyawan{
		NIK:     req.NIK,
		Nama:    req.Nama,
		Jabatan: req.Jabatan,
		Status:  model.KaryawanAktif,
	}
	if err := h.repo.Create(&karyawan); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gagal menyimpan karyawan (NIK mungkin sudah dipakai)"})
	}
	return c.JSON(fiber.Map{"success": true, "data": karyawan})
}

func (h *KaryawanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data karyawan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

func (h *KaryawanHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	karyawan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": karyawan})
}

type UpdateKaryawanRequest struct {
	Nama    string `json:"nama"`
	Jabatan string `json:"jabatan"`
	Status  string `json:"status"` // active / inactive
}

func (h *KaryawanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	karyawan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}

	var req UpdateKaryawanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// NIK identitas tetap, tidak bisa diubah lewat update
	if req.Nama != "" {
		karyawan.Nama = req.Nama
	}
	if req.Jabatan != "" {
		karyawan.Jabatan = req.Jabatan
	}
	if req.Status == model.KaryawanAktif || req.Status == model.KaryawanNonaktif {
		karyawan.Status = req.Status
	}

	if err := h.repo.Update(karyawan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update karyawan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": karyawan})
}

func (h *KaryawanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan tidak ditemukan"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus karyawan"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Karyawan dihapus"})
}
