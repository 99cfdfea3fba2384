package handler

import (
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type KuitansiHandler struct {
	uc           *usecase.InvoiceUsecase
	kuitansiRepo repository.KuitansiRepository
}

func NewKuitansiHandler(uc *usecase.InvoiceUsecase, kuitansiRepo repository.KuitansiRepository) *KuitansiHandler {
	return &KuitansiHandler{uc: uc, kuitansiRepo: kuitansiRepo}
}

type CreateKuitansiRequest struct {
	InvoiceID  uint    `json:"invoice_id" validate:"required"`
	Jumlah     float64 `json:"jumlah" validate:"required,gt=0"`
	Metode     string  `json:"metode"`
	Keterangan string  `json:"keterangan"`
}

func (h *KuitansiHandler) Create(c *fiber.Ctx) error {
	var req CreateKuitansiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field invoice_id dan jumlah wajib diisi"})
	}

	metode := req.Metode
	if metode == "" {
		metode = "transfer"
	}

	kuitansi, err := h.uc.CreateKuitansi(&model.Kuitansi{
		InvoiceID:  req.InvoiceID,
		Jumlah:     req.Jumlah,
		Metode:     metode,
		Keterangan: req.Keterangan,
	})
	if err != nil {
		if err == usecase.ErrInvoiceTidakDitemukan {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		// Termasuk pembayaran melebihi sisa tagihan
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": kuitansi})
}

func (h *KuitansiHandler) GetAll(c *fiber.Ctx) error {
	invoiceID := c.QueryInt("invoice_id")
	var (
		list []model.Kuitansi
		err  error
	)
	if invoiceID > 0 {
		list, err = h.kuitansiRepo.GetByInvoiceID(uint(invoiceID))
	} else {
		list, err = h.kuitansiRepo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data kuitansi"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

func (h *KuitansiHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.uc.DeleteKuitansi(uint(id)); err != nil {
		if err == usecase.ErrKuitansiTidakDitemukan {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus kuitansi"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Kuitansi dihapus, status invoice dihitung ulang"})
}
