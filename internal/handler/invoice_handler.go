package handler

import (
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	uc          *usecase.InvoiceUsecase
	invoiceRepo repository.InvoiceRepository
}

func NewInvoiceHandler(uc *usecase.InvoiceUsecase, invoiceRepo repository.InvoiceRepository) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, invoiceRepo: invoiceRepo}
}

type CreateInvoiceRequest struct {
	OrderID    *uint   `json:"order_id"`
	CustomerID uint    `json:"customer_id" validate:"required"`
	SubTotal   float64 `json:"sub_total" validate:"required,gt=0"`
	PpnAmount  float64 `json:"ppn_amount" validate:"gte=0"`
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field customer_id dan sub_total wajib diisi"})
	}

	invoice := model.Invoice{
		OrderID:    req.OrderID,
		CustomerID: req.CustomerID,
		SubTotal:   req.SubTotal,
		PpnAmount:  req.PpnAmount,
	}

	kuitansi, err := h.uc.CreateInvoice(&invoice)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan invoice"})
	}

	// Muat ulang: kuitansi catch-up DP desain bisa mengubah agregat
	saved, err := h.invoiceRepo.GetByID(invoice.ID)
	if err != nil {
		saved = &invoice
	}

	resp := fiber.Map{"success": true, "data": saved}
	if kuitansi != nil {
		resp["kuitansi"] = kuitansi
	}
	return c.JSON(resp)
}

func (h *InvoiceHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.invoiceRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data invoice"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	invoice, err := h.invoiceRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": invoice})
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.uc.DeleteInvoice(uint(id)); err != nil {
		if err == usecase.ErrInvoiceTidakDitemukan {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Invoice dihapus"})
}
