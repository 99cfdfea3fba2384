package handler

import (
	"fmt"
	"time"

	"erp-kozo-backend/internal/mailer"
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	uc           *usecase.OrderUsecase
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	mail         *mailer.Mailer
}

func NewOrderHandler(uc *usecase.OrderUsecase, orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, mail *mailer.Mailer) *OrderHandler {
	return &OrderHandler{uc: uc, orderRepo: orderRepo, customerRepo: customerRepo, mail: mail}
}

type CreateOrderRequest struct {
	CustomerID  uint    `json:"customer_id" validate:"required"`
	NamaPesanan string  `json:"nama_pesanan" validate:"required"`
	Jumlah      int     `json:"jumlah" validate:"required,gt=0"`
	Catatan     string  `json:"catatan"`
	DpDesain    float64 `json:"dp_desain"`
	DpProduksi  float64 `json:"dp_produksi"`
	Pelunasan   float64 `json:"pelunasan"`
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field customer_id, nama_pesanan dan jumlah wajib diisi"})
	}
	if _, err := h.customerRepo.GetByID(req.CustomerID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer tidak ditemukan"})
	}

	order := model.Order{
		CustomerID:     req.CustomerID,
		NamaPesanan:    req.NamaPesanan,
		Jumlah:         req.Jumlah,
		Catatan:        req.Catatan,
		Stage:          model.StageCustomerDpDesain,
		StageEnteredAt: time.Now().In(usecase.WIB),
		DpDesain:       req.DpDesain,
		DpProduksi:     req.DpProduksi,
		Pelunasan:      req.Pelunasan,
	}
	if err := h.orderRepo.Create(&order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan order"})
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

func (h *OrderHandler) GetAll(c *fiber.Ctx) error {
	stage := c.Query("stage")
	var (
		list []model.Order
		err  error
	)
	if stage != "" {
		list, err = h.orderRepo.GetByStage(stage)
	} else {
		list, err = h.orderRepo.GetAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data order"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	order, err := h.orderRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

type UpdateOrderRequest struct {
	NamaPesanan    string  `json:"nama_pesanan"`
	Jumlah         int     `json:"jumlah"`
	Catatan        string  `json:"catatan"`
	TrackingNumber string  `json:"tracking_number"`
	DpDesain       float64 `json:"dp_desain"`
	DpProduksi     float64 `json:"dp_produksi"`
	Pelunasan      float64 `json:"pelunasan"`
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	order, err := h.orderRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order tidak ditemukan"})
	}

	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.NamaPesanan != "" {
		order.NamaPesanan = req.NamaPesanan
	}
	if req.Jumlah > 0 {
		order.Jumlah = req.Jumlah
	}
	if req.Catatan != "" {
		order.Catatan = req.Catatan
	}
	if req.TrackingNumber != "" {
		resi := req.TrackingNumber
		order.TrackingNumber = &resi
	}
	// Nominal pembayaran hanya boleh diubah selama belum diverifikasi
	if req.DpDesain > 0 && !order.DpDesainVerified {
		order.DpDesain = req.DpDesain
	}
	if req.DpProduksi > 0 && !order.DpProduksiVerified {
		order.DpProduksi = req.DpProduksi
	}
	if req.Pelunasan > 0 && !order.PelunasanVerified {
		order.Pelunasan = req.Pelunasan
	}

	if err := h.orderRepo.Update(order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update order"})
	}
	return c.JSON(fiber.Map{"success": true, "data": order})
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.orderRepo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order tidak ditemukan"})
	}
	if err := h.orderRepo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus order"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Order dihapus"})
}

type MoveStageRequest struct {
	CurrentStage string `json:"current_stage" validate:"required"`
	NextStage    string `json:"next_stage" validate:"required"`
}

func (h *OrderHandler) MoveStage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req MoveStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Field current_stage dan next_stage wajib diisi"})
	}

	result, err := h.uc.MoveToNextStage(uint(id), req.CurrentStage, req.NextStage)
	if err != nil {
		if err == usecase.ErrOrderTidakDitemukan {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Notifikasi email saat order masuk pengiriman
	if req.NextStage == model.StagePengiriman && h.mail.Enabled() {
		if customer, err := h.customerRepo.GetByID(result.Order.CustomerID); err == nil && customer.Email != "" {
			resi := ""
			if result.Order.TrackingNumber != nil {
				resi = *result.Order.TrackingNumber
			}
			go func(email, nama, pesanan, resi string) {
				if err := h.mail.SendShippingNotification(email, nama, pesanan, resi); err != nil {
					fmt.Println("Gagal kirim email pengiriman:", err)
				}
			}(customer.Email, customer.Nama, result.Order.NamaPesanan, resi)
		}
	}

	resp := fiber.Map{"success": true, "data": result.Order}
	if result.SPKWarning != "" {
		resp["spk_warning"] = result.SPKWarning
	}
	return c.JSON(resp)
}

type VerifyPaymentRequest struct {
	Jenis  string   `json:"jenis" validate:"required,oneof=dp_desain dp_produksi pelunasan"`
	Jumlah *float64 `json:"jumlah"`
}

func (h *OrderHandler) VerifyPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jenis harus dp_desain, dp_produksi atau pelunasan"})
	}

	result, err := h.uc.VerifyDPPayment(uint(id), req.Jenis, req.Jumlah)
	if err != nil {
		if err == usecase.ErrOrderTidakDitemukan {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Notifikasi email kalau verifikasi memicu kuitansi otomatis
	if result.Kuitansi != nil && h.mail.Enabled() {
		if customer, err := h.customerRepo.GetByID(result.Order.CustomerID); err == nil && customer.Email != "" {
			go func(email, nama, nomor string, jumlah float64) {
				if err := h.mail.SendKuitansiNotification(email, nama, nomor, jumlah); err != nil {
					fmt.Println("Gagal kirim email kuitansi:", err)
				}
			}(customer.Email, customer.Nama, result.Kuitansi.Nomor, result.Kuitansi.Jumlah)
		}
	}

	resp := fiber.Map{"success": true, "data": result.Order}
	if result.Kuitansi != nil {
		resp["kuitansi"] = result.Kuitansi
	}
	return c.JSON(resp)
}
