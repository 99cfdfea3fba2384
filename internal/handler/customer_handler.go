package handler

import (
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	repo repository.CustomerRepository
}

func NewCustomerHandler(repo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{repo: repo}
}

type CreateCustomerRequest struct {
	Nama   string `json:"nama" validate:"required"`
	NoHP   string `json:"no_hp"`
	Email  string `json:"email" validate:"omitempty,email"`
	Alamat string `json:"alamat"`
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama wajib diisi dan email harus valid"})
	}

	customer := model.Customer{
		Nama:   req.Nama,
		NoHP:   req.NoHP,
		Email:  req.Email,
		Alamat: req.Alamat,
	}
	if err := h.repo.Create(&customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan customer"})
	}
	return c.JSON(fiber.Map{"success": true, "data": customer})
}

func (h *CustomerHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data customer"})
	}
	return c.JSON(fiber.Map{"success": true, "data": list})
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	customer, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"success": true, "data": customer})
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	customer, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer tidak ditemukan"})
	}

	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	if req.Nama != "" {
		customer.Nama = req.Nama
	}
	if req.NoHP != "" {
		customer.NoHP = req.NoHP
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Alamat != "" {
		customer.Alamat = req.Alamat
	}

	if err := h.repo.Update(customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update customer"})
	}
	return c.JSON(fiber.Map{"success": true, "data": customer})
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.repo.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer tidak ditemukan"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus customer"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Customer dihapus"})
}
