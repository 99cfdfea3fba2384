package handler

import (
	"time"

	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats: data papan Kanban + ringkasan absensi hari ini.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	tanggal := time.Now().In(usecase.WIB).Format("2006-01-02")

	stats, err := h.repo.GetDashboardStats(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik"})
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}
