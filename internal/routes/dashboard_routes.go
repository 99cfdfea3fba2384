package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/dashboard", middleware.Auth)

	api.Get("/", hdl.GetStats)
}
