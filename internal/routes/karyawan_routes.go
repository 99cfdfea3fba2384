package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKaryawanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewKaryawanRepository(db)
	hdl := handler.NewKaryawanHandler(repo)

	api := app.Group("/api/karyawan", middleware.Auth)

	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
