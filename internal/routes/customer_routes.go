package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCustomerRepository(db)
	hdl := handler.NewCustomerHandler(repo)

	api := app.Group("/api/customer", middleware.Auth)

	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
