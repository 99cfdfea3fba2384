package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/model"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := handler.NewAuthHandler(uc)

	api := app.Group("/api/auth")

	api.Post("/login", hdl.Login)
	// Tambah user baru hanya oleh owner; akun owner pertama lewat seeder
	api.Post("/register", middleware.Auth, middleware.Role(model.RoleOwner), hdl.Register)
}
