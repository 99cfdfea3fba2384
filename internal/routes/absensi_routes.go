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

func SetupAbsensiRoutes(app *fiber.App, db *gorm.DB) {
	karyawanRepo := repository.NewKaryawanRepository(db)
	logRepo := repository.NewAttendanceRepository(db)
	deficitRepo := repository.NewDeficitRepository(db)
	uc := usecase.NewAttendanceUsecase(karyawanRepo, logRepo, deficitRepo)
	hdl := handler.NewAbsensiHandler(uc, logRepo, deficitRepo)

	api := app.Group("/api/absensi", middleware.Auth)

	api.Get("/", hdl.GetByDate)
	api.Get("/defisit", hdl.GetDeficitReport)
	api.Post("/manual", hdl.ManualEntry)

	// Koreksi dan hapus hanya untuk owner
	api.Put("/:id", middleware.Role(model.RoleOwner), hdl.Correct)
	api.Delete("/:id", middleware.Role(model.RoleOwner), hdl.Delete)
}
