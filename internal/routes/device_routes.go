package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Endpoint mesin absensi: tanpa auth, kontraknya ke hardware bukan ke user.
func SetupDeviceRoutes(app *fiber.App, db *gorm.DB) {
	karyawanRepo := repository.NewKaryawanRepository(db)
	logRepo := repository.NewAttendanceRepository(db)
	deficitRepo := repository.NewDeficitRepository(db)
	uc := usecase.NewAttendanceUsecase(karyawanRepo, logRepo, deficitRepo)
	hdl := handler.NewDeviceHandler(uc)

	api := app.Group("/api/device")
	api.Post("/push", hdl.PushEvent)
	api.Post("/webhook", hdl.VendorWebhook)
	api.Get("/webhook", hdl.VendorWebhook)
	api.Get("/ping", hdl.Ping)

	// Path standar mesin ZKTeco
	app.Post("/iclock/cdata", hdl.BulkAttlog)
	app.Get("/iclock/getrequest", hdl.Ping)
}
