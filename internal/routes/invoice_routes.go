package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInvoiceRoutes(app *fiber.App, db *gorm.DB) {
	orderRepo := repository.NewOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	kuitansiRepo := repository.NewKuitansiRepository(db)

	uc := usecase.NewInvoiceUsecase(invoiceRepo, kuitansiRepo, orderRepo)
	invoiceHdl := handler.NewInvoiceHandler(uc, invoiceRepo)
	kuitansiHdl := handler.NewKuitansiHandler(uc, kuitansiRepo)

	invoice := app.Group("/api/invoice", middleware.Auth)
	invoice.Post("/", invoiceHdl.Create)
	invoice.Get("/", invoiceHdl.GetAll)
	invoice.Get("/:id", invoiceHdl.GetByID)
	invoice.Delete("/:id", invoiceHdl.Delete)

	kuitansi := app.Group("/api/kuitansi", middleware.Auth)
	kuitansi.Post("/", kuitansiHdl.Create)
	kuitansi.Get("/", kuitansiHdl.GetAll)
	kuitansi.Delete("/:id", kuitansiHdl.Delete)
}
