package routes

import (
	"erp-kozo-backend/internal/handler"
	"erp-kozo-backend/internal/mailer"
	"erp-kozo-backend/internal/middleware"
	"erp-kozo-backend/internal/repository"
	"erp-kozo-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderRepo := repository.NewOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	kuitansiRepo := repository.NewKuitansiRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	invoiceUC := usecase.NewInvoiceUsecase(invoiceRepo, kuitansiRepo, orderRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, invoiceRepo, invoiceUC)
	hdl := handler.NewOrderHandler(orderUC, orderRepo, customerRepo, mailer.NewFromEnv())

	api := app.Group("/api/order", middleware.Auth)

	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	api.Post("/:id/stage", hdl.MoveStage)
	api.Post("/:id/verify-payment", hdl.VerifyPayment)
}
