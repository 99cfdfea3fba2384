package main

import (
	"fmt"

	"erp-kozo-backend/config"
	"erp-kozo-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global. CORS juga menjawab preflight OPTIONS untuk
	// endpoint mesin absensi.
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupDeviceRoutes(app, config.DB)
	routes.SetupAbsensiRoutes(app, config.DB)
	routes.SetupKaryawanRoutes(app, config.DB)
	routes.SetupCustomerRoutes(app, config.DB)
	routes.SetupOrderRoutes(app, config.DB)
	routes.SetupInvoiceRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
