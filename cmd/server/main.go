package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"masterdesk/internal/adapters/http/middleware"
	"masterdesk/internal/adapters/http/routes"
	"masterdesk/internal/adapters/persistence"
	"masterdesk/internal/adapters/persistence/models"
	"masterdesk/internal/config"
	"masterdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "masterdesk/docs" // Swagger docs
)

// @title MasterDesk API
// @version 1.0
// @description Admin console API for document type and product master data
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@masterdesk.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to the database unless the file store driver is selected
	var db *gorm.DB
	if cfg.UsesDatabase() {
		db, err = config.ConnectDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer config.CloseDatabase()

		// Auto migrate (creates tables if not exist)
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to auto migrate: %v", err)
		}
		log.Println("✅ Database migration completed")

		// Seed demo admin and master data
		if err := config.SeedData(db); err != nil {
			log.Printf("⚠️ Warning: Failed to seed data: %v", err)
		}
	}

	// Build repositories for the selected store driver. The file store seeds
	// its blobs lazily on first access.
	repos, err := persistence.Open(cfg, db)
	if err != nil {
		log.Fatalf("❌ Failed to open record store: %v", err)
	}

	// Nightly cleanup of expired refresh tokens
	cronService := services.NewCronService(repos.RefreshTokens)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MasterDesk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, repos, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
