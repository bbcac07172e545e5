package routes

import (
	"masterdesk/internal/adapters/http/handlers"
	"masterdesk/internal/adapters/http/middleware"
	"masterdesk/internal/adapters/persistence"
	"masterdesk/internal/config"
	"masterdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, repos *persistence.Repositories, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(repos.Users, repos.RefreshTokens, cfg)
	docTypeService := services.NewDocumentTypeService(repos.DocumentTypes)
	productService := services.NewProductService(repos.Products)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	docTypeHandler := handlers.NewDocumentTypeHandler(docTypeService)
	productHandler := handlers.NewProductHandler(productService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Master routes (Admin only)
	masterRoutes := apiV1.Group("/master")
	masterRoutes.Use(middleware.AuthMiddleware(cfg))
	masterRoutes.Use(middleware.AdminOnly())
	setupMasterRoutes(masterRoutes, docTypeHandler, productHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (stricter rate limit against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Session)
}

// setupMasterRoutes configures master data routes (Admin only)
func setupMasterRoutes(
	router fiber.Router,
	docTypeHandler *handlers.DocumentTypeHandler,
	productHandler *handlers.ProductHandler,
) {
	// Document Types
	router.Get("/document-types", docTypeHandler.List)
	router.Get("/document-types/:id", docTypeHandler.Get)
	router.Post("/document-types", docTypeHandler.Create)
	router.Put("/document-types/:id", docTypeHandler.Update)

	// Products
	router.Get("/products", productHandler.List)
	router.Get("/products/types", productHandler.Types)
	router.Get("/products/:id", productHandler.Get)
	router.Post("/products", productHandler.Create)
	router.Put("/products/:id", productHandler.Update)
}
