package app

import (
	"fmt"
	"log"

	"tienda-catalogo/app/controller"
	"tienda-catalogo/app/middleware"
	"tienda-catalogo/app/router"
	"tienda-catalogo/config"
	"tienda-catalogo/db"
	"tienda-catalogo/ratelimit"
	"tienda-catalogo/repository"
	"tienda-catalogo/service"
)

// Initialize connects the database, runs migrations, and wires every
// repository, service, middleware and controller into the route table.
func Initialize(cfg *config.Config) error {
	if err := db.InitDB(cfg.DatabaseDSN); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Println("✓ Database connection established")

	if err := db.Migrate(cfg.MigrationsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("✓ Database migrations applied")

	storageService, err := service.NewStorageService(cfg.GCSCredentials, cfg.GCSBucket)
	if err != nil {
		return fmt.Errorf("failed to initialize storage service: %w", err)
	}
	log.Printf("✓ Object storage ready (bucket: %s)", cfg.GCSBucket)

	// Repositories
	categoryRepo := repository.NewCategoryRepository()
	productRepo := repository.NewProductRepository()
	imageRepo := repository.NewProductImageRepository()
	priceRepo := repository.NewProductPriceRepository()
	selectionRepo := repository.NewSavedSelectionRepository()

	// Services
	authService := service.NewAuthService(cfg.AuthSecret, cfg.AdminPassword)
	imageService := service.NewImageService(storageService, imageRepo)
	catalogService := service.NewCatalogService(productRepo, imageRepo, storageService, authService, cfg.BaseURL, cfg.ChromePath)

	// Middleware
	authMW := middleware.NewAuthMiddleware(authService, cfg.IsProduction())
	rateMW := middleware.NewRateLimitMiddleware(ratelimit.New(cfg.RedisAddr))

	// Controllers
	controllers := &router.Controllers{
		Auth:         controller.NewAuthController(authService, authMW),
		Category:     controller.NewCategoryController(categoryRepo),
		Product:      controller.NewProductController(productRepo, imageService),
		ProductImage: controller.NewProductImageController(imageService),
		ProductPrice: controller.NewProductPriceController(priceRepo),
		Selection:    controller.NewSelectionController(selectionRepo),
		Catalog:      controller.NewCatalogController(catalogService, authService),
	}

	router.SetupRoutes(controllers, authMW, rateMW)
	log.Println("✓ Routes registered")

	return nil
}
