package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mlacademy/backend/catalog"
	"mlacademy/backend/config"
	"mlacademy/backend/middleware"
	"mlacademy/backend/progress"
	"mlacademy/backend/routes"
	"mlacademy/backend/storage"
	"mlacademy/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}

	// Load the course catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Error loading catalog: %v", err)
		}
	}

	// Initialize logger
	logger := utils.InitLogger()

	registry := progress.NewRegistry(store)
	// Seed the default profile and touch its streak on startup.
	registry.ForProfile("default")

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, " + middleware.ProfileHeader,
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	app.Use(middleware.ProfileMiddleware())

	// Setup routes
	routes.SetupRoutes(app, cat, registry)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return storage.NewMemory(), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return storage.NewGorm(db)
	case "sqlite":
		return storage.OpenSQLite(cfg.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
