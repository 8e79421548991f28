package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "catalog_dev_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Initialize Repository ---
	// The database connection is established once here and shared by every
	// request for the lifetime of the process. Without a DSN the API runs on
	// the in-memory repository, which is handy for local development.
	var productRepo repositories.ProductRepository
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
	} else {
		log.Println("DATABASE_DSN is not set, using in-memory product repository")
		mockRepo := repositories.NewMockProductRepository()
		seedProducts(mockRepo)
		productRepo = mockRepo
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Catalog change events are published best effort; without a broker URL
	// the service simply skips them.
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Initialize Services ---
	productService := services.NewProductService(productRepo, mqClient)
	authService := services.NewAuthService(viper.GetString("JWT_SECRET"))

	// --- Initialize Fiber App ---
	app := newApp(productService, authService)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newApp assembles the Fiber app: request logger, routes, gates, and the
// central error handler.
func newApp(productService *services.ProductService, verifier middleware.TokenVerifier) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Product API! Go to /api/products to see all products.")
	})

	productHandler := handlers.NewProductHandler(productService)
	productHandler.RegisterRoutes(
		app,
		middleware.AuthRequired(verifier),
		middleware.ValidateProduct(validator.New()),
	)

	return app
}

// seedProducts populates the in-memory repository with some initial data.
func seedProducts(repo repositories.ProductRepository) {
	products := []models.Product{
		{Name: "Laptop", Description: "High performance laptop", Price: 1200.00, Category: "electronics"},
		{Name: "Keyboard", Description: "Mechanical keyboard", Price: 75.00, Category: "electronics"},
		{Name: "Coffee Mug", Description: "Ceramic mug, 350ml", Price: 9.50, Category: "kitchen"},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}
