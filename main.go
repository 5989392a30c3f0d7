package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"filmshelf/internal/handlers"
	"filmshelf/internal/middleware"
	"filmshelf/internal/models"
	"filmshelf/internal/repositories"
	"filmshelf/internal/services"
	"filmshelf/internal/tmdb"
	"filmshelf/pkg/rabbitmq"
)

// openDatabase opens the configured relational store and migrates the schema.
// SQLite is the default, matching the original single-file deployment;
// Postgres is available for anything bigger.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Movie{}); err != nil {
		return nil, err
	}
	return db, nil
}

// newApp wires repositories, services and handlers into a Fiber app.
// mqClient may be nil, in which case no events are published.
func newApp(db *gorm.DB, catalog tmdb.API, mqClient *rabbitmq.Client, jwtSecret string) (*fiber.App, error) {
	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	movieRepo := repositories.NewGORMMovieRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	collectionService := services.NewCollectionService(movieRepo, mqClient)
	importService := services.NewImportService(catalog, movieRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	movieHandler := handlers.NewMovieHandler(collectionService)
	importHandler := handlers.NewImportHandler(importService)

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")

	// Public authentication routes
	authHandler.RegisterRoutes(apiV1)

	// Everything touching a collection requires a session
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protectedRoutes)
	movieHandler.RegisterRoutes(protectedRoutes)
	importHandler.RegisterRoutes(protectedRoutes)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "filmshelf.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TMDB_API_KEY", "")
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv() // Load environment variables

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	logLevel, err := zerolog.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(logLevel)

	// --- Initialize Database ---
	db, err := openDatabase(viper.GetString("DATABASE_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// --- Initialize Catalog Client ---
	catalog, err := tmdb.NewClient(
		viper.GetString("TMDB_BASE_URL"),
		viper.GetString("TMDB_IMAGE_BASE_URL"),
		viper.GetString("TMDB_API_KEY"),
		zlog.With().Str("component", "tmdb").Logger(),
	)
	if err != nil {
		log.Fatalf("Failed to initialize catalog client: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit

		// Log-only consumer so the event stream is observable without a
		// separate process.
		go func() {
			log.Println("Starting RabbitMQ consumer for movie events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received movie event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeMovieEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Build the App ---
	app, err := newApp(db, catalog, mqClient, jwtSecret)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// --- Start HTTP Server ---
	appPort := viper.GetString("APP_PORT")
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
