package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"luxe-estates/internal/config"
	"luxe-estates/internal/database"
	"luxe-estates/internal/handlers"
	"luxe-estates/internal/repositories"
	"luxe-estates/internal/routes"
	"luxe-estates/internal/services"
	"luxe-estates/internal/storage"
)

func NewServer() *http.Server {
	cfg := config.New()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	pool, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	uploadStore, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload storage: %v", err)
	}

	// Dependency injection
	accountRepo := repositories.NewAccountRepository(pool)
	propertyRepo := repositories.NewPropertyRepository(pool)
	contactRepo := repositories.NewContactRepository(pool)

	jwtSecret := []byte(cfg.JWTSecret)
	authService := services.NewAuthService(accountRepo, jwtSecret)
	propertyService := services.NewPropertyService(propertyRepo, uploadStore)
	contactService := services.NewContactService(contactRepo)

	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are served verbatim under /uploads.
	router.Static("/uploads", uploadStore.Dir())

	routes.RegisterRoutes(router, authHandler, propertyHandler, contactHandler, jwtSecret)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
