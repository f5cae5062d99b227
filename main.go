package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/westeastdesigns/ecom-2024/middleware"
	"github.com/westeastdesigns/ecom-2024/models"
	"github.com/westeastdesigns/ecom-2024/routes"
	"github.com/westeastdesigns/ecom-2024/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting storefront")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase(logger)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// Products default to category 1; make sure the row exists.
	if err := seedDefaultCategory(db); err != nil {
		logger.Fatal().Err(err).Msg("seeding default category failed")
	}

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(&logger))
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie session (auth state + flash messages)
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-only-insecure-secret"
		logger.Warn().Msg("SESSION_SECRET not set, using insecure default")
	}
	r.Use(sessions.Sessions("ecom_session", cookie.NewStore([]byte(secret))))
	r.Use(middleware.LoadCurrentUser(db))

	// Templates and product images
	r.LoadHTMLGlob("templates/*.html")
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, store.New(db))

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("server running")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(logger zerolog.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("db connection failed")
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}

// seedDefaultCategory guarantees the catch-all category row that
// models.DefaultCategoryID points at.
func seedDefaultCategory(db *gorm.DB) error {
	category := models.Category{ID: models.DefaultCategoryID, Name: "General"}
	return db.FirstOrCreate(&category, "id = ?", models.DefaultCategoryID).Error
}
