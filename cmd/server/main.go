package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "sharelah-backend/internal/api/http"
	"sharelah-backend/internal/config"
	"sharelah-backend/internal/logger"
	"sharelah-backend/internal/repository/postgres"
	"sharelah-backend/internal/security"
	"sharelah-backend/internal/service"
	"sharelah-backend/internal/utils"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareLah Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Rental thresholds", "late_days", cfg.Rental.LateThresholdDays, "purchase_days", cfg.Rental.PurchaseThresholdDays)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	thresholds := utils.Thresholds{
		LateDays:     cfg.Rental.LateThresholdDays,
		PurchaseDays: cfg.Rental.PurchaseThresholdDays,
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	stallSvc := service.NewStallService(store.StallRepository, store.TransactionRepository)
	txSvc := service.NewTransactionService(store.TransactionRepository, thresholds)
	promoSvc := service.NewPromoCodeService(store.PromoCodeRepository, store.UserRepository)
	analyticsSvc := service.NewAnalyticsService(
		store.UserRepository,
		store.StallRepository,
		store.TransactionRepository,
		thresholds,
	)

	// Initialize HTTP handlers
	handlers := &httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(authSvc),
		User:        httpapi.NewUserHandler(userSvc),
		Stall:       httpapi.NewStallHandler(stallSvc),
		Transaction: httpapi.NewTransactionHandler(txSvc),
		PromoCode:   httpapi.NewPromoCodeHandler(promoSvc),
		Analytics:   httpapi.NewAnalyticsHandler(analyticsSvc),
	}

	router := httpapi.NewRouter(handlers, httpapi.NewAuthMiddleware(tokenManager))

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
