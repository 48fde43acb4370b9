package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "itemshare-backend/internal/api/http"
	"itemshare-backend/internal/clock"
	"itemshare-backend/internal/config"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/metrics"
	"itemshare-backend/internal/repository/postgres"
	"itemshare-backend/internal/service"
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
	logger.Info("Starting ItemShare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider)

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

	// Initialize Metrics
	metrics.Register()

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailSvc = service.NewSendGridEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Using log email service (no emails will be sent)")
		emailSvc = service.NewLogEmailService()
	}

	// Initialize Services
	clk := clock.System()
	userSvc := service.NewUserService(store.UserRepository, store.ItemRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.UserRepository,
		store.ItemRepository,
		emailSvc,
		clk,
	)
	itemSvc := service.NewItemService(
		store.ItemRepository,
		store.UserRepository,
		store.BookingRepository,
		store.CommentRepository,
		bookingSvc,
		clk,
	)
	requestSvc := service.NewItemRequestService(
		store.ItemRequestRepository,
		store.UserRepository,
		store.ItemRepository,
		clk,
	)

	// Initialize HTTP handlers and router
	userHandler := httpapi.NewUserHandler(userSvc)
	itemHandler := httpapi.NewItemHandler(itemSvc)
	bookingHandler := httpapi.NewBookingHandler(bookingSvc)
	requestHandler := httpapi.NewItemRequestHandler(requestSvc)

	router := httpapi.NewRouter(userHandler, itemHandler, bookingHandler, requestHandler)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
