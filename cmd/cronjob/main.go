package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"itemshare-backend/internal/clock"
	"itemshare-backend/internal/config"
	"itemshare-backend/internal/jobs"
	"itemshare-backend/internal/logger"
	"itemshare-backend/internal/repository/postgres"
	"itemshare-backend/internal/scheduler"
	"itemshare-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'upcoming-booking-reminders', 'all-daily')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ItemShare Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Email Service
	var emailService service.EmailService
	if cfg.Email.Provider == "sendgrid" {
		emailService = service.NewSendGridEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Using log email service (no emails will be sent)")
		emailService = service.NewLogEmailService()
	}

	// Initialize Services
	clk := clock.System()
	userService := service.NewUserService(store.UserRepository, store.ItemRepository)
	bookingService := service.NewBookingService(
		store.BookingRepository,
		store.UserRepository,
		store.ItemRepository,
		emailService,
		clk,
	)
	itemService := service.NewItemService(
		store.ItemRepository,
		store.UserRepository,
		store.BookingRepository,
		store.CommentRepository,
		bookingService,
		clk,
	)

	jobServices := &jobs.Services{
		Email:   emailService,
		Booking: bookingService,
		Item:    itemService,
		User:    userService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "upcoming-booking-reminders":
		jobRunner.SendUpcomingBookingReminders()
	case "pending-approval-reminders":
		jobRunner.SendPendingApprovalReminders()
	case "all-daily":
		jobRunner.RunAllDailyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - upcoming-booking-reminders\n")
		fmt.Printf("  - pending-approval-reminders\n")
		fmt.Printf("  - all-daily\n")
		os.Exit(1)
	}
}
