package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"budgethero/internal/app"
	"budgethero/internal/config"
	"budgethero/internal/database"
	"budgethero/internal/server"
	"budgethero/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	publisher, closePublisher, err := app.NewPublisher(cfg.AMQP, logger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}()

	svc, err := app.BuildServices(cfg, db, app.Options{
		Metrics:   services.NewPrometheusMetrics(),
		Publisher: publisher,
	}, logger)
	if err != nil {
		logger.Error("Failed to build services", "error", err)
		os.Exit(1)
	}

	h, err := app.BuildHandlers(cfg, db, svc, logger)
	if err != nil {
		logger.Error("Failed to build handlers", "error", err)
		os.Exit(1)
	}

	if cfg.Sync.Enabled {
		go svc.Sync.StartScheduler(ctx)
		logger.Info("Aggregator sync scheduler started", "interval", cfg.Sync.Interval.String(), "workers", cfg.Sync.Workers)
	}

	e := server.New(cfg, h, svc.Tokens, logger)
	logger.Info("Starting BudgetHero API", "version", app.Version, "environment", cfg.Server.Environment)

	if err := server.Run(ctx, e, cfg.Server, logger); err != nil {
		logger.Error("HTTP server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
