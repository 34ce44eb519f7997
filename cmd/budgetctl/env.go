package main

import (
	"log/slog"

	"budgethero/internal/app"
	"budgethero/internal/config"
	"budgethero/internal/database"
	"budgethero/internal/services"
)

type env struct {
	cfg    *config.Config
	svc    *app.Services
	logger *slog.Logger
}

// openEnv connects to the database and wires the services without metrics
// or event publishing
func openEnv(cfg *config.Config) (*env, error) {
	logger := app.NewLogger(cfg.Log)

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := app.BuildServices(cfg, db, app.Options{Metrics: services.NoopMetrics{}}, logger)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, svc: svc, logger: logger}, nil
}
