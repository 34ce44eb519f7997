// Package app wires repositories, services and handlers from configuration.
// Both binaries build on it.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"budgethero/docs"
	"budgethero/internal/classification"
	"budgethero/internal/config"
	"budgethero/internal/events"
	"budgethero/internal/handlers"
	"budgethero/internal/plaid"
	"budgethero/internal/repositories"
	"budgethero/internal/server"
	"budgethero/internal/services"

	"gorm.io/gorm"
)

// Version is stamped at build time with -ldflags "-X budgethero/internal/app.Version=..."
var Version = "dev"

// Services holds the wired service layer
type Services struct {
	Audit          services.AuditServiceInterface
	Category       services.CategoryServiceInterface
	Recurring      services.RecurringServiceInterface
	Pipeline       services.ClassificationPipelineInterface
	Batch          services.BatchClassifierInterface
	Transactions   services.TransactionServiceInterface
	Imports        services.ImportServiceInterface
	Sync           services.SyncServiceInterface
	Tokens         services.TokenServiceInterface
	CircuitBreaker services.CircuitBreakerInterface
}

// Options carry process-level collaborators that must not be created twice
type Options struct {
	Metrics   services.MetricsRecorderInterface
	Publisher services.EventPublisherInterface
}

// NewLogger returns the JSON slog logger used by every binary
func NewLogger(cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// LoadClassifier builds the classifier from the configured rule file or the built-in rules
func LoadClassifier(cfg config.ClassifierConfig) (*classification.Classifier, error) {
	if cfg.RulesFile == "" {
		return classification.Default(), nil
	}
	rules, err := classification.LoadRuleSet(cfg.RulesFile)
	if err != nil {
		return nil, err
	}
	return classification.NewClassifier(rules), nil
}

// NewPublisher connects to the broker when AMQP is enabled and returns a no-op otherwise
func NewPublisher(cfg config.AMQPConfig, logger *slog.Logger) (services.EventPublisherInterface, func() error, error) {
	if !cfg.Enabled {
		return events.NoopPublisher{}, func() error { return nil }, nil
	}
	client, err := events.NewClient(cfg.URL, cfg.Exchange, cfg.Queue, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to AMQP: %w", err)
	}
	return client, client.Close, nil
}

// BuildServices wires every service against db
func BuildServices(cfg *config.Config, db *gorm.DB, opts Options, logger *slog.Logger) (*Services, error) {
	if opts.Metrics == nil {
		opts.Metrics = services.NoopMetrics{}
	}

	classifier, err := LoadClassifier(cfg.Classifier)
	if err != nil {
		return nil, err
	}

	transactionRepo := repositories.NewTransactionRepository(db)
	merchantRepo := repositories.NewRecurringMerchantRepository(db)
	categoryOverrideRepo := repositories.NewCategoryOverrideRepository(db)
	recurringOverrideRepo := repositories.NewRecurringOverrideRepository(db)
	importBatchRepo := repositories.NewImportBatchRepository(db)
	plaidItemRepo := repositories.NewPlaidItemRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	auditService := services.NewAuditService(auditRepo)
	auditLogger := services.NewAuditLogger(logger)

	pipeline := services.NewClassificationPipeline(classifier, categoryOverrideRepo, recurringOverrideRepo, merchantRepo)

	seriesOptions := classification.DefaultSeriesOptions()
	if cfg.Recurrence.MinOccurrences > 0 {
		seriesOptions.MinOccurrences = cfg.Recurrence.MinOccurrences
	}
	if cfg.Recurrence.SimilarityThreshold > 0 {
		seriesOptions.SimilarityThreshold = cfg.Recurrence.SimilarityThreshold
	}

	breaker := services.NewCircuitBreaker("plaid", services.CircuitBreakerConfig{
		MaxFailures:     cfg.CircuitBreaker.MaxFailures,
		ResetTimeout:    cfg.CircuitBreaker.ResetTimeout,
		HalfOpenMaxSucc: cfg.CircuitBreaker.HalfOpenMaxSucc,
	}, auditLogger, opts.Metrics)

	var plaidClient services.PlaidClientInterface
	var vault services.TokenVaultInterface
	if cfg.Plaid.Enabled {
		client, err := plaid.NewClient(plaid.Config{
			ClientID:    cfg.Plaid.ClientID,
			Secret:      cfg.Plaid.Secret,
			Environment: cfg.Plaid.Environment,
			ClientName:  cfg.Plaid.ClientName,
			RedirectURI: cfg.Plaid.RedirectURI,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Plaid client: %w", err)
		}
		plaidClient = client

		vault, err = services.NewTokenVault(cfg.TokenVault.Key)
		if err != nil {
			return nil, err
		}
	}

	return &Services{
		Audit:     auditService,
		Category:  services.NewCategoryService(classifier, transactionRepo, categoryOverrideRepo, auditService, auditLogger, opts.Metrics, logger),
		Recurring: services.NewRecurringService(merchantRepo, recurringOverrideRepo, transactionRepo, seriesOptions, auditService, auditLogger, opts.Metrics, logger),
		Pipeline:  pipeline,
		Batch: services.NewBatchClassifier(transactionRepo, importBatchRepo, pipeline, services.BatchOptions{
			GroupSize:  cfg.Batch.GroupSize,
			GroupDelay: cfg.Batch.GroupDelay,
			MaxItems:   cfg.Batch.MaxItems,
		}, auditService, auditLogger, opts.Metrics, logger),
		Transactions: services.NewTransactionService(transactionRepo, pipeline, opts.Metrics, logger),
		Imports: services.NewImportService(transactionRepo, importBatchRepo, pipeline, opts.Publisher,
			cfg.Import.MaxRows, auditService, auditLogger, opts.Metrics, logger),
		Sync: services.NewSyncService(plaidClient, vault, plaidItemRepo, transactionRepo, pipeline, breaker,
			services.SyncOptionsFrom(cfg.Plaid, cfg.Sync), auditService, auditLogger, opts.Metrics, logger),
		Tokens:         services.NewTokenService(&cfg.JWT),
		CircuitBreaker: breaker,
	}, nil
}

// BuildHandlers creates the HTTP handlers over svc
func BuildHandlers(cfg *config.Config, db *gorm.DB, svc *Services, logger *slog.Logger) (server.Handlers, error) {
	docsHandler, err := handlers.NewDocsHandler(docs.ScalarHTML, docs.OpenAPIYAML)
	if err != nil {
		return server.Handlers{}, err
	}

	return server.Handlers{
		Classification: handlers.NewClassificationHandler(svc.Category, svc.Recurring, logger),
		Transactions:   handlers.NewTransactionHandler(svc.Transactions, svc.Category, svc.Recurring, svc.Batch, logger),
		Recurring:      handlers.NewRecurringMerchantHandler(svc.Recurring, logger),
		Imports:        handlers.NewImportHandler(svc.Imports, cfg.Import.MaxUploadBytes, logger),
		Plaid:          handlers.NewPlaidHandler(svc.Sync, logger),
		Admin:          handlers.NewAdminHandler(svc.Audit, logger),
		Health:         handlers.NewHealthCheckHandler(db, Version),
		Docs:           docsHandler,
		Validator:      handlers.NewCategoryValidator(svc.Category.IsKnownCategory),
	}, nil
}
