package services

import (
	"context"
	"io"
	"time"

	"budgethero/internal/classification"
	"budgethero/internal/dto"
	"budgethero/internal/events"
	"budgethero/internal/models"

	"github.com/google/uuid"
)

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetResourceHistory(userID *uuid.UUID, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	PruneOlderThan(retention time.Duration) (int64, error)
	LogCategoryOverridden(userID, transactionID uuid.UUID, oldCategory, newCategory, merchant string, applyToMerchant bool) error
	LogRecurringOverridden(userID, transactionID uuid.UUID, merchant string, isRecurring bool) error
	LogMerchantDeactivated(userID uuid.UUID, merchant string, deactivated int64) error
	LogMerchantCreated(userID, merchantID uuid.UUID, merchant string, autoDetected bool) error
	LogImportCompleted(userID uuid.UUID, batch *models.ImportBatch) error
	LogBatchReclassified(userID uuid.UUID, result *models.BatchResult) error
	LogPlaidItemLinked(userID, itemID uuid.UUID, institution string) error
	LogPlaidItemSynced(userID uuid.UUID, result *models.SyncResult) error
}

// CategoryServiceInterface defines the contract for category classification operations
type CategoryServiceInterface interface {
	// Classify runs the rule stages without any user state
	Classify(description, merchant string) models.ClassificationResult

	// ClassifyForUser applies the user's merchant overrides before the rule stages
	ClassifyForUser(userID uuid.UUID, description, merchant string) (models.ClassificationResult, error)

	// Confidence scores an already assigned category
	Confidence(description, merchant, category string) float64

	// Categories lists the valid category names
	Categories() []string
	IsKnownCategory(category string) bool

	// OverrideCategory pins a transaction's category, optionally for every
	// transaction of the same merchant
	OverrideCategory(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Transaction, error)
}

// RecurringServiceInterface defines the contract for recurring merchant operations
type RecurringServiceInterface interface {
	DetectForTransaction(userID uuid.UUID, transaction *models.Transaction) (models.RecurringMatch, error)
	ListMerchants(userID uuid.UUID, includeInactive bool) ([]models.RecurringMerchant, error)
	CreateMerchant(ctx context.Context, userID uuid.UUID, req *dto.CreateRecurringMerchantRequest) (*models.RecurringMerchant, error)
	MarkNonRecurring(ctx context.Context, userID uuid.UUID, merchantName, reason string) (int64, error)
	SetTransactionRecurring(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateRecurringRequest) (*models.Transaction, error)
	AutoDetect(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.RecurringMerchant, error)
	SeedGlobalMerchants(merchants []models.RecurringMerchant) (created, updated int, err error)
}

// ClassificationPipelineInterface loads a user's classification state once per unit of work
type ClassificationPipelineInterface interface {
	Prepare(userID uuid.UUID) (*classification.Enricher, error)
}

// BatchClassifierInterface reclassifies stored transactions in bounded groups
type BatchClassifierInterface interface {
	ReclassifyByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*models.BatchResult, error)
	ReclassifyNeedingReview(ctx context.Context, userID uuid.UUID) (*models.BatchResult, error)
	ReclassifyImportBatch(ctx context.Context, userID, batchID uuid.UUID) (*models.BatchResult, error)
}

// TransactionServiceInterface defines transaction read and manual entry operations
type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetReviewQueue(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
}

// ImportServiceInterface defines file import operations
type ImportServiceInterface interface {
	ImportCSV(ctx context.Context, userID uuid.UUID, fileName string, r io.Reader) (*dto.ImportResponse, error)
	ImportOFX(ctx context.Context, userID uuid.UUID, fileName string, r io.Reader) (*dto.ImportResponse, error)
	ListImports(userID uuid.UUID, offset, limit int) ([]models.ImportBatch, int64, error)
}

// SyncServiceInterface defines aggregator link and sync operations
type SyncServiceInterface interface {
	CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error)
	ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangeTokenRequest) (*models.PlaidItem, error)
	SyncItem(ctx context.Context, userID, itemID uuid.UUID) (*models.SyncResult, error)
	StartScheduler(ctx context.Context)
}

// PlaidClientInterface is the subset of the aggregator client the sync service uses
type PlaidClientInterface interface {
	CreateLinkToken(ctx context.Context, userID string) (string, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error)
	GetTransactions(ctx context.Context, accessToken string, start, end time.Time) ([]models.ParsedTransaction, error)
}

// TokenVaultInterface seals secrets for storage at rest
type TokenVaultInterface interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// EventPublisherInterface publishes domain events to the message broker
type EventPublisherInterface interface {
	PublishImportCompleted(ctx context.Context, msg *events.ImportCompletedMessage) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type AuditLoggerInterface interface {
	LogClassificationOverride(ctx context.Context, userID, transactionID uuid.UUID, oldCategory, newCategory string)
	LogRecurringOverride(ctx context.Context, userID uuid.UUID, merchant string, isRecurring bool)
	LogMerchantDeactivated(ctx context.Context, userID uuid.UUID, merchant string, count int64)
	LogRecurringDetected(ctx context.Context, userID uuid.UUID, merchant, frequency, tier string, occurrences int)
	LogBatchStarted(ctx context.Context, userID uuid.UUID, total, groupSize int)
	LogBatchCompleted(ctx context.Context, userID uuid.UUID, result *models.BatchResult, durationMs int64)
	LogBatchItemFailed(ctx context.Context, transactionID uuid.UUID, errorMsg string)
	LogImportCompleted(ctx context.Context, batch *models.ImportBatch, durationMs int64)
	LogImportFailed(ctx context.Context, userID uuid.UUID, format, errorMsg string)
	LogSyncStarted(ctx context.Context, itemID uuid.UUID)
	LogSyncCompleted(ctx context.Context, result *models.SyncResult, durationMs int64)
	LogSyncFailed(ctx context.Context, itemID uuid.UUID, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
