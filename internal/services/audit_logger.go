package services

import (
	"context"
	"log/slog"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const (
	// CorrelationIDKey carries a correlation id through background work
	CorrelationIDKey contextKey = "correlation_id"
	// RequestIDKey carries the HTTP request id into service calls
	RequestIDKey contextKey = "request_id"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogClassificationOverride(ctx context.Context, userID, transactionID uuid.UUID, oldCategory, newCategory string) {
	al.logger.InfoContext(ctx, "classification override",
		slog.String("event_type", "classification_override"),
		slog.String("user_id", userID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.String("old_category", oldCategory),
		slog.String("new_category", newCategory),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRecurringOverride(ctx context.Context, userID uuid.UUID, merchant string, isRecurring bool) {
	al.logger.InfoContext(ctx, "recurring override",
		slog.String("event_type", "recurring_override"),
		slog.String("user_id", userID.String()),
		slog.String("merchant", merchant),
		slog.Bool("is_recurring", isRecurring),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMerchantDeactivated(ctx context.Context, userID uuid.UUID, merchant string, count int64) {
	al.logger.InfoContext(ctx, "recurring merchant deactivated",
		slog.String("event_type", "merchant_deactivated"),
		slog.String("user_id", userID.String()),
		slog.String("merchant", merchant),
		slog.Int64("deactivated", count),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogRecurringDetected(ctx context.Context, userID uuid.UUID, merchant, frequency, tier string, occurrences int) {
	al.logger.InfoContext(ctx, "recurring merchant detected",
		slog.String("event_type", "recurring_detected"),
		slog.String("user_id", userID.String()),
		slog.String("merchant", merchant),
		slog.String("frequency", frequency),
		slog.String("confidence_tier", tier),
		slog.Int("occurrences", occurrences),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBatchStarted(ctx context.Context, userID uuid.UUID, total, groupSize int) {
	al.logger.InfoContext(ctx, "batch classification started",
		slog.String("event_type", "batch_started"),
		slog.String("user_id", userID.String()),
		slog.Int("total", total),
		slog.Int("group_size", groupSize),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBatchCompleted(ctx context.Context, userID uuid.UUID, result *models.BatchResult, durationMs int64) {
	attrs := []slog.Attr{
		slog.String("event_type", "batch_completed"),
		slog.String("user_id", userID.String()),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if result != nil {
		attrs = append(attrs,
			slog.Int("total", result.Total),
			slog.Int("succeeded", result.Succeeded),
			slog.Int("failed", result.Failed),
			slog.Int("needs_review", result.NeedsReview),
		)
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "batch classification completed", attrs...)
}

func (al *AuditLogger) LogBatchItemFailed(ctx context.Context, transactionID uuid.UUID, errorMsg string) {
	al.logger.WarnContext(ctx, "batch item failed",
		slog.String("event_type", "batch_item_failed"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogImportCompleted(ctx context.Context, batch *models.ImportBatch, durationMs int64) {
	al.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.String("batch_id", batch.ID.String()),
		slog.String("user_id", batch.UserID.String()),
		slog.String("format", batch.Format),
		slog.Int("total_rows", batch.TotalRows),
		slog.Int("imported", batch.ImportedCount),
		slog.Int("skipped", batch.SkippedCount),
		slog.Int("duplicates", batch.DuplicateRows),
		slog.Int("needs_review", batch.ReviewCount),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogImportFailed(ctx context.Context, userID uuid.UUID, format, errorMsg string) {
	al.logger.WarnContext(ctx, "import failed",
		slog.String("event_type", "import_failed"),
		slog.String("user_id", userID.String()),
		slog.String("format", format),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncStarted(ctx context.Context, itemID uuid.UUID) {
	al.logger.InfoContext(ctx, "aggregator sync started",
		slog.String("event_type", "sync_started"),
		slog.String("item_id", itemID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncCompleted(ctx context.Context, result *models.SyncResult, durationMs int64) {
	al.logger.InfoContext(ctx, "aggregator sync completed",
		slog.String("event_type", "sync_completed"),
		slog.String("item_id", result.ItemID.String()),
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("duplicates", result.Duplicates),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSyncFailed(ctx context.Context, itemID uuid.UUID, errorMsg string) {
	al.logger.WarnContext(ctx, "aggregator sync failed",
		slog.String("event_type", "sync_failed"),
		slog.String("item_id", itemID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int) {
	al.logger.WarnContext(ctx, "optimistic lock conflict",
		slog.String("event_type", "optimistic_lock_conflict"),
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.Int("expected_version", expectedVersion),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}

// WithCorrelationID returns a context carrying the correlation id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}
