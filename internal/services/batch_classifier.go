package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"budgethero/internal/classification"
	"budgethero/internal/config"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBatchTooLarge = errors.New("too many transactions in batch")
)

type BatchOptions struct {
	GroupSize  int
	GroupDelay time.Duration
	MaxItems   int
}

func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		GroupSize:  10,
		GroupDelay: 100 * time.Millisecond,
		MaxItems:   1000,
	}
}

// BatchOptionsFrom converts the environment settings, falling back to defaults for unset values
func BatchOptionsFrom(cfg config.BatchConfig) BatchOptions {
	out := DefaultBatchOptions()
	if cfg.GroupSize > 0 {
		out.GroupSize = cfg.GroupSize
	}
	if cfg.GroupDelay > 0 {
		out.GroupDelay = cfg.GroupDelay
	}
	if cfg.MaxItems > 0 {
		out.MaxItems = cfg.MaxItems
	}
	return out
}

// batchClassifier implements BatchClassifierInterface
type batchClassifier struct {
	transactionRepo repositories.TransactionRepositoryInterface
	importBatchRepo repositories.ImportBatchRepositoryInterface
	pipeline        ClassificationPipelineInterface
	options         BatchOptions
	auditService    AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewBatchClassifier creates a batch classifier. Items run concurrently in
// groups of options.GroupSize with options.GroupDelay between groups.
func NewBatchClassifier(
	transactionRepo repositories.TransactionRepositoryInterface,
	importBatchRepo repositories.ImportBatchRepositoryInterface,
	pipeline ClassificationPipelineInterface,
	options BatchOptions,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BatchClassifierInterface {
	if options.GroupSize <= 0 {
		options.GroupSize = DefaultBatchOptions().GroupSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &batchClassifier{
		transactionRepo: transactionRepo,
		importBatchRepo: importBatchRepo,
		pipeline:        pipeline,
		options:         options,
		auditService:    auditService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// ReclassifyByIDs reclassifies the given transactions. IDs that do not
// belong to the user are reported as failed items.
func (b *batchClassifier) ReclassifyByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (*models.BatchResult, error) {
	if len(ids) == 0 {
		return &models.BatchResult{}, nil
	}
	if b.options.MaxItems > 0 && len(ids) > b.options.MaxItems {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrBatchTooLarge, len(ids), b.options.MaxItems)
	}

	transactions, err := b.transactionRepo.GetByIDsForUser(userID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	found := make(map[uuid.UUID]bool, len(transactions))
	for _, txn := range transactions {
		found[txn.ID] = true
	}
	var missing []uuid.UUID
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !found[id] && !seen[id] {
			missing = append(missing, id)
		}
		seen[id] = true
	}

	return b.run(ctx, userID, transactions, missing)
}

// ReclassifyNeedingReview reclassifies the user's review queue
func (b *batchClassifier) ReclassifyNeedingReview(ctx context.Context, userID uuid.UUID) (*models.BatchResult, error) {
	transactions, err := b.transactionRepo.GetNeedingReview(userID, b.options.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to load review queue: %w", err)
	}
	return b.run(ctx, userID, transactions, nil)
}

// ReclassifyImportBatch reclassifies every transaction of one import
func (b *batchClassifier) ReclassifyImportBatch(ctx context.Context, userID, batchID uuid.UUID) (*models.BatchResult, error) {
	batch, err := b.importBatchRepo.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if batch.UserID != userID {
		return nil, repositories.ErrImportBatchNotFound
	}

	transactions, err := b.transactionRepo.GetByImportBatch(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load import batch transactions: %w", err)
	}
	return b.run(ctx, userID, transactions, nil)
}

func (b *batchClassifier) run(ctx context.Context, userID uuid.UUID, transactions []models.Transaction, missing []uuid.UUID) (*models.BatchResult, error) {
	start := time.Now()
	result := &models.BatchResult{Total: len(transactions) + len(missing)}

	enricher, err := b.pipeline.Prepare(userID)
	if err != nil {
		return nil, err
	}

	b.auditLogger.LogBatchStarted(ctx, userID, result.Total, b.options.GroupSize)

	outcomes := make([]error, len(transactions))
	done := 0
	for done < len(transactions) {
		if done > 0 && !b.pause(ctx) {
			break
		}

		to := min(done+b.options.GroupSize, len(transactions))
		b.processGroup(ctx, enricher, transactions, outcomes, done, to)
		done = to
	}
	for i := done; i < len(transactions); i++ {
		outcomes[i] = ctx.Err()
	}

	for i, outcome := range outcomes {
		b.record(ctx, result, transactions[i].ID, transactions[i].NeedsReview, outcome)
	}
	for _, id := range missing {
		b.record(ctx, result, id, false, repositories.ErrTransactionNotFound)
	}

	duration := time.Since(start)
	b.metrics.RecordProcessingTime("batch.duration", duration)
	b.auditLogger.LogBatchCompleted(ctx, userID, result, duration.Milliseconds())
	if err := b.auditService.LogBatchReclassified(userID, result); err != nil {
		b.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionBatchReclassified)
	}

	return result, nil
}

// processGroup enriches transactions[from:to] concurrently. Items never
// return an error to the group so one failure cannot cancel the others.
func (b *batchClassifier) processGroup(ctx context.Context, enricher *classification.Enricher, transactions []models.Transaction, outcomes []error, from, to int) {
	var g errgroup.Group
	var mu sync.Mutex

	for i := from; i < to; i++ {
		g.Go(func() error {
			err := b.processItem(ctx, enricher, &transactions[i])
			mu.Lock()
			outcomes[i] = err
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
}

func (b *batchClassifier) processItem(ctx context.Context, enricher *classification.Enricher, txn *models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	expectedVersion := txn.Version
	enricher.Enrich(txn)
	if err := b.transactionRepo.UpdateWithOptimisticLock(txn, expectedVersion); err != nil {
		if errors.Is(err, models.ErrOptimisticLockConflict) {
			b.auditLogger.LogOptimisticLockConflict(ctx, "transaction", txn.ID, expectedVersion)
		}
		return err
	}
	return nil
}

// pause waits out the group delay; it reports false once ctx is done
func (b *batchClassifier) pause(ctx context.Context) bool {
	if b.options.GroupDelay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(b.options.GroupDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (b *batchClassifier) record(ctx context.Context, result *models.BatchResult, id uuid.UUID, needsReview bool, err error) {
	if err != nil {
		result.Failed++
		result.Errors = append(result.Errors, models.BatchItemError{TransactionID: id, Error: err.Error()})
		b.metrics.IncrementCounter("batch.item", map[string]string{"status": "failed"})
		b.auditLogger.LogBatchItemFailed(ctx, id, err.Error())
		return
	}

	result.Succeeded++
	if needsReview {
		result.NeedsReview++
	}
	b.metrics.IncrementCounter("batch.item", map[string]string{"status": "succeeded"})
}
