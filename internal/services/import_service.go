package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"budgethero/internal/dto"
	"budgethero/internal/events"
	"budgethero/internal/importer"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultImportListLimit = 20
	MaxImportListLimit     = 100
)

// importService implements ImportServiceInterface
type importService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	importBatchRepo repositories.ImportBatchRepositoryInterface
	pipeline        ClassificationPipelineInterface
	publisher       EventPublisherInterface
	maxRows         int
	auditService    AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewImportService creates a file import service. A nil publisher drops
// import events; maxRows of zero means unlimited.
func NewImportService(
	transactionRepo repositories.TransactionRepositoryInterface,
	importBatchRepo repositories.ImportBatchRepositoryInterface,
	pipeline ClassificationPipelineInterface,
	publisher EventPublisherInterface,
	maxRows int,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ImportServiceInterface {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &importService{
		transactionRepo: transactionRepo,
		importBatchRepo: importBatchRepo,
		pipeline:        pipeline,
		publisher:       publisher,
		maxRows:         maxRows,
		auditService:    auditService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *importService) ImportCSV(ctx context.Context, userID uuid.UUID, fileName string, r io.Reader) (*dto.ImportResponse, error) {
	return s.importFile(ctx, userID, models.ImportFormatCSV, fileName, func() (*importer.ParseResult, error) {
		return importer.ParseCSV(r, importer.WithMaxRows(s.maxRows))
	})
}

func (s *importService) ImportOFX(ctx context.Context, userID uuid.UUID, fileName string, r io.Reader) (*dto.ImportResponse, error) {
	return s.importFile(ctx, userID, models.ImportFormatOFX, fileName, func() (*importer.ParseResult, error) {
		return importer.ParseOFX(r, importer.WithMaxRows(s.maxRows))
	})
}

func (s *importService) ListImports(userID uuid.UUID, offset, limit int) ([]models.ImportBatch, int64, error) {
	if limit <= 0 {
		limit = DefaultImportListLimit
	}
	limit = min(limit, MaxImportListLimit)
	offset = max(offset, 0)
	return s.importBatchRepo.ListByUser(userID, offset, limit)
}

// importFile parses, drops rows already stored for the user, classifies the
// rest and stores them with one batch record.
func (s *importService) importFile(ctx context.Context, userID uuid.UUID, format, fileName string, parse func() (*importer.ParseResult, error)) (*dto.ImportResponse, error) {
	start := time.Now()

	parsed, err := parse()
	if err != nil {
		s.fail(ctx, userID, format, err)
		return nil, err
	}

	externalIDs := make([]string, 0, len(parsed.Transactions))
	for _, p := range parsed.Transactions {
		externalIDs = append(externalIDs, p.ExternalID)
	}
	existing, err := s.transactionRepo.GetExistingExternalIDs(userID, externalIDs)
	if err != nil {
		s.fail(ctx, userID, format, err)
		return nil, fmt.Errorf("failed to check duplicates: %w", err)
	}

	enricher, err := s.pipeline.Prepare(userID)
	if err != nil {
		s.fail(ctx, userID, format, err)
		return nil, err
	}

	batch := &models.ImportBatch{
		ID:           uuid.New(),
		UserID:       userID,
		Format:       format,
		FileName:     fileName,
		TotalRows:    parsed.TotalRows,
		SkippedCount: len(parsed.Skipped),
		CreatedAt:    start,
	}

	transactions := make([]models.Transaction, 0, len(parsed.Transactions))
	for _, p := range parsed.Transactions {
		if existing[p.ExternalID] {
			batch.DuplicateRows++
			continue
		}

		txn := models.Transaction{
			ID:            uuid.New(),
			UserID:        userID,
			Description:   p.Description,
			MerchantName:  p.MerchantName,
			Amount:        p.Amount,
			Date:          p.Date,
			Type:          p.Type,
			Source:        models.TransactionSourceImported,
			ExternalID:    p.ExternalID,
			ImportBatchID: &batch.ID,
			Version:       1,
		}
		enricher.Enrich(&txn)
		if p.Category != "" {
			enricher.ApplyAssignedCategory(&txn, p.Category)
		}
		if txn.NeedsReview {
			batch.ReviewCount++
		}
		transactions = append(transactions, txn)
	}

	if len(transactions) > 0 {
		if err := s.transactionRepo.CreateBatch(transactions); err != nil {
			batch.Fail(err.Error())
			if createErr := s.importBatchRepo.Create(batch); createErr != nil {
				s.logger.ErrorContext(ctx, "failed to record failed import", "error", createErr, "batch_id", batch.ID)
			}
			s.fail(ctx, userID, format, err)
			return nil, err
		}
	}

	batch.ImportedCount = len(transactions)
	batch.Complete()
	if err := s.importBatchRepo.Create(batch); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	s.recordMetrics(batch, duration)
	s.auditLogger.LogImportCompleted(ctx, batch, duration.Milliseconds())
	if err := s.auditService.LogImportCompleted(userID, batch); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionImportCompleted)
	}

	if batch.ImportedCount > 0 {
		msg := events.NewImportCompletedMessage(batch.ID, userID, format, batch.ImportedCount, batch.ReviewCount)
		if err := s.publisher.PublishImportCompleted(ctx, msg); err != nil {
			s.logger.WarnContext(ctx, "failed to publish import event", "error", err, "batch_id", batch.ID)
		}
	}

	return &dto.ImportResponse{
		Batch:   batch,
		Skipped: toRowErrors(parsed.Skipped),
	}, nil
}

func (s *importService) fail(ctx context.Context, userID uuid.UUID, format string, err error) {
	s.metrics.IncrementCounter("import.completed", map[string]string{"format": format, "status": models.ImportStatusFailed})
	s.auditLogger.LogImportFailed(ctx, userID, format, err.Error())
}

func (s *importService) recordMetrics(batch *models.ImportBatch, duration time.Duration) {
	s.metrics.IncrementCounter("import.completed", map[string]string{"format": batch.Format, "status": models.ImportStatusCompleted})
	s.metrics.RecordGauge("import.rows", float64(batch.ImportedCount), map[string]string{"outcome": "imported"})
	s.metrics.RecordGauge("import.rows", float64(batch.SkippedCount), map[string]string{"outcome": "skipped"})
	s.metrics.RecordGauge("import.rows", float64(batch.DuplicateRows), map[string]string{"outcome": "duplicate"})
	s.metrics.RecordProcessingTime("import.duration", duration)
}

func toRowErrors(skipped []importer.RowError) []dto.ImportRowError {
	if len(skipped) == 0 {
		return nil
	}
	out := make([]dto.ImportRowError, 0, len(skipped))
	for _, e := range skipped {
		out = append(out, dto.ImportRowError{Line: e.Line, Reason: e.Reason})
	}
	return out
}
