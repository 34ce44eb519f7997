package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultReviewQueueLimit = 50
	MaxReviewQueueLimit     = 500
)

var (
	ErrInvalidTransactionAmount = errors.New("amount must be a positive decimal")
	ErrInvalidTransactionDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange         = errors.New("start date must be before end date")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	pipeline        ClassificationPipelineInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a service for manual entry and transaction reads
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	pipeline ClassificationPipelineInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &transactionService{
		transactionRepo: transactionRepo,
		pipeline:        pipeline,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction stores a manually entered transaction after classifying it
func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidTransactionAmount
	}
	if !models.IsValidTransactionType(req.Type) {
		return nil, models.ErrInvalidTransactionType
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidTransactionDate
	}

	enricher, err := s.pipeline.Prepare(userID)
	if err != nil {
		return nil, err
	}

	txn := &models.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		Description:  strings.TrimSpace(req.Description),
		MerchantName: strings.TrimSpace(req.MerchantName),
		Amount:       amount.Round(2),
		Date:         date,
		Type:         req.Type,
		Source:       models.TransactionSourceManual,
		Version:      1,
	}
	enricher.Enrich(txn)

	if err := s.transactionRepo.Create(txn); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("classification.completed", map[string]string{"source": txn.CategorySource})
	if txn.NeedsReview {
		s.metrics.IncrementCounter("classification.needs_review", nil)
	}

	s.logger.InfoContext(ctx, "transaction created",
		"transaction_id", txn.ID,
		"category", txn.CategoryName(),
		"category_source", txn.CategorySource,
		"recurring_source", txn.RecurringSource,
		"needs_review", txn.NeedsReview,
	)

	return txn, nil
}

func (s *transactionService) GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByIDForUser(transactionID, userID)
}

func (s *transactionService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.UserID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, 0, ErrInvalidDateRange
	}
	return s.transactionRepo.GetWithFilters(filters)
}

// GetReviewQueue lists the transactions flagged for the user to confirm
func (s *transactionService) GetReviewQueue(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultReviewQueueLimit
	}
	limit = min(limit, MaxReviewQueueLimit)

	transactions, err := s.transactionRepo.GetNeedingReview(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load review queue: %w", err)
	}

	s.metrics.RecordGauge("review_queue.size", float64(len(transactions)), nil)
	return transactions, nil
}

func (s *transactionService) GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}
	return s.transactionRepo.GetCategorySummary(userID, startDate, endDate)
}
