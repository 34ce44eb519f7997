package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"budgethero/internal/classification"
	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrMerchantUnknown   = errors.New("transaction has no merchant or description to apply an override to")
	ErrOverrideConflicts = errors.New("transaction was modified concurrently")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	classifier      *classification.Classifier
	transactionRepo repositories.TransactionRepositoryInterface
	overrideRepo    repositories.CategoryOverrideRepositoryInterface
	auditService    AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewCategoryService creates a category service. A nil classifier uses the built-in rules.
func NewCategoryService(
	classifier *classification.Classifier,
	transactionRepo repositories.TransactionRepositoryInterface,
	overrideRepo repositories.CategoryOverrideRepositoryInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	if classifier == nil {
		classifier = classification.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryService{
		classifier:      classifier,
		transactionRepo: transactionRepo,
		overrideRepo:    overrideRepo,
		auditService:    auditService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *categoryService) Classify(description, merchant string) models.ClassificationResult {
	result := s.classifier.Classify(description, merchant)
	s.metrics.IncrementCounter("classification.completed", map[string]string{"source": result.Source})
	return result
}

func (s *categoryService) ClassifyForUser(userID uuid.UUID, description, merchant string) (models.ClassificationResult, error) {
	overrides, err := s.overrideRepo.ListByUser(userID)
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("failed to load category overrides: %w", err)
	}

	result := s.classifier.ClassifyWithOverrides(description, merchant, classification.CategoryOverridesFromModels(overrides))
	s.metrics.IncrementCounter("classification.completed", map[string]string{"source": result.Source})
	return result, nil
}

func (s *categoryService) Confidence(description, merchant, category string) float64 {
	return s.classifier.Confidence(description, merchant, category)
}

func (s *categoryService) Categories() []string {
	return s.classifier.Categories()
}

func (s *categoryService) IsKnownCategory(category string) bool {
	return s.classifier.IsKnownCategory(category)
}

// OverrideCategory pins the category on one transaction. With
// ApplyToMerchant the choice is stored as a merchant override and copied
// onto the user's other transactions from that merchant.
func (s *categoryService) OverrideCategory(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Transaction, error) {
	if req == nil || !s.classifier.IsKnownCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	txn, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, err
	}

	oldCategory := txn.CategoryName()
	if err := s.pinCategory(ctx, txn, req.Category); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("classification.override", map[string]string{"kind": "category"})
	s.auditLogger.LogClassificationOverride(ctx, userID, txn.ID, oldCategory, req.Category)

	merchant := models.NormalizeMerchantName(txn.MatchText())
	if req.ApplyToMerchant {
		if merchant == "" {
			return nil, ErrMerchantUnknown
		}
		if err := s.applyToMerchant(ctx, userID, txn.ID, merchant, req); err != nil {
			return nil, err
		}
	}

	if err := s.auditService.LogCategoryOverridden(userID, txn.ID, oldCategory, req.Category, merchant, req.ApplyToMerchant); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionCategoryOverridden)
	}

	return txn, nil
}

func (s *categoryService) pinCategory(ctx context.Context, txn *models.Transaction, category string) error {
	expectedVersion := txn.Version
	txn.ApplyClassification(classification.ApplyOverride(category))
	txn.NeedsReview = classification.NeedsUserReview(txn.CategoryConfidence, txn.RecurringConfidence, txn.RecurringSource)

	if err := s.transactionRepo.UpdateWithOptimisticLock(txn, expectedVersion); err != nil {
		if errors.Is(err, models.ErrOptimisticLockConflict) {
			s.auditLogger.LogOptimisticLockConflict(ctx, "transaction", txn.ID, expectedVersion)
			return ErrOverrideConflicts
		}
		return fmt.Errorf("failed to save category override: %w", err)
	}
	return nil
}

func (s *categoryService) applyToMerchant(ctx context.Context, userID, skipID uuid.UUID, merchant string, req *dto.UpdateCategoryRequest) error {
	if err := s.overrideRepo.Upsert(&models.CategoryOverride{
		UserID:             userID,
		NormalizedMerchant: merchant,
		Category:           req.Category,
		Reason:             req.Reason,
	}); err != nil {
		return fmt.Errorf("failed to store merchant override: %w", err)
	}

	matches, err := s.transactionRepo.GetMatchingMerchant(userID, merchant)
	if err != nil {
		return fmt.Errorf("failed to load merchant transactions: %w", err)
	}

	overrides := classification.CategoryOverrides{merchant: req.Category}
	updated := 0
	for i := range matches {
		match := &matches[i]
		if match.ID == skipID || match.CategoryName() == req.Category {
			continue
		}
		result := s.classifier.ClassifyWithOverrides(match.Description, match.MerchantName, overrides)
		if result.Source != models.ClassificationSourceUserOverride {
			continue
		}
		if err := s.pinCategory(ctx, match, req.Category); err != nil {
			s.logger.WarnContext(ctx, "failed to apply merchant override",
				slog.String("transaction_id", match.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		updated++
	}

	s.logger.InfoContext(ctx, "merchant category override applied",
		slog.String("event_type", "merchant_override_applied"),
		slog.String("merchant", merchant),
		slog.String("category", req.Category),
		slog.Int("updated", updated),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
	return nil
}
