package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgethero/internal/classification"
	"budgethero/internal/dto"
	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidMerchantName    = errors.New("merchant name is required")
	ErrRecurringMerchantExist = errors.New("recurring merchant already exists")
)

// recurringService implements RecurringServiceInterface
type recurringService struct {
	merchantRepo    repositories.RecurringMerchantRepositoryInterface
	overrideRepo    repositories.RecurringOverrideRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	detector        *classification.Detector
	seriesOptions   classification.SeriesOptions
	auditService    AuditServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewRecurringService creates a recurring merchant service
func NewRecurringService(
	merchantRepo repositories.RecurringMerchantRepositoryInterface,
	overrideRepo repositories.RecurringOverrideRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	seriesOptions classification.SeriesOptions,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) RecurringServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &recurringService{
		merchantRepo:    merchantRepo,
		overrideRepo:    overrideRepo,
		transactionRepo: transactionRepo,
		detector:        classification.NewDetector(),
		seriesOptions:   seriesOptions,
		auditService:    auditService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// DetectForTransaction matches one transaction against the user's overrides and merchants
func (s *recurringService) DetectForTransaction(userID uuid.UUID, transaction *models.Transaction) (models.RecurringMatch, error) {
	if transaction == nil {
		return models.NoRecurringMatch(), nil
	}

	merchants, err := s.merchantRepo.ListActiveForUser(userID)
	if err != nil {
		return models.RecurringMatch{}, fmt.Errorf("failed to load recurring merchants: %w", err)
	}
	overrides, err := s.overrideRepo.ListByUser(userID)
	if err != nil {
		return models.RecurringMatch{}, fmt.Errorf("failed to load recurring overrides: %w", err)
	}

	in := classification.RecurrenceInput{MerchantOrDescription: transaction.MatchText()}
	if transaction.ID != uuid.Nil {
		in.TransactionID = transaction.ID.String()
	}
	return s.detector.Detect(in, classification.CandidatesFromMerchants(merchants), classification.OverridesFromModels(overrides)), nil
}

func (s *recurringService) ListMerchants(userID uuid.UUID, includeInactive bool) ([]models.RecurringMerchant, error) {
	return s.merchantRepo.ListForUser(userID, includeInactive)
}

// CreateMerchant adds a user-defined recurring merchant. A deactivated record
// with the same name is reactivated. Any earlier non-recurring decision for
// the merchant is dropped so the new record takes effect.
func (s *recurringService) CreateMerchant(ctx context.Context, userID uuid.UUID, req *dto.CreateRecurringMerchantRequest) (*models.RecurringMerchant, error) {
	if req == nil {
		return nil, ErrInvalidMerchantName
	}
	normalized := models.NormalizeMerchantName(req.MerchantName)
	if normalized == "" {
		return nil, ErrInvalidMerchantName
	}

	existing, err := s.merchantRepo.FindByNormalizedName(&userID, normalized)
	if err != nil && !errors.Is(err, repositories.ErrRecurringMerchantNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, ErrRecurringMerchantExist
	}

	merchant := existing
	if merchant == nil {
		merchant = &models.RecurringMerchant{UserID: &userID}
	}
	merchant.MerchantName = req.MerchantName
	merchant.NormalizedName = normalized
	merchant.Category = req.Category
	merchant.TransactionType = valueOr(req.TransactionType, models.RecurringTypeSubscription)
	merchant.Frequency = valueOr(req.Frequency, models.FrequencyUnset)
	merchant.ConfidenceTier = models.ConfidenceTierHigh
	merchant.Patterns = models.StringList(req.Patterns)
	merchant.LogoURL = req.LogoURL
	merchant.IsActive = true
	merchant.DeactivatedAt = nil

	if existing == nil {
		err = s.merchantRepo.Create(merchant)
	} else {
		err = s.merchantRepo.Update(merchant)
	}
	if err != nil {
		return nil, err
	}

	if err := s.overrideRepo.Delete(userID, normalized); err != nil {
		s.logger.WarnContext(ctx, "failed to clear recurring override", "error", err, "merchant", normalized)
	}

	if err := s.auditService.LogMerchantCreated(userID, merchant.ID, merchant.MerchantName, false); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionMerchantCreated)
	}

	return merchant, nil
}

// MarkNonRecurring deactivates the user's records for a merchant and stores
// a non-recurring override so global seeds stop matching too.
func (s *recurringService) MarkNonRecurring(ctx context.Context, userID uuid.UUID, merchantName, reason string) (int64, error) {
	normalized := models.NormalizeMerchantName(merchantName)
	if normalized == "" {
		return 0, ErrInvalidMerchantName
	}

	deactivated, err := s.merchantRepo.DeactivateMatching(userID, normalized)
	if err != nil {
		return 0, err
	}

	if err := s.overrideRepo.Upsert(&models.RecurringOverride{
		UserID:             userID,
		NormalizedMerchant: normalized,
		IsRecurring:        false,
		Reason:             reason,
	}); err != nil {
		return 0, err
	}

	s.metrics.IncrementCounter("classification.override", map[string]string{"kind": "recurring"})
	s.auditLogger.LogMerchantDeactivated(ctx, userID, normalized, deactivated)
	if err := s.auditService.LogMerchantDeactivated(userID, normalized, deactivated); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionMerchantDeactivated)
	}

	return deactivated, nil
}

// SetTransactionRecurring records the user's decision for one transaction and
// its merchant. Marking recurring creates or links a user record; marking
// non-recurring deactivates the user's records for the merchant.
func (s *recurringService) SetTransactionRecurring(ctx context.Context, userID, transactionID uuid.UUID, req *dto.UpdateRecurringRequest) (*models.Transaction, error) {
	if req == nil {
		return nil, ErrInvalidMerchantName
	}

	txn, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		return nil, err
	}

	normalized := models.NormalizeMerchantName(txn.MatchText())
	if normalized == "" {
		return nil, ErrInvalidMerchantName
	}

	match := models.RecurringMatch{
		IsRecurring:  req.IsRecurring,
		Confidence:   models.ConfidenceUserOverride,
		Source:       models.RecurringSourceUserOverride,
		Frequency:    req.Frequency,
		MerchantName: txn.MatchText(),
	}

	if req.IsRecurring {
		merchant, err := s.linkRecurringMerchant(userID, txn, normalized, req.Frequency)
		if err != nil {
			return nil, err
		}
		match.MatchedMerchantID = merchant.ID.String()
		if match.Frequency == "" {
			match.Frequency = merchant.Frequency
		}
	} else if _, err := s.merchantRepo.DeactivateMatching(userID, normalized); err != nil {
		return nil, err
	}

	if err := s.overrideRepo.Upsert(&models.RecurringOverride{
		UserID:             userID,
		NormalizedMerchant: normalized,
		IsRecurring:        req.IsRecurring,
		Frequency:          req.Frequency,
		Reason:             req.Reason,
	}); err != nil {
		return nil, err
	}

	expectedVersion := txn.Version
	txn.ApplyRecurringMatch(match)
	txn.NeedsReview = classification.NeedsUserReview(txn.CategoryConfidence, txn.RecurringConfidence, txn.RecurringSource)
	if err := s.transactionRepo.UpdateWithOptimisticLock(txn, expectedVersion); err != nil {
		if errors.Is(err, models.ErrOptimisticLockConflict) {
			s.auditLogger.LogOptimisticLockConflict(ctx, "transaction", txn.ID, expectedVersion)
			return nil, ErrOverrideConflicts
		}
		return nil, err
	}

	s.metrics.IncrementCounter("classification.override", map[string]string{"kind": "recurring"})
	s.auditLogger.LogRecurringOverride(ctx, userID, normalized, req.IsRecurring)
	if err := s.auditService.LogRecurringOverridden(userID, txn.ID, normalized, req.IsRecurring); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionRecurringOverridden)
	}

	return txn, nil
}

func (s *recurringService) linkRecurringMerchant(userID uuid.UUID, txn *models.Transaction, normalized, frequency string) (*models.RecurringMerchant, error) {
	merchant, err := s.merchantRepo.FindByNormalizedName(&userID, normalized)
	if errors.Is(err, repositories.ErrRecurringMerchantNotFound) {
		merchant = &models.RecurringMerchant{
			UserID:               &userID,
			MerchantName:         txn.MatchText(),
			NormalizedName:       normalized,
			Category:             txn.CategoryName(),
			TransactionType:      models.RecurringTypeSubscription,
			Frequency:            valueOr(frequency, models.FrequencyUnset),
			ConfidenceTier:       models.ConfidenceTierHigh,
			IsActive:             true,
			LinkedTransactionIDs: models.StringList{txn.ID.String()},
		}
		if err := s.merchantRepo.Create(merchant); err != nil {
			return nil, err
		}
		return merchant, nil
	}
	if err != nil {
		return nil, err
	}

	merchant.LinkTransaction(txn.ID.String())
	if !merchant.IsActive {
		merchant.IsActive = true
		merchant.DeactivatedAt = nil
	}
	if frequency != "" {
		merchant.Frequency = frequency
	}
	if err := s.merchantRepo.Update(merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// AutoDetect scans the user's expenses since the given time for merchants
// that charge on a schedule and records the new ones.
func (s *recurringService) AutoDetect(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.RecurringMerchant, error) {
	transactions, err := s.transactionRepo.GetSince(userID, since)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overrideRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring overrides: %w", err)
	}
	declined := make(map[string]bool)
	for _, o := range overrides {
		if !o.IsRecurring {
			declined[o.NormalizedMerchant] = true
		}
	}

	var created []models.RecurringMerchant
	for _, series := range classification.DetectSeries(transactions, s.seriesOptions) {
		if declined[series.NormalizedName] {
			continue
		}

		known, err := s.isKnownMerchant(userID, series.NormalizedName)
		if err != nil {
			return created, err
		}
		if known {
			continue
		}

		average := series.AverageAmount
		merchant := models.RecurringMerchant{
			UserID:               &userID,
			MerchantName:         series.MerchantName,
			NormalizedName:       series.NormalizedName,
			Category:             series.Category,
			TransactionType:      models.RecurringTypeSubscription,
			Frequency:            series.Frequency,
			ConfidenceTier:       series.ConfidenceTier,
			IsActive:             true,
			AutoDetected:         true,
			LinkedTransactionIDs: models.StringList(series.TransactionIDs),
			AverageAmount:        &average,
		}
		if err := s.merchantRepo.Create(&merchant); err != nil {
			return created, err
		}
		created = append(created, merchant)

		s.metrics.IncrementCounter("recurring.detected", nil)
		s.auditLogger.LogRecurringDetected(ctx, userID, merchant.NormalizedName, merchant.Frequency, merchant.ConfidenceTier, series.Occurrences)
		if err := s.auditService.LogMerchantCreated(userID, merchant.ID, merchant.MerchantName, true); err != nil {
			s.logger.Error("failed to create audit log", "error", err, "action", models.AuditActionRecurringAutoDetected)
		}
	}

	return created, nil
}

// isKnownMerchant reports whether the user or the global seeds already have the merchant
func (s *recurringService) isKnownMerchant(userID uuid.UUID, normalized string) (bool, error) {
	for _, owner := range []*uuid.UUID{&userID, nil} {
		_, err := s.merchantRepo.FindByNormalizedName(owner, normalized)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, repositories.ErrRecurringMerchantNotFound) {
			return false, err
		}
	}
	return false, nil
}

// SeedGlobalMerchants creates or refreshes the shared merchant records
func (s *recurringService) SeedGlobalMerchants(merchants []models.RecurringMerchant) (int, int, error) {
	created, updated := 0, 0
	for i := range merchants {
		isNew, err := s.merchantRepo.UpsertGlobal(&merchants[i])
		if err != nil {
			return created, updated, fmt.Errorf("failed to seed %s: %w", merchants[i].MerchantName, err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	return created, updated, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
