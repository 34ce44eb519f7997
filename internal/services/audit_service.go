package services

import (
	"errors"
	"fmt"
	"time"

	"budgethero/internal/models"
	"budgethero/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
	ErrAuditDateRange  = errors.New("invalid date range: start date must be before end date")
	ErrAuditResource   = errors.New("unknown audit resource")
	ErrAuditResourceID = errors.New("audit resource id must be a UUID")
	ErrAuditRetention  = errors.New("audit retention must be positive")
)

var auditResources = map[string]bool{
	models.AuditResourceTransaction:       true,
	models.AuditResourceRecurringMerchant: true,
	models.AuditResourceImportBatch:       true,
	models.AuditResourcePlaidItem:         true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionCreate:                true,
		models.AuditActionUpdate:                true,
		models.AuditActionDelete:                true,
		models.AuditActionCategoryOverridden:    true,
		models.AuditActionRecurringOverridden:   true,
		models.AuditActionMerchantDeactivated:   true,
		models.AuditActionMerchantCreated:       true,
		models.AuditActionRecurringAutoDetected: true,
		models.AuditActionImportCompleted:       true,
		models.AuditActionBatchReclassified:     true,
		models.AuditActionPlaidItemLinked:       true,
		models.AuditActionPlaidItemSynced:       true,
		models.AuditActionActivityViewed:        true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

// GetUserActivity retrieves activity logs for a user with optional date filtering and pagination
func (s *AuditService) GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return nil, 0, ErrAuditDateRange
	}

	return s.repo.GetUserActivity(userID, startDate, endDate, offset, limit)
}

// GetResourceHistory lists the entries recorded against a single resource.
// A nil userID is the admin view across every user.
func (s *AuditService) GetResourceHistory(userID *uuid.UUID, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	if !auditResources[resource] {
		return nil, 0, ErrAuditResource
	}
	if _, err := uuid.Parse(resourceID); err != nil {
		return nil, 0, ErrAuditResourceID
	}
	if userID != nil && *userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	return s.repo.GetResourceHistory(userID, resource, resourceID, offset, limit)
}

// PruneOlderThan deletes entries older than the retention window
func (s *AuditService) PruneOlderThan(retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrAuditRetention
	}

	deleted, err := s.repo.DeleteBefore(time.Now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to prune audit trail: %w", err)
	}
	return deleted, nil
}

// LogCategoryOverridden records a user's category correction
func (s *AuditService) LogCategoryOverridden(userID, transactionID uuid.UUID, oldCategory, newCategory, merchant string, applyToMerchant bool) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionCategoryOverridden,
		Resource:   models.AuditResourceTransaction,
		ResourceID: transactionID.String(),
		Metadata: models.JSONBMap{
			"old_category":      oldCategory,
			"new_category":      newCategory,
			"merchant":          merchant,
			"apply_to_merchant": applyToMerchant,
		},
	}
	return s.CreateAuditLog(log)
}

// LogRecurringOverridden records a user's recurring flag correction
func (s *AuditService) LogRecurringOverridden(userID, transactionID uuid.UUID, merchant string, isRecurring bool) error {
	log := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionRecurringOverridden,
		Resource: models.AuditResourceTransaction,
		Metadata: models.JSONBMap{
			"merchant":     merchant,
			"is_recurring": isRecurring,
		},
	}
	if transactionID != uuid.Nil {
		log.ResourceID = transactionID.String()
	}
	return s.CreateAuditLog(log)
}

// LogMerchantDeactivated records a merchant being marked non-recurring
func (s *AuditService) LogMerchantDeactivated(userID uuid.UUID, merchant string, deactivated int64) error {
	log := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionMerchantDeactivated,
		Resource: models.AuditResourceRecurringMerchant,
		Metadata: models.JSONBMap{
			"merchant":    merchant,
			"deactivated": deactivated,
		},
	}
	return s.CreateAuditLog(log)
}

// LogMerchantCreated records a new user recurring merchant
func (s *AuditService) LogMerchantCreated(userID, merchantID uuid.UUID, merchant string, autoDetected bool) error {
	action := models.AuditActionMerchantCreated
	if autoDetected {
		action = models.AuditActionRecurringAutoDetected
	}

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   models.AuditResourceRecurringMerchant,
		ResourceID: merchantID.String(),
		Metadata: models.JSONBMap{
			"merchant": merchant,
		},
	}
	return s.CreateAuditLog(log)
}

// LogImportCompleted records a finished file import
func (s *AuditService) LogImportCompleted(userID uuid.UUID, batch *models.ImportBatch) error {
	if batch == nil {
		return ErrInvalidAuditLog
	}

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionImportCompleted,
		Resource:   models.AuditResourceImportBatch,
		ResourceID: batch.ID.String(),
		Metadata: models.JSONBMap{
			"format":         batch.Format,
			"file_name":      batch.FileName,
			"imported_count": batch.ImportedCount,
			"duplicate_rows": batch.DuplicateRows,
			"review_count":   batch.ReviewCount,
		},
	}
	return s.CreateAuditLog(log)
}

// LogBatchReclassified records a batch reclassification
func (s *AuditService) LogBatchReclassified(userID uuid.UUID, result *models.BatchResult) error {
	if result == nil {
		return ErrInvalidAuditLog
	}

	log := &models.AuditLog{
		UserID:   &userID,
		Action:   models.AuditActionBatchReclassified,
		Resource: models.AuditResourceTransaction,
		Metadata: models.JSONBMap{
			"total":        result.Total,
			"succeeded":    result.Succeeded,
			"failed":       result.Failed,
			"needs_review": result.NeedsReview,
		},
	}
	return s.CreateAuditLog(log)
}

// LogPlaidItemLinked records a newly linked aggregator item
func (s *AuditService) LogPlaidItemLinked(userID, itemID uuid.UUID, institution string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPlaidItemLinked,
		Resource:   models.AuditResourcePlaidItem,
		ResourceID: itemID.String(),
		Metadata: models.JSONBMap{
			"institution": institution,
		},
	}
	return s.CreateAuditLog(log)
}

// LogPlaidItemSynced records a completed aggregator sync
func (s *AuditService) LogPlaidItemSynced(userID uuid.UUID, result *models.SyncResult) error {
	if result == nil {
		return ErrInvalidAuditLog
	}

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPlaidItemSynced,
		Resource:   models.AuditResourcePlaidItem,
		ResourceID: result.ItemID.String(),
		Metadata: models.JSONBMap{
			"fetched":      result.Fetched,
			"imported":     result.Imported,
			"duplicates":   result.Duplicates,
			"needs_review": result.NeedsReview,
		},
	}
	return s.CreateAuditLog(log)
}
