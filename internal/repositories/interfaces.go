package repositories

import (
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetByIDsForUser(userID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateWithOptimisticLock(transaction *models.Transaction, expectedVersion int) error
	GetNeedingReview(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error)
	GetByImportBatch(batchID uuid.UUID) ([]models.Transaction, error)
	GetMatchingMerchant(userID uuid.UUID, normalizedMerchant string) ([]models.Transaction, error)
	GetExistingExternalIDs(userID uuid.UUID, externalIDs []string) (map[string]bool, error)
	GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
}

// RecurringMerchantRepositoryInterface defines the contract for recurring merchant operations
type RecurringMerchantRepositoryInterface interface {
	Create(merchant *models.RecurringMerchant) error
	Update(merchant *models.RecurringMerchant) error
	GetByID(id uuid.UUID) (*models.RecurringMerchant, error)
	ListActiveForUser(userID uuid.UUID) ([]models.RecurringMerchant, error)
	ListForUser(userID uuid.UUID, includeInactive bool) ([]models.RecurringMerchant, error)
	FindByNormalizedName(userID *uuid.UUID, normalizedName string) (*models.RecurringMerchant, error)
	DeactivateMatching(userID uuid.UUID, normalizedName string) (int64, error)
	LinkTransaction(merchantID uuid.UUID, transactionID uuid.UUID) error
	UpsertGlobal(merchant *models.RecurringMerchant) (bool, error)
}

// CategoryOverrideRepositoryInterface defines the contract for per-user category overrides
type CategoryOverrideRepositoryInterface interface {
	Upsert(override *models.CategoryOverride) error
	ListByUser(userID uuid.UUID) ([]models.CategoryOverride, error)
	Delete(userID uuid.UUID, normalizedMerchant string) error
}

// RecurringOverrideRepositoryInterface defines the contract for per-user recurrence overrides
type RecurringOverrideRepositoryInterface interface {
	Upsert(override *models.RecurringOverride) error
	ListByUser(userID uuid.UUID) ([]models.RecurringOverride, error)
	Delete(userID uuid.UUID, normalizedMerchant string) error
}

// ImportBatchRepositoryInterface defines the contract for import batch bookkeeping
type ImportBatchRepositoryInterface interface {
	Create(batch *models.ImportBatch) error
	Update(batch *models.ImportBatch) error
	GetByID(id uuid.UUID) (*models.ImportBatch, error)
	ListByUser(userID uuid.UUID, offset, limit int) ([]models.ImportBatch, int64, error)
}

// PlaidItemRepositoryInterface defines the contract for linked aggregator items
type PlaidItemRepositoryInterface interface {
	Create(item *models.PlaidItem) error
	Update(item *models.PlaidItem) error
	GetByID(id uuid.UUID) (*models.PlaidItem, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.PlaidItem, error)
	ListByUser(userID uuid.UUID) ([]models.PlaidItem, error)
	ListDueForSync(before time.Time, limit int) ([]models.PlaidItem, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, startDate, endDate *time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	GetResourceHistory(userID *uuid.UUID, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteBefore(cutoff time.Time) (int64, error)
}
