package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const externalIDChunkSize = 500

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, 200).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	if err := r.db.Where("id = ?", id).First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByIDForUser retrieves a transaction owned by the given user
func (r *transactionRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByIDsForUser retrieves the user's transactions among ids; unknown ids are ignored
func (r *transactionRepository) GetByIDsForUser(userID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error) {
	if len(ids) == 0 {
		return []models.Transaction{}, nil
	}

	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND id IN ?", userID, ids).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by ids: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions with multiple filters. When a cursor is
// set, results continue strictly after the (date, id) pair.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}
	if filters.MerchantName != "" {
		query = query.Where("LOWER(merchant_name) LIKE ?", "%"+strings.ToLower(filters.MerchantName)+"%")
	}
	if filters.IsRecurring != nil {
		query = query.Where("is_recurring = ?", *filters.IsRecurring)
	}
	if filters.NeedsReview != nil {
		query = query.Where("needs_review = ?", *filters.NeedsReview)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if filters.CursorDate != nil && filters.CursorID != nil {
		query = query.Where("(date < ?) OR (date = ? AND id < ?)", *filters.CursorDate, *filters.CursorDate, *filters.CursorID)
	} else if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Limit(filters.Limit).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// UpdateWithOptimisticLock writes the classification fields of a transaction
// if its stored version still equals expectedVersion, bumping the version.
func (r *transactionRepository) UpdateWithOptimisticLock(transaction *models.Transaction, expectedVersion int) error {
	transaction.Version = expectedVersion + 1

	result := r.db.Model(transaction).
		Where("version = ?", expectedVersion).
		Updates(map[string]interface{}{
			"merchant_name":         transaction.MerchantName,
			"category":              transaction.Category,
			"category_confidence":   transaction.CategoryConfidence,
			"category_source":       transaction.CategorySource,
			"is_recurring":          transaction.IsRecurring,
			"recurring_merchant_id": transaction.RecurringMerchantID,
			"recurring_confidence":  transaction.RecurringConfidence,
			"recurring_source":      transaction.RecurringSource,
			"recurring_frequency":   transaction.RecurringFrequency,
			"needs_review":          transaction.NeedsReview,
			"version":               transaction.Version,
		})

	if result.Error != nil {
		transaction.Version = expectedVersion
		return fmt.Errorf("failed to update transaction with optimistic lock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		transaction.Version = expectedVersion
		return models.ErrOptimisticLockConflict
	}

	return nil
}

// GetNeedingReview retrieves the user's flagged transactions, newest first
func (r *transactionRepository) GetNeedingReview(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND needs_review = ?", userID, true).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions needing review: %w", err)
	}
	return transactions, nil
}

// GetSince retrieves the user's transactions dated on or after since, oldest first
func (r *transactionRepository) GetSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions since %s: %w", since.Format(time.DateOnly), err)
	}
	return transactions, nil
}

// GetByImportBatch retrieves transactions created by one import
func (r *transactionRepository) GetByImportBatch(batchID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("import_batch_id = ?", batchID).
		Order("date ASC, id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by import batch: %w", err)
	}
	return transactions, nil
}

// GetMatchingMerchant retrieves candidates whose merchant or description
// contains the normalized merchant text. Callers apply exact matching rules.
func (r *transactionRepository) GetMatchingMerchant(userID uuid.UUID, normalizedMerchant string) ([]models.Transaction, error) {
	pattern := "%" + strings.ToLower(normalizedMerchant) + "%"

	var transactions []models.Transaction
	if err := r.db.Where("user_id = ?", userID).
		Where("LOWER(merchant_name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by merchant: %w", err)
	}
	return transactions, nil
}

// GetExistingExternalIDs reports which of the external ids the user already has
func (r *transactionRepository) GetExistingExternalIDs(userID uuid.UUID, externalIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool)

	for start := 0; start < len(externalIDs); start += externalIDChunkSize {
		end := min(start+externalIDChunkSize, len(externalIDs))

		var found []string
		if err := r.db.Model(&models.Transaction{}).
			Where("user_id = ? AND external_id IN ?", userID, externalIDs[start:end]).
			Pluck("external_id", &found).Error; err != nil {
			return nil, fmt.Errorf("failed to check external ids: %w", err)
		}
		for _, id := range found {
			existing[id] = true
		}
	}

	return existing, nil
}

// GetCategorySummary aggregates the user's expenses by category, splitting
// out the recurring spend and the entries still awaiting review
func (r *transactionRepository) GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			category,
			COUNT(*) as transaction_count,
			SUM(amount) as total_amount,
			AVG(amount) as average_amount,
			SUM(CASE WHEN is_recurring THEN 1 ELSE 0 END) as recurring_count,
			SUM(CASE WHEN is_recurring THEN amount ELSE 0 END) as recurring_amount,
			SUM(CASE WHEN needs_review THEN 1 ELSE 0 END) as needs_review_count
		FROM transactions
		WHERE user_id = ?
			AND date BETWEEN ? AND ?
			AND type = ?
			AND category IS NOT NULL
		GROUP BY category
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, userID, startDate, endDate, models.TransactionTypeExpense).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}
