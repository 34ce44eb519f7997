package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	TransactionSourceManual     = "manual"
	TransactionSourceImported   = "imported"
	TransactionSourceAggregator = "aggregator"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionSource = errors.New("invalid transaction source")
	ErrInvalidAmount            = errors.New("transaction amount must not be negative")
	ErrOptimisticLockConflict   = errors.New("optimistic lock conflict: version mismatch")
)

// Transaction is a user's income or expense line. Amount is stored as an
// absolute value; Type carries the sign.
type Transaction struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	MerchantName        string          `gorm:"type:varchar(255);index" json:"merchant_name,omitempty"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date                time.Time       `gorm:"not null;index" json:"date"`
	Type                string          `gorm:"type:varchar(20);not null" json:"type"`
	Category            *string         `gorm:"type:varchar(50);index" json:"category"`
	CategoryConfidence  float64         `gorm:"default:0" json:"category_confidence"`
	CategorySource      string          `gorm:"type:varchar(30)" json:"category_source,omitempty"`
	Source              string          `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	IsRecurring         bool            `gorm:"default:false;index" json:"is_recurring"`
	RecurringMerchantID *uuid.UUID      `gorm:"type:uuid;index" json:"recurring_merchant_id,omitempty"`
	RecurringConfidence float64         `gorm:"default:0" json:"recurring_confidence"`
	RecurringSource     string          `gorm:"type:varchar(30);default:'none'" json:"recurring_source"`
	RecurringFrequency  string          `gorm:"type:varchar(20)" json:"recurring_frequency,omitempty"`
	NeedsReview         bool            `gorm:"default:false;index" json:"needs_review"`
	ExternalID          string          `gorm:"type:varchar(255);index" json:"external_id,omitempty"`
	ImportBatchID       *uuid.UUID      `gorm:"type:uuid;index" json:"import_batch_id,omitempty"`
	PlaidItemID         *uuid.UUID      `gorm:"type:uuid;index" json:"plaid_item_id,omitempty"`
	Metadata            JSONBMap        `gorm:"type:text" json:"metadata,omitempty"`
	Version             int             `gorm:"default:1" json:"version"`
	CreatedAt           time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Source == "" {
		t.Source = TransactionSourceManual
	}

	if t.RecurringSource == "" {
		t.RecurringSource = RecurringSourceNone
	}

	if t.Version == 0 {
		t.Version = 1
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionSource(t.Source) {
		return ErrInvalidTransactionSource
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if t.Description == "" {
		return errors.New("transaction description is required")
	}

	if t.Category != nil && len(*t.Category) > 50 {
		return errors.New("category name too long")
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// SignedAmount returns the amount as negative for expenses
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// MatchText returns the text used by merchant matching: the merchant name
// when present, the description otherwise.
func (t *Transaction) MatchText() string {
	if t.MerchantName != "" {
		return t.MerchantName
	}
	return t.Description
}

// CategoryName returns the category or an empty string when unclassified
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return *t.Category
}

// HasCategoryOverride reports whether the user has pinned the category
func (t *Transaction) HasCategoryOverride() bool {
	return t.CategorySource == ClassificationSourceUserOverride
}

// HasRecurringOverride reports whether the user has pinned the recurring flag
func (t *Transaction) HasRecurringOverride() bool {
	return t.RecurringSource == RecurringSourceUserOverride
}

// ApplyClassification copies a classifier result onto the transaction
func (t *Transaction) ApplyClassification(result ClassificationResult) {
	category := result.Category
	t.Category = &category
	t.CategoryConfidence = result.Confidence
	t.CategorySource = result.Source
}

// ApplyRecurringMatch copies a recurrence result onto the transaction
func (t *Transaction) ApplyRecurringMatch(match RecurringMatch) {
	t.IsRecurring = match.IsRecurring
	t.RecurringConfidence = match.Confidence
	t.RecurringSource = match.Source
	t.RecurringFrequency = match.Frequency
	t.RecurringMerchantID = nil
	if match.MatchedMerchantID != "" {
		if id, err := uuid.Parse(match.MatchedMerchantID); err == nil {
			t.RecurringMerchantID = &id
		}
	}
}

// IncrementVersion increments the version for optimistic locking
func (t *Transaction) IncrementVersion() {
	t.Version++
}

// HasVersionConflict checks for version conflicts
func (t *Transaction) HasVersionConflict(currentVersion int) bool {
	return t.Version != currentVersion
}

// CheckAndUpdateVersion checks and updates version for optimistic locking
func (t *Transaction) CheckAndUpdateVersion(expectedVersion int) error {
	if t.Version != expectedVersion {
		return ErrOptimisticLockConflict
	}
	t.IncrementVersion()
	return nil
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionSource checks if the transaction source is valid
func IsValidTransactionSource(source string) bool {
	switch source {
	case TransactionSourceManual, TransactionSourceImported, TransactionSourceAggregator:
		return true
	default:
		return false
	}
}

// TransactionTypeForAmount returns expense for negative amounts and income otherwise
func TransactionTypeForAmount(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}
