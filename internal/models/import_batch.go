package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ImportFormatCSV = "csv"
	ImportFormatOFX = "ofx"

	ImportStatusCompleted = "completed"
	ImportStatusFailed    = "failed"
)

// ImportBatch records one file import
type ImportBatch struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Format        string     `gorm:"type:varchar(10);not null" json:"format"`
	FileName      string     `gorm:"type:varchar(255)" json:"file_name"`
	Status        string     `gorm:"type:varchar(20);not null" json:"status"`
	TotalRows     int        `json:"total_rows"`
	ImportedCount int        `json:"imported_count"`
	SkippedCount  int        `json:"skipped_count"`
	DuplicateRows int        `json:"duplicate_rows"`
	ReviewCount   int        `json:"review_count"`
	ErrorMessage  string     `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time  `gorm:"not null;index" json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// BeforeCreate hook for ImportBatch
func (b *ImportBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for ImportBatch
func (b *ImportBatch) TableName() string {
	return "import_batches"
}

// Complete marks the batch as completed
func (b *ImportBatch) Complete() {
	now := time.Now()
	b.Status = ImportStatusCompleted
	b.CompletedAt = &now
}

// Fail marks the batch as failed
func (b *ImportBatch) Fail(message string) {
	now := time.Now()
	b.Status = ImportStatusFailed
	b.ErrorMessage = message
	b.CompletedAt = &now
}

// ParsedTransaction is a normalized row from a bank export or aggregator
// feed, ready for classification.
type ParsedTransaction struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	Category     string          `json:"category,omitempty"`
	ExternalID   string          `json:"external_id,omitempty"`
	Line         int             `json:"line,omitempty"`
}

// FormattedAmount returns the absolute amount with two decimals
func (p ParsedTransaction) FormattedAmount() string {
	return p.Amount.StringFixed(2)
}
