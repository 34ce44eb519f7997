package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	UserID       uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
	Type         string
	Category     string
	Source       string
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	MerchantName string
	IsRecurring  *bool
	NeedsReview  *bool
	CursorDate   *time.Time
	CursorID     *uuid.UUID
	Offset       int
	Limit        int
}
