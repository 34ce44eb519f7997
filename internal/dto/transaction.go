package dto

import (
	"time"

	"budgethero/internal/models"
)

// CreateTransactionRequest represents the request payload for a manual transaction
type CreateTransactionRequest struct {
	Description  string `json:"description" validate:"required,min=1,max=500"`
	MerchantName string `json:"merchantName" validate:"max=255"`
	Amount       string `json:"amount" validate:"required,decimal_positive"`
	Type         string `json:"type" validate:"required,transaction_type"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateCategoryRequest represents a user's category correction
type UpdateCategoryRequest struct {
	Category        string `json:"category" validate:"required,category"`
	Reason          string `json:"reason" validate:"max=500"`
	ApplyToMerchant bool   `json:"applyToMerchant"`
}

// UpdateRecurringRequest represents a user's recurring flag correction
type UpdateRecurringRequest struct {
	IsRecurring bool   `json:"isRecurring"`
	Frequency   string `json:"frequency" validate:"omitempty,frequency"`
	Reason      string `json:"reason" validate:"max=500"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	HasMore    bool   `json:"hasMore"`
	NextCursor string `json:"nextCursor,omitempty"`
	Limit      int    `json:"limit"`
	Total      int64  `json:"total,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationInfo       `json:"pagination"`
}

// ReviewQueueResponse lists transactions flagged for review
type ReviewQueueResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// CategorySummaryResponse aggregates expenses by category over a period
type CategorySummaryResponse struct {
	StartDate  time.Time                `json:"startDate"`
	EndDate    time.Time                `json:"endDate"`
	Categories []models.CategorySummary `json:"categories"`
}
