package dto

import "budgethero/internal/models"

// ClassifyRequest represents the request payload for classifying free text.
// An empty description is valid; the merchant alone can still match.
type ClassifyRequest struct {
	Description     string `json:"description" validate:"max=500"`
	Merchant        string `json:"merchant" validate:"max=255"`
	DetectRecurring bool   `json:"detectRecurring"`
}

// ClassifyResponse carries the category result and, when requested, the recurrence result
type ClassifyResponse struct {
	Classification models.ClassificationResult `json:"classification"`
	Recurring      *models.RecurringMatch      `json:"recurring,omitempty"`
	NeedsReview    *bool                       `json:"needsReview,omitempty"`
}

// ConfidenceRequest represents the request payload for scoring an assigned category
type ConfidenceRequest struct {
	Description string `json:"description" validate:"max=500"`
	Merchant    string `json:"merchant" validate:"max=255"`
	Category    string `json:"category"`
}

// ConfidenceResponse represents a confidence score
type ConfidenceResponse struct {
	Confidence float64 `json:"confidence"`
}

// CategoriesResponse lists the valid categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ReclassifyRequest selects transactions for batch reclassification.
// An empty id list reclassifies the transactions flagged for review.
type ReclassifyRequest struct {
	TransactionIDs []string `json:"transactionIds" validate:"max=1000,dive,uuid"`
}
