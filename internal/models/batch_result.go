package models

import "github.com/google/uuid"

// BatchItemError describes one failed item in a batch
type BatchItemError struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Error         string    `json:"error"`
}

// BatchResult reports partial success of a batch operation
type BatchResult struct {
	Total       int              `json:"total"`
	Succeeded   int              `json:"succeeded"`
	Failed      int              `json:"failed"`
	NeedsReview int              `json:"needs_review"`
	Errors      []BatchItemError `json:"errors,omitempty"`
}
