package dto

import "budgethero/internal/models"

// ImportResponse reports the outcome of a file import
type ImportResponse struct {
	Batch   *models.ImportBatch `json:"batch"`
	Skipped []ImportRowError    `json:"skipped,omitempty"`
}

// ImportRowError describes a row the parser skipped
type ImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportListResponse represents a paginated list of imports
type ImportListResponse struct {
	Imports []models.ImportBatch `json:"imports"`
	Total   int64                `json:"total"`
	Offset  int                  `json:"offset"`
	Limit   int                  `json:"limit"`
}
