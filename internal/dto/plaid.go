package dto

import "budgethero/internal/models"

// LinkTokenResponse carries a short-lived aggregator link token
type LinkTokenResponse struct {
	LinkToken string `json:"linkToken"`
}

// ExchangeTokenRequest exchanges the public token returned by the link flow
type ExchangeTokenRequest struct {
	PublicToken     string `json:"publicToken" validate:"required"`
	InstitutionName string `json:"institutionName" validate:"max=255"`
}

// PlaidItemResponse wraps a linked item
type PlaidItemResponse struct {
	Item *models.PlaidItem `json:"item"`
}

// SyncResponse wraps a sync summary
type SyncResponse struct {
	Result *models.SyncResult `json:"result"`
}
