package dto

import "budgethero/internal/models"

// CreateRecurringMerchantRequest represents the request payload for a user-defined recurring merchant
type CreateRecurringMerchantRequest struct {
	MerchantName    string   `json:"merchantName" validate:"required,min=1,max=255"`
	Category        string   `json:"category" validate:"omitempty,category"`
	TransactionType string   `json:"transactionType" validate:"omitempty,recurring_type"`
	Frequency       string   `json:"frequency" validate:"omitempty,frequency"`
	Patterns        []string `json:"patterns" validate:"max=20,dive,min=3,max=255"`
	LogoURL         string   `json:"logoUrl" validate:"omitempty,url,max=500"`
}

// DeactivateMerchantRequest marks a merchant as not recurring for the user
type DeactivateMerchantRequest struct {
	MerchantName string `json:"merchantName" validate:"required,min=1,max=255"`
	Reason       string `json:"reason" validate:"max=500"`
}

// DeactivateMerchantResponse reports how many records were deactivated
type DeactivateMerchantResponse struct {
	Deactivated int64 `json:"deactivated"`
}

// DetectRecurringRequest bounds the history scanned by auto-detection
type DetectRecurringRequest struct {
	LookbackDays int `json:"lookbackDays" validate:"omitempty,min=30,max=730"`
}

// RecurringMerchantListResponse lists recurring merchants
type RecurringMerchantListResponse struct {
	Merchants []models.RecurringMerchant `json:"merchants"`
	Count     int                        `json:"count"`
}
