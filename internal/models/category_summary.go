package models

import "github.com/shopspring/decimal"

// CategorySummary totals a user's expenses in one category. The recurring
// columns cover the transactions flagged as recurring, so the fixed share of
// a category's spend is RecurringAmount over TotalAmount.
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
	RecurringCount   int64           `json:"recurring_count"`
	RecurringAmount  decimal.Decimal `json:"recurring_amount"`
	NeedsReviewCount int64           `json:"needs_review_count"`
}

// RecurringShare returns the fraction of TotalAmount spent on recurring
// transactions, rounded to four places. An empty category has no share.
func (c CategorySummary) RecurringShare() decimal.Decimal {
	if !c.TotalAmount.IsPositive() {
		return decimal.Zero
	}
	return c.RecurringAmount.DivRound(c.TotalAmount, 4)
}
