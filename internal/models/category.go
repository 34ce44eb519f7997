package models

// Spending and income categories
const (
	CategoryGroceries       = "Groceries"
	CategoryFoodDining      = "Food & Dining"
	CategoryTransportation  = "Transportation"
	CategoryEntertainment   = "Entertainment"
	CategoryShopping        = "Shopping"
	CategoryBillsUtilities  = "Bills & Utilities"
	CategoryHealthFitness   = "Health & Fitness"
	CategoryEducation       = "Education"
	CategoryTravel          = "Travel"
	CategoryHousing         = "Housing"
	CategoryInsurance       = "Insurance"
	CategoryPersonalCare    = "Personal Care"
	CategoryFinancePayments = "Finance & Payments"
	CategoryIncome          = "Income"
	CategoryOther           = "Other"
)

// Classification provenance tags, strongest first
const (
	ClassificationSourceUserOverride         = "user_override"
	ClassificationSourceExactMerchantMatch   = "exact_merchant_match"
	ClassificationSourcePartialMerchantMatch = "partial_merchant_match"
	ClassificationSourceKeywordMatch         = "keyword_match"
	ClassificationSourceFallback             = "fallback"
	ClassificationSourceImported             = "imported"
)

// Confidence scores by provenance
const (
	ConfidenceUserOverride         = 1.0
	ConfidenceExactMerchantMatch   = 1.0
	ConfidencePartialMerchantMatch = 0.9
	ConfidenceKeywordMatch         = 0.7
	ConfidenceFallback             = 0.3
	ConfidenceNone                 = 0.0
)

// AllCategories returns all valid category names
func AllCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryFoodDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthFitness,
		CategoryEducation,
		CategoryTravel,
		CategoryHousing,
		CategoryInsurance,
		CategoryPersonalCare,
		CategoryFinancePayments,
		CategoryIncome,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// IsValidClassificationSource checks if a provenance tag is known
func IsValidClassificationSource(source string) bool {
	switch source {
	case ClassificationSourceUserOverride, ClassificationSourceExactMerchantMatch,
		ClassificationSourcePartialMerchantMatch, ClassificationSourceKeywordMatch,
		ClassificationSourceFallback, ClassificationSourceImported:
		return true
	default:
		return false
	}
}

// ClassificationResult contains the result of transaction categorization
type ClassificationResult struct {
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	Source         string  `json:"source"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}
