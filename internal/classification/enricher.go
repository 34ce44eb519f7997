package classification

import (
	"budgethero/internal/models"

	"github.com/google/uuid"
)

// Enricher classifies transactions for one user. Overrides and recurring
// candidates are loaded once and reused for every transaction.
type Enricher struct {
	classifier         *Classifier
	detector           *Detector
	categoryOverrides  CategoryOverrides
	recurringOverrides []RecurringOverride
	candidates         []Candidate
}

// NewEnricher builds an enricher. A nil classifier uses the built-in rules.
func NewEnricher(classifier *Classifier, categoryOverrides CategoryOverrides, recurringOverrides []RecurringOverride, candidates []Candidate) *Enricher {
	if classifier == nil {
		classifier = Default()
	}
	return &Enricher{
		classifier:         classifier,
		detector:           NewDetector(),
		categoryOverrides:  categoryOverrides,
		recurringOverrides: recurringOverrides,
		candidates:         sortedCandidates(candidates),
	}
}

// Enrich sets the category, recurrence and review flag on txn. A category or
// recurring flag the user pinned on the transaction itself is kept.
func (e *Enricher) Enrich(txn *models.Transaction) {
	if !txn.HasCategoryOverride() {
		txn.ApplyClassification(e.classifier.ClassifyWithOverrides(txn.Description, txn.MerchantName, e.categoryOverrides))
	}

	if !txn.HasRecurringOverride() {
		in := RecurrenceInput{MerchantOrDescription: txn.MatchText()}
		if txn.ID != uuid.Nil {
			in.TransactionID = txn.ID.String()
		}
		txn.ApplyRecurringMatch(e.detector.Detect(in, e.candidates, e.recurringOverrides))
	}

	txn.NeedsReview = NeedsUserReview(txn.CategoryConfidence, txn.RecurringConfidence, txn.RecurringSource)
}

// Classify runs only the category stage with the user's overrides
func (e *Enricher) Classify(description, merchant string) models.ClassificationResult {
	return e.classifier.ClassifyWithOverrides(description, merchant, e.categoryOverrides)
}

// ApplyAssignedCategory keeps a category supplied by the data source unless
// the user pinned one, scoring it against the rules.
func (e *Enricher) ApplyAssignedCategory(txn *models.Transaction, category string) {
	if txn.HasCategoryOverride() || !e.classifier.IsKnownCategory(category) {
		return
	}
	txn.ApplyClassification(models.ClassificationResult{
		Category:   category,
		Confidence: e.classifier.Confidence(txn.Description, txn.MerchantName, category),
		Source:     models.ClassificationSourceImported,
	})
	txn.NeedsReview = NeedsUserReview(txn.CategoryConfidence, txn.RecurringConfidence, txn.RecurringSource)
}

// Detect runs only the recurrence stage
func (e *Enricher) Detect(transactionID, merchantOrDescription string) models.RecurringMatch {
	return e.detector.Detect(RecurrenceInput{
		TransactionID:         transactionID,
		MerchantOrDescription: merchantOrDescription,
	}, e.candidates, e.recurringOverrides)
}

// CategoryOverridesFromModels keys stored overrides by normalized merchant
func CategoryOverridesFromModels(overrides []models.CategoryOverride) CategoryOverrides {
	out := make(CategoryOverrides, len(overrides))
	for _, o := range overrides {
		out[normalize(o.NormalizedMerchant)] = o.Category
	}
	return out
}
