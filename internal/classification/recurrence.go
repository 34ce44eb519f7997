package classification

import (
	"sort"

	"budgethero/internal/models"
)

// RecurrenceInput identifies the transaction being checked
type RecurrenceInput struct {
	TransactionID         string
	MerchantOrDescription string
}

// Candidate is a recurring merchant record the detector can match against
type Candidate struct {
	ID                   string
	MerchantName         string
	Patterns             []string
	LinkedTransactionIDs []string
	Frequency            string
	LogoURL              string
	TransactionType      string
	ConfidenceTier       string
	Active               bool
}

// RecurringOverride is a user's explicit recurring or non-recurring
// decision for a merchant.
type RecurringOverride struct {
	MerchantName string
	IsRecurring  bool
	Frequency    string
}

// Detector decides whether a transaction belongs to a recurring series
type Detector struct{}

// NewDetector creates a recurrence detector
func NewDetector() *Detector {
	return &Detector{}
}

// Detect matches the transaction against user overrides first, then
// against candidates sorted by ID. The first match wins.
func (d *Detector) Detect(in RecurrenceInput, candidates []Candidate, overrides []RecurringOverride) models.RecurringMatch {
	text := normalize(in.MerchantOrDescription)

	for _, o := range overrides {
		if containsEither(text, normalize(o.MerchantName)) {
			return models.RecurringMatch{
				IsRecurring:  o.IsRecurring,
				Confidence:   models.ConfidenceUserOverride,
				Source:       models.RecurringSourceUserOverride,
				Frequency:    o.Frequency,
				MerchantName: o.MerchantName,
			}
		}
	}

	for _, c := range sortedCandidates(candidates) {
		if !c.Active {
			continue
		}

		source, ok := d.matchCandidate(in.TransactionID, text, c)
		if !ok {
			continue
		}
		return buildMatch(c, source)
	}

	return models.NoRecurringMatch()
}

func (d *Detector) matchCandidate(transactionID, text string, c Candidate) (string, bool) {
	if transactionID != "" {
		for _, id := range c.LinkedTransactionIDs {
			if id == transactionID {
				return models.RecurringSourceLinkedTransaction, true
			}
		}
	}

	if containsEither(text, normalize(c.MerchantName)) {
		return models.RecurringSourceMerchantMatch, true
	}
	for _, p := range c.Patterns {
		if containsEither(text, normalize(p)) {
			return models.RecurringSourceMerchantMatch, true
		}
	}
	return "", false
}

func buildMatch(c Candidate, source string) models.RecurringMatch {
	match := models.RecurringMatch{
		IsRecurring:       true,
		Source:            source,
		LogoURL:           c.LogoURL,
		MerchantName:      c.MerchantName,
		MatchedMerchantID: c.ID,
	}
	if c.Frequency != models.FrequencyUnset {
		match.Frequency = c.Frequency
	}

	switch {
	case c.TransactionType == models.RecurringTypeExcluded:
		match.IsRecurring = false
		match.Source = models.RecurringSourceExcludedMerchant
		match.Confidence = models.TierConfidence(c.ConfidenceTier)
		match.Frequency = ""
	case source == models.RecurringSourceLinkedTransaction:
		match.Confidence = 1.0
	default:
		match.Confidence = models.TierConfidence(c.ConfidenceTier)
	}
	return match
}

func sortedCandidates(candidates []Candidate) []Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// CandidatesFromMerchants converts stored recurring merchants into
// detector candidates.
func CandidatesFromMerchants(merchants []models.RecurringMerchant) []Candidate {
	candidates := make([]Candidate, 0, len(merchants))
	for _, m := range merchants {
		candidates = append(candidates, Candidate{
			ID:                   m.ID.String(),
			MerchantName:         m.MerchantName,
			Patterns:             []string(m.Patterns),
			LinkedTransactionIDs: []string(m.LinkedTransactionIDs),
			Frequency:            m.Frequency,
			LogoURL:              m.LogoURL,
			TransactionType:      m.TransactionType,
			ConfidenceTier:       m.ConfidenceTier,
			Active:               m.IsActive,
		})
	}
	return candidates
}

// OverridesFromModels converts stored recurring overrides for the detector
func OverridesFromModels(overrides []models.RecurringOverride) []RecurringOverride {
	out := make([]RecurringOverride, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, RecurringOverride{
			MerchantName: o.NormalizedMerchant,
			IsRecurring:  o.IsRecurring,
			Frequency:    o.Frequency,
		})
	}
	return out
}

// NeedsUserReview flags low-confidence results for the user to confirm
func NeedsUserReview(categoryConfidence, recurringConfidence float64, recurringSource string) bool {
	return (recurringConfidence > 0 && recurringConfidence < 0.5) ||
		categoryConfidence < 0.7 ||
		recurringSource == models.RecurringSourceNone
}
