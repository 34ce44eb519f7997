package classification

import (
	"strings"
	"sync"

	"budgethero/internal/models"
)

// Input is the text a transaction offers for classification
type Input struct {
	Description string
	Merchant    string
}

// CategoryOverrides maps a normalized merchant key to the category the
// user pinned for it.
type CategoryOverrides map[string]string

type normalizedInput struct {
	description string
	merchant    string
}

// stage is one matcher in the classification chain
type stage interface {
	source() string
	confidence() float64
	match(in normalizedInput) (category, pattern string, ok bool)
	supports(in normalizedInput, category string) bool
}

// Classifier maps transaction text to a category by trying an ordered list
// of stages. The first stage that matches wins.
type Classifier struct {
	stages     []stage
	categories []string
	known      map[string]bool
}

// NewClassifier builds a classifier over the given rule set. A nil rule set
// uses the built-in tables.
func NewClassifier(rules *RuleSet) *Classifier {
	if rules == nil {
		rules = DefaultRuleSet()
	}

	categories := rules.Categories()
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c] = true
	}

	return &Classifier{
		stages: []stage{
			newExactMerchantStage(rules.Merchants),
			newPartialMerchantStage(rules.Merchants),
			newKeywordStage(rules.Keywords),
			newFallbackPatternStage(rules.Fallbacks),
			otherStage{},
		},
		categories: categories,
		known:      known,
	}
}

var (
	defaultOnce       sync.Once
	defaultClassifier *Classifier
)

// Default returns the process-wide classifier over the built-in tables
func Default() *Classifier {
	defaultOnce.Do(func() {
		defaultClassifier = NewClassifier(DefaultRuleSet())
	})
	return defaultClassifier
}

// Categories lists every category the classifier can produce
func (c *Classifier) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// IsKnownCategory reports whether category is one the classifier can produce.
// Names are case sensitive.
func (c *Classifier) IsKnownCategory(category string) bool {
	return c.known[category]
}

// Classify returns the best category for the description and merchant
func (c *Classifier) Classify(description, merchant string) models.ClassificationResult {
	return c.ClassifyWithOverrides(description, merchant, nil)
}

// ClassifyWithOverrides applies a user's pinned categories before the
// heuristic stages.
func (c *Classifier) ClassifyWithOverrides(description, merchant string, overrides CategoryOverrides) models.ClassificationResult {
	in := normalizedInput{
		description: normalize(description),
		merchant:    normalize(merchant),
	}

	if category, ok := overrides.lookup(in); ok {
		return ApplyOverride(category)
	}

	for _, s := range c.stages {
		if category, pattern, ok := s.match(in); ok {
			return models.ClassificationResult{
				Category:       category,
				Confidence:     s.confidence(),
				Source:         s.source(),
				MatchedPattern: pattern,
			}
		}
	}

	return fallbackResult()
}

// Confidence scores an already assigned category against the rules. The
// first stage that supports the category decides the score; 0.3 when none
// does. Empty description or category scores 0.
func (c *Classifier) Confidence(description, merchant, category string) float64 {
	if strings.TrimSpace(description) == "" || strings.TrimSpace(category) == "" {
		return models.ConfidenceNone
	}

	in := normalizedInput{
		description: normalize(description),
		merchant:    normalize(merchant),
	}

	for _, s := range c.stages {
		if s.supports(in, category) {
			return s.confidence()
		}
	}
	return models.ConfidenceFallback
}

// ApplyOverride wraps a user-chosen category as a classification result
func ApplyOverride(category string) models.ClassificationResult {
	return models.ClassificationResult{
		Category:   category,
		Confidence: models.ConfidenceUserOverride,
		Source:     models.ClassificationSourceUserOverride,
	}
}

func fallbackResult() models.ClassificationResult {
	return models.ClassificationResult{
		Category:   models.CategoryOther,
		Confidence: models.ConfidenceFallback,
		Source:     models.ClassificationSourceFallback,
	}
}

// lookup finds an override whose key matches the merchant, or the
// description when no merchant is given.
func (o CategoryOverrides) lookup(in normalizedInput) (string, bool) {
	if len(o) == 0 {
		return "", false
	}

	text := in.merchant
	if text == "" {
		text = in.description
	}
	if category, ok := o[text]; ok {
		return category, true
	}

	// Map order is random, so containment matches pick the longest key.
	var best, bestKey string
	for key, category := range o {
		if containsEither(text, key) && len(key) > len(bestKey) {
			best, bestKey = category, key
		}
	}
	return best, bestKey != ""
}

type exactMerchantStage struct {
	merchants map[string]string
}

func newExactMerchantStage(rules []MerchantRule) exactMerchantStage {
	merchants := make(map[string]string, len(rules))
	for _, r := range rules {
		key := normalize(r.Merchant)
		if _, exists := merchants[key]; !exists {
			merchants[key] = r.Category
		}
	}
	return exactMerchantStage{merchants: merchants}
}

func (exactMerchantStage) source() string      { return models.ClassificationSourceExactMerchantMatch }
func (exactMerchantStage) confidence() float64 { return models.ConfidenceExactMerchantMatch }

func (s exactMerchantStage) match(in normalizedInput) (string, string, bool) {
	if in.merchant == "" {
		return "", "", false
	}
	category, ok := s.merchants[in.merchant]
	return category, in.merchant, ok
}

func (s exactMerchantStage) supports(in normalizedInput, category string) bool {
	found, _, ok := s.match(in)
	return ok && found == category
}

type merchantPattern struct {
	needle   string
	category string
}

type partialMerchantStage struct {
	patterns []merchantPattern
}

func newPartialMerchantStage(rules []MerchantRule) partialMerchantStage {
	patterns := make([]merchantPattern, 0, len(rules))
	for _, r := range rules {
		patterns = append(patterns, merchantPattern{needle: normalize(r.Merchant), category: r.Category})
	}
	return partialMerchantStage{patterns: patterns}
}

func (partialMerchantStage) source() string      { return models.ClassificationSourcePartialMerchantMatch }
func (partialMerchantStage) confidence() float64 { return models.ConfidencePartialMerchantMatch }

func (s partialMerchantStage) match(in normalizedInput) (string, string, bool) {
	if in.description == "" {
		return "", "", false
	}
	for _, p := range s.patterns {
		if strings.Contains(in.description, p.needle) {
			return p.category, p.needle, true
		}
	}
	return "", "", false
}

func (s partialMerchantStage) supports(in normalizedInput, category string) bool {
	if in.description == "" {
		return false
	}
	for _, p := range s.patterns {
		if p.category == category && strings.Contains(in.description, p.needle) {
			return true
		}
	}
	return false
}

type keywordGroup struct {
	category string
	keywords []string
}

type keywordStage struct {
	groups []keywordGroup
}

func newKeywordStage(rules []KeywordRule) keywordStage {
	groups := make([]keywordGroup, 0, len(rules))
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if n := normalize(k); n != "" {
				keywords = append(keywords, n)
			}
		}
		groups = append(groups, keywordGroup{category: r.Category, keywords: keywords})
	}
	return keywordStage{groups: groups}
}

func (keywordStage) source() string      { return models.ClassificationSourceKeywordMatch }
func (keywordStage) confidence() float64 { return models.ConfidenceKeywordMatch }

func (s keywordStage) match(in normalizedInput) (string, string, bool) {
	for _, g := range s.groups {
		if keyword, ok := g.find(in.description); ok {
			return g.category, keyword, true
		}
	}
	return "", "", false
}

func (s keywordStage) supports(in normalizedInput, category string) bool {
	for _, g := range s.groups {
		if g.category != category {
			continue
		}
		if _, ok := g.find(in.description); ok {
			return true
		}
	}
	return false
}

func (g keywordGroup) find(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, k := range g.keywords {
		if strings.Contains(text, k) {
			return k, true
		}
	}
	return "", false
}

// fallbackPatternStage catches deposit, transfer and cash lines that no
// merchant or keyword rule recognized.
type fallbackPatternStage struct {
	groups []keywordGroup
}

func newFallbackPatternStage(rules []FallbackRule) fallbackPatternStage {
	groups := make([]keywordGroup, 0, len(rules))
	for _, r := range rules {
		patterns := make([]string, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			if n := normalize(p); n != "" {
				patterns = append(patterns, n)
			}
		}
		groups = append(groups, keywordGroup{category: r.Category, keywords: patterns})
	}
	return fallbackPatternStage{groups: groups}
}

func (fallbackPatternStage) source() string      { return models.ClassificationSourceFallback }
func (fallbackPatternStage) confidence() float64 { return models.ConfidenceFallback }

func (s fallbackPatternStage) match(in normalizedInput) (string, string, bool) {
	return keywordStage(s).match(in)
}

func (s fallbackPatternStage) supports(in normalizedInput, category string) bool {
	return keywordStage(s).supports(in, category)
}

type otherStage struct{}

func (otherStage) source() string      { return models.ClassificationSourceFallback }
func (otherStage) confidence() float64 { return models.ConfidenceFallback }

func (otherStage) match(normalizedInput) (string, string, bool) {
	return models.CategoryOther, "", true
}

func (otherStage) supports(_ normalizedInput, category string) bool {
	return category == models.CategoryOther
}
