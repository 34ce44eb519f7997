package classification

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"budgethero/internal/models"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRuleSet = errors.New("invalid rule set")

// MerchantRule maps a known merchant name to a category
type MerchantRule struct {
	Merchant string `yaml:"merchant" json:"merchant"`
	Category string `yaml:"category" json:"category"`
}

// KeywordRule maps description keywords to a category
type KeywordRule struct {
	Category string   `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// FallbackRule maps loose description patterns to a category
type FallbackRule struct {
	Category string   `yaml:"category" json:"category"`
	Patterns []string `yaml:"patterns" json:"patterns"`
}

// RuleSet is the reference data the classifier runs against. Slices are
// ordered; earlier entries win when more than one rule matches.
type RuleSet struct {
	Merchants []MerchantRule `yaml:"merchants" json:"merchants"`
	Keywords  []KeywordRule  `yaml:"keywords" json:"keywords"`
	Fallbacks []FallbackRule `yaml:"fallbacks" json:"fallbacks"`
}

// Validate checks that every rule names a category and a match string
func (r *RuleSet) Validate() error {
	for i, m := range r.Merchants {
		if strings.TrimSpace(m.Merchant) == "" || strings.TrimSpace(m.Category) == "" {
			return fmt.Errorf("%w: merchant rule %d is incomplete", ErrInvalidRuleSet, i)
		}
	}
	for i, k := range r.Keywords {
		if strings.TrimSpace(k.Category) == "" || len(k.Keywords) == 0 {
			return fmt.Errorf("%w: keyword rule %d is incomplete", ErrInvalidRuleSet, i)
		}
	}
	for i, f := range r.Fallbacks {
		if strings.TrimSpace(f.Category) == "" || len(f.Patterns) == 0 {
			return fmt.Errorf("%w: fallback rule %d is incomplete", ErrInvalidRuleSet, i)
		}
	}
	return nil
}

// Categories returns the distinct categories named by the rule set in
// declaration order, with Other last.
func (r *RuleSet) Categories() []string {
	seen := map[string]bool{models.CategoryOther: true}
	var out []string
	add := func(c string) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, m := range r.Merchants {
		add(m.Category)
	}
	for _, k := range r.Keywords {
		add(k.Category)
	}
	for _, f := range r.Fallbacks {
		add(f.Category)
	}
	return append(out, models.CategoryOther)
}

// ParseRuleSet decodes a YAML rule file
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rule set: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// LoadRuleSet reads a YAML rule file from disk. An empty path returns the
// built-in rules.
func LoadRuleSet(path string) (*RuleSet, error) {
	if path == "" {
		return DefaultRuleSet(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule set %s: %w", path, err)
	}
	return ParseRuleSet(data)
}

// DefaultRuleSet returns a fresh copy of the built-in reference tables
func DefaultRuleSet() *RuleSet {
	rules := &RuleSet{
		Merchants: make([]MerchantRule, len(merchantCategories)),
		Keywords:  make([]KeywordRule, len(categoryKeywords)),
		Fallbacks: make([]FallbackRule, len(fallbackRules)),
	}
	copy(rules.Merchants, merchantCategories)
	copy(rules.Keywords, categoryKeywords)
	copy(rules.Fallbacks, fallbackRules)
	return rules
}

var merchantCategories = []MerchantRule{
	// Groceries
	{Merchant: "Whole Foods", Category: models.CategoryGroceries},
	{Merchant: "Trader Joe", Category: models.CategoryGroceries},
	{Merchant: "Walmart", Category: models.CategoryGroceries},
	{Merchant: "Kroger", Category: models.CategoryGroceries},
	{Merchant: "Safeway", Category: models.CategoryGroceries},
	{Merchant: "Costco", Category: models.CategoryGroceries},
	{Merchant: "Aldi", Category: models.CategoryGroceries},
	{Merchant: "Instacart", Category: models.CategoryGroceries},

	// Food & Dining
	{Merchant: "Uber Eats", Category: models.CategoryFoodDining},
	{Merchant: "DoorDash", Category: models.CategoryFoodDining},
	{Merchant: "Grubhub", Category: models.CategoryFoodDining},
	{Merchant: "Starbucks", Category: models.CategoryFoodDining},
	{Merchant: "McDonald", Category: models.CategoryFoodDining},
	{Merchant: "Chipotle", Category: models.CategoryFoodDining},
	{Merchant: "Taco Bell", Category: models.CategoryFoodDining},
	{Merchant: "Panera", Category: models.CategoryFoodDining},
	{Merchant: "Dunkin", Category: models.CategoryFoodDining},
	{Merchant: "Pizza Hut", Category: models.CategoryFoodDining},

	// Transportation
	{Merchant: "Uber", Category: models.CategoryTransportation},
	{Merchant: "Lyft", Category: models.CategoryTransportation},
	{Merchant: "Shell", Category: models.CategoryTransportation},
	{Merchant: "Chevron", Category: models.CategoryTransportation},
	{Merchant: "Exxon", Category: models.CategoryTransportation},

	// Entertainment
	{Merchant: "Netflix", Category: models.CategoryEntertainment},
	{Merchant: "Spotify", Category: models.CategoryEntertainment},
	{Merchant: "Hulu", Category: models.CategoryEntertainment},
	{Merchant: "Disney Plus", Category: models.CategoryEntertainment},
	{Merchant: "HBO Max", Category: models.CategoryEntertainment},
	{Merchant: "AMC Theatres", Category: models.CategoryEntertainment},

	// Shopping
	{Merchant: "Amazon", Category: models.CategoryShopping},
	{Merchant: "Target", Category: models.CategoryShopping},
	{Merchant: "Best Buy", Category: models.CategoryShopping},
	{Merchant: "Home Depot", Category: models.CategoryShopping},
	{Merchant: "Lowes", Category: models.CategoryShopping},
	{Merchant: "Ikea", Category: models.CategoryShopping},

	// Bills & Utilities
	{Merchant: "AT&T", Category: models.CategoryBillsUtilities},
	{Merchant: "Verizon", Category: models.CategoryBillsUtilities},
	{Merchant: "T-Mobile", Category: models.CategoryBillsUtilities},
	{Merchant: "Comcast", Category: models.CategoryBillsUtilities},
	{Merchant: "Xfinity", Category: models.CategoryBillsUtilities},
	{Merchant: "PG&E", Category: models.CategoryBillsUtilities},
	{Merchant: "Edison", Category: models.CategoryBillsUtilities},

	// Health & Fitness
	{Merchant: "CVS", Category: models.CategoryHealthFitness},
	{Merchant: "Walgreens", Category: models.CategoryHealthFitness},
	{Merchant: "Rite Aid", Category: models.CategoryHealthFitness},
	{Merchant: "Planet Fitness", Category: models.CategoryHealthFitness},
	{Merchant: "Peloton", Category: models.CategoryHealthFitness},

	// Travel
	{Merchant: "Delta Air", Category: models.CategoryTravel},
	{Merchant: "United Airlines", Category: models.CategoryTravel},
	{Merchant: "American Airlines", Category: models.CategoryTravel},
	{Merchant: "Southwest", Category: models.CategoryTravel},
	{Merchant: "Marriott", Category: models.CategoryTravel},
	{Merchant: "Hilton", Category: models.CategoryTravel},
	{Merchant: "Airbnb", Category: models.CategoryTravel},

	// Insurance
	{Merchant: "Geico", Category: models.CategoryInsurance},
	{Merchant: "State Farm", Category: models.CategoryInsurance},
	{Merchant: "Allstate", Category: models.CategoryInsurance},

	// Finance & Payments
	{Merchant: "Venmo", Category: models.CategoryFinancePayments},
	{Merchant: "PayPal", Category: models.CategoryFinancePayments},
	{Merchant: "Zelle", Category: models.CategoryFinancePayments},
}

var categoryKeywords = []KeywordRule{
	{Category: models.CategoryIncome, Keywords: []string{"direct deposit", "paycheck", "dividend", "interest earned", "reimbursement", "refund"}},
	{Category: models.CategoryFinancePayments, Keywords: []string{"interest charge", "overdraft", "service fee", "late fee", "bank fee", "credit card"}},
	{Category: models.CategoryHousing, Keywords: []string{"mortgage", "rent payment", "apartment", "property management", "hoa dues"}},
	{Category: models.CategoryBillsUtilities, Keywords: []string{"electric", "utility", "utilities", "water bill", "internet", "wireless", "cable"}},
	{Category: models.CategoryInsurance, Keywords: []string{"insurance", "premium"}},
	{Category: models.CategoryGroceries, Keywords: []string{"grocery", "groceries", "supermarket", "food mart"}},
	{Category: models.CategoryFoodDining, Keywords: []string{"restaurant", "cafe", "coffee", "pizza", "burger", "bakery", "diner", "sushi", "grill"}},
	{Category: models.CategoryTransportation, Keywords: []string{"gas station", "fuel", "parking", "toll", "transit", "taxi", "metro"}},
	{Category: models.CategoryHealthFitness, Keywords: []string{"pharmacy", "doctor", "dental", "medical", "clinic", "hospital", "gym", "fitness"}},
	{Category: models.CategoryPersonalCare, Keywords: []string{"salon", "barber", "nail", "cosmetics", "day spa"}},
	{Category: models.CategoryEntertainment, Keywords: []string{"cinema", "theater", "movie", "concert", "ticketmaster", "streaming"}},
	{Category: models.CategoryTravel, Keywords: []string{"airline", "hotel", "motel", "flight", "resort", "expedia"}},
	{Category: models.CategoryEducation, Keywords: []string{"tuition", "university", "college", "school", "course", "textbook"}},
	{Category: models.CategoryShopping, Keywords: []string{"store", "shop", "boutique", "outlet", "mall"}},
}

var fallbackRules = []FallbackRule{
	{Category: models.CategoryFinancePayments, Patterns: []string{"payment", "transfer"}},
	{Category: models.CategoryIncome, Patterns: []string{"deposit", "salary", "payroll"}},
	{Category: models.CategoryFinancePayments, Patterns: []string{"atm", "withdrawal"}},
}

// ParseRecurringSeeds decodes a YAML list of global recurring merchants
func ParseRecurringSeeds(data []byte) ([]models.RecurringMerchant, error) {
	var doc struct {
		Merchants []RecurringSeed `yaml:"merchants"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recurring merchant seeds: %w", err)
	}

	merchants := make([]models.RecurringMerchant, 0, len(doc.Merchants))
	for i, seed := range doc.Merchants {
		m := seed.ToModel()
		if m.TransactionType == "" {
			m.TransactionType = models.RecurringTypeSubscription
		}
		if m.Frequency == "" {
			m.Frequency = models.FrequencyMonthly
		}
		if m.ConfidenceTier == "" {
			m.ConfidenceTier = models.ConfidenceTierHigh
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: seed %d (%s): %v", ErrInvalidRuleSet, i, seed.MerchantName, err)
		}
		merchants = append(merchants, m)
	}
	return merchants, nil
}

// LoadRecurringSeeds reads the recurring merchant seed file
func LoadRecurringSeeds(path string) ([]models.RecurringMerchant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recurring merchant seeds %s: %w", path, err)
	}
	return ParseRecurringSeeds(data)
}
