package classification

import (
	"sort"
	"time"

	"budgethero/internal/models"

	"github.com/shopspring/decimal"
)

// SeriesOptions tunes recurring series detection
type SeriesOptions struct {
	MinOccurrences      int
	SimilarityThreshold float64
}

// DefaultSeriesOptions requires three charges and merges names at least 85% similar
func DefaultSeriesOptions() SeriesOptions {
	return SeriesOptions{
		MinOccurrences:      3,
		SimilarityThreshold: 0.85,
	}
}

// Series is a group of charges from one merchant that repeat on a schedule
type Series struct {
	MerchantName   string
	NormalizedName string
	Category       string
	Frequency      string
	ConfidenceTier string
	MedianInterval int
	AverageAmount  decimal.Decimal
	TransactionIDs []string
	Occurrences    int
	LastSeen       time.Time
}

type frequencyBand struct {
	frequency string
	minDays   int
	maxDays   int
}

var frequencyBands = []frequencyBand{
	{models.FrequencyWeekly, 5, 9},
	{models.FrequencyBiweekly, 12, 17},
	{models.FrequencyMonthly, 26, 35},
	{models.FrequencyQuarterly, 80, 100},
	{models.FrequencyYearly, 350, 380},
}

type merchantGroup struct {
	key          string
	transactions []models.Transaction
}

// DetectSeries groups expenses by merchant and returns the groups whose
// charges repeat at a recognizable interval. Near-identical merchant names
// are merged first. Results are ordered by normalized name.
func DetectSeries(transactions []models.Transaction, opts SeriesOptions) []Series {
	if opts.MinOccurrences < 2 {
		opts.MinOccurrences = 2
	}

	groups := mergeSimilarGroups(groupByMerchant(transactions), opts.SimilarityThreshold)

	var series []Series
	for _, g := range groups {
		if len(g.transactions) < opts.MinOccurrences {
			continue
		}
		if s, ok := analyzeGroup(g); ok {
			series = append(series, s)
		}
	}
	return series
}

func groupByMerchant(transactions []models.Transaction) []*merchantGroup {
	byKey := make(map[string]*merchantGroup)
	var groups []*merchantGroup

	for _, txn := range transactions {
		if txn.Type != models.TransactionTypeExpense {
			continue
		}
		key := normalize(txn.MatchText())
		if len(key) < minMatchLength {
			continue
		}
		g, ok := byKey[key]
		if !ok {
			g = &merchantGroup{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.transactions = append(g.transactions, txn)
	}

	// Larger groups absorb smaller ones; ties break on name for stable output.
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].transactions) != len(groups[j].transactions) {
			return len(groups[i].transactions) > len(groups[j].transactions)
		}
		return groups[i].key < groups[j].key
	})
	return groups
}

func mergeSimilarGroups(groups []*merchantGroup, threshold float64) []*merchantGroup {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSeriesOptions().SimilarityThreshold
	}

	var merged []*merchantGroup
	for _, g := range groups {
		absorbed := false
		for _, m := range merged {
			if calculateSimilarity(g.key, m.key) >= threshold {
				m.transactions = append(m.transactions, g.transactions...)
				absorbed = true
				break
			}
		}
		if !absorbed {
			merged = append(merged, g)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].key < merged[j].key
	})
	return merged
}

func analyzeGroup(g *merchantGroup) (Series, bool) {
	txns := make([]models.Transaction, len(g.transactions))
	copy(txns, g.transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	intervals := make([]int, 0, len(txns)-1)
	for i := 1; i < len(txns); i++ {
		days := int(txns[i].Date.Sub(txns[i-1].Date).Hours() / 24)
		if days > 0 {
			intervals = append(intervals, days)
		}
	}
	if len(intervals) == 0 {
		return Series{}, false
	}

	median := medianInt(intervals)
	frequency, ok := frequencyForInterval(median)
	if !ok {
		return Series{}, false
	}

	total := decimal.Zero
	ids := make([]string, 0, len(txns))
	for _, txn := range txns {
		total = total.Add(txn.Amount)
		ids = append(ids, txn.ID.String())
	}
	last := txns[len(txns)-1]

	return Series{
		MerchantName:   last.MatchText(),
		NormalizedName: g.key,
		Category:       dominantCategory(txns),
		Frequency:      frequency,
		ConfidenceTier: regularityTier(intervals, median),
		MedianInterval: median,
		AverageAmount:  total.Div(decimal.NewFromInt(int64(len(txns)))).Round(2),
		TransactionIDs: ids,
		Occurrences:    len(txns),
		LastSeen:       last.Date,
	}, true
}

func medianInt(values []int) int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func frequencyForInterval(days int) (string, bool) {
	for _, band := range frequencyBands {
		if days >= band.minDays && days <= band.maxDays {
			return band.frequency, true
		}
	}
	return "", false
}

// regularityTier grades how many intervals fall close to the median
func regularityTier(intervals []int, median int) string {
	tolerance := max(3, median/5)

	regular := 0
	for _, d := range intervals {
		diff := d - median
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			regular++
		}
	}

	ratio := float64(regular) / float64(len(intervals))
	switch {
	case ratio >= 0.8:
		return models.ConfidenceTierHigh
	case ratio >= 0.5:
		return models.ConfidenceTierMedium
	default:
		return models.ConfidenceTierLow
	}
}

func dominantCategory(txns []models.Transaction) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, txn := range txns {
		c := txn.CategoryName()
		if c == "" || c == models.CategoryOther {
			continue
		}
		counts[c]++
		if counts[c] > bestCount || (counts[c] == bestCount && c < best) {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

// RecurringSeed is one entry of the global recurring merchant seed file
type RecurringSeed struct {
	MerchantName    string   `yaml:"merchant_name"`
	Category        string   `yaml:"category"`
	TransactionType string   `yaml:"transaction_type"`
	Frequency       string   `yaml:"frequency"`
	ConfidenceTier  string   `yaml:"confidence_tier"`
	Patterns        []string `yaml:"patterns"`
	LogoURL         string   `yaml:"logo_url"`
}

// ToModel converts a seed entry into a global recurring merchant
func (s RecurringSeed) ToModel() models.RecurringMerchant {
	return models.RecurringMerchant{
		MerchantName:    s.MerchantName,
		NormalizedName:  models.NormalizeMerchantName(s.MerchantName),
		Category:        s.Category,
		TransactionType: s.TransactionType,
		Frequency:       s.Frequency,
		ConfidenceTier:  s.ConfidenceTier,
		Patterns:        models.StringList(s.Patterns),
		LogoURL:         s.LogoURL,
		IsActive:        true,
	}
}
