package classification

import (
	"testing"
	"time"

	"budgethero/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func charge(merchant, amount string, date time.Time) models.Transaction {
	category := models.CategoryHealthFitness
	return models.Transaction{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Description:  merchant + " CHARGE",
		MerchantName: merchant,
		Amount:       decimal.RequireFromString(amount),
		Type:         models.TransactionTypeExpense,
		Category:     &category,
		Date:         date,
	}
}

func monthlyCharges(merchant string, n int, start time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, charge(merchant, "24.99", start.AddDate(0, i, 0)))
	}
	return out
}

var seriesStart = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func TestDetectSeries_Monthly(t *testing.T) {
	series := DetectSeries(monthlyCharges("Planet Fitness", 4, seriesStart), DefaultSeriesOptions())

	require.Len(t, series, 1)
	s := series[0]
	assert.Equal(t, "planet fitness", s.NormalizedName)
	assert.Equal(t, models.FrequencyMonthly, s.Frequency)
	assert.Equal(t, models.ConfidenceTierHigh, s.ConfidenceTier)
	assert.Equal(t, 4, s.Occurrences)
	assert.Equal(t, "24.99", s.AverageAmount.StringFixed(2))
	assert.Equal(t, models.CategoryHealthFitness, s.Category)
	assert.Len(t, s.TransactionIDs, 4)
}

func TestDetectSeries_Frequencies(t *testing.T) {
	tests := []struct {
		name string
		step time.Duration
		want string
	}{
		{"weekly", 7 * 24 * time.Hour, models.FrequencyWeekly},
		{"biweekly", 14 * 24 * time.Hour, models.FrequencyBiweekly},
		{"quarterly", 91 * 24 * time.Hour, models.FrequencyQuarterly},
		{"yearly", 365 * 24 * time.Hour, models.FrequencyYearly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txns []models.Transaction
			for i := 0; i < 3; i++ {
				txns = append(txns, charge("Dog Walker Co", "40.00", seriesStart.Add(time.Duration(i)*tt.step)))
			}

			series := DetectSeries(txns, DefaultSeriesOptions())
			require.Len(t, series, 1)
			assert.Equal(t, tt.want, series[0].Frequency)
		})
	}
}

func TestDetectSeries_RequiresMinimumOccurrences(t *testing.T) {
	series := DetectSeries(monthlyCharges("Planet Fitness", 2, seriesStart), DefaultSeriesOptions())
	assert.Empty(t, series)
}

func TestDetectSeries_IgnoresIrregularAndIncome(t *testing.T) {
	irregular := []models.Transaction{
		charge("Corner Deli", "9.00", seriesStart),
		charge("Corner Deli", "9.00", seriesStart.AddDate(0, 0, 2)),
		charge("Corner Deli", "9.00", seriesStart.AddDate(0, 0, 21)),
	}
	assert.Empty(t, DetectSeries(irregular, DefaultSeriesOptions()))

	income := monthlyCharges("Acme Payroll", 4, seriesStart)
	for i := range income {
		income[i].Type = models.TransactionTypeIncome
	}
	assert.Empty(t, DetectSeries(income, DefaultSeriesOptions()))
}

func TestDetectSeries_MergesSimilarNames(t *testing.T) {
	txns := monthlyCharges("Planet Fitness", 3, seriesStart)
	txns = append(txns, charge("Planet Fitnes", "24.99", seriesStart.AddDate(0, 3, 0)))

	series := DetectSeries(txns, DefaultSeriesOptions())
	require.Len(t, series, 1)
	assert.Equal(t, "planet fitness", series[0].NormalizedName)
	assert.Equal(t, 4, series[0].Occurrences)
}

func TestDetectSeries_IrregularIntervalsLowerTier(t *testing.T) {
	txns := []models.Transaction{
		charge("City Water", "60.00", seriesStart),
		charge("City Water", "60.00", seriesStart.AddDate(0, 0, 30)),
		charge("City Water", "60.00", seriesStart.AddDate(0, 0, 60)),
		charge("City Water", "60.00", seriesStart.AddDate(0, 0, 75)),
		charge("City Water", "60.00", seriesStart.AddDate(0, 0, 120)),
	}

	series := DetectSeries(txns, DefaultSeriesOptions())
	require.Len(t, series, 1)
	assert.Equal(t, models.FrequencyMonthly, series[0].Frequency)
	assert.Equal(t, models.ConfidenceTierMedium, series[0].ConfidenceTier)
}

func TestParseRecurringSeeds(t *testing.T) {
	data := []byte(`
merchants:
  - merchant_name: Netflix
    category: Entertainment
    logo_url: https://logo.example/netflix.png
  - merchant_name: Venmo
    transaction_type: excluded
    frequency: unset
`)

	merchants, err := ParseRecurringSeeds(data)
	require.NoError(t, err)
	require.Len(t, merchants, 2)

	assert.Equal(t, "netflix", merchants[0].NormalizedName)
	assert.Equal(t, models.RecurringTypeSubscription, merchants[0].TransactionType)
	assert.Equal(t, models.FrequencyMonthly, merchants[0].Frequency)
	assert.Equal(t, models.ConfidenceTierHigh, merchants[0].ConfidenceTier)
	assert.True(t, merchants[0].IsGlobal())

	assert.Equal(t, models.RecurringTypeExcluded, merchants[1].TransactionType)
}

func TestParseRecurringSeeds_Invalid(t *testing.T) {
	_, err := ParseRecurringSeeds([]byte("merchants:\n  - merchant_name: Foo\n    frequency: fortnightly\n"))
	assert.ErrorIs(t, err, ErrInvalidRuleSet)

	_, err = ParseRecurringSeeds([]byte("merchants: [unclosed"))
	assert.Error(t, err)
}
