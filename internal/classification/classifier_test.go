package classification

import (
	"os"
	"path/filepath"
	"testing"

	"budgethero/internal/models"

	"github.com/stretchr/testify/suite"
)

type ClassifierTestSuite struct {
	suite.Suite
	classifier *Classifier
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

func (s *ClassifierTestSuite) SetupTest() {
	s.classifier = NewClassifier(nil)
}

func (s *ClassifierTestSuite) TestClassify_ExactMerchantMatch() {
	testCases := []struct {
		name             string
		merchant         string
		expectedCategory string
	}{
		{"plain name", "Starbucks", models.CategoryFoodDining},
		{"upper case", "WHOLE FOODS", models.CategoryGroceries},
		{"padded whitespace", "  netflix ", models.CategoryEntertainment},
		{"symbols", "AT&T", models.CategoryBillsUtilities},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.classifier.Classify("POS PURCHASE", tc.merchant)
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(1.0, result.Confidence)
			s.Equal(models.ClassificationSourceExactMerchantMatch, result.Source)
		})
	}
}

func (s *ClassifierTestSuite) TestClassify_PartialMerchantMatch() {
	testCases := []struct {
		name             string
		description      string
		merchant         string
		expectedCategory string
	}{
		{"store number suffix", "STARBUCKS STORE 1234", "", models.CategoryFoodDining},
		{"declaration order picks the longer rule", "UBER EATS ORDER 88", "", models.CategoryFoodDining},
		{"ride share", "UBER TRIP HELP.UBER.COM", "", models.CategoryTransportation},
		{"merchant present but not exact", "STARBUCKS RESERVE SEATTLE", "Starbucks Reserve", models.CategoryFoodDining},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.classifier.Classify(tc.description, tc.merchant)
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(0.9, result.Confidence)
			s.Equal(models.ClassificationSourcePartialMerchantMatch, result.Source)
		})
	}
}

func (s *ClassifierTestSuite) TestClassify_KeywordMatch() {
	testCases := []struct {
		description      string
		expectedCategory string
	}{
		{"Corner Coffee House", models.CategoryFoodDining},
		{"City Water Bill", models.CategoryBillsUtilities},
		{"Downtown Parking Garage", models.CategoryTransportation},
		{"Direct Deposit ACME Corp", models.CategoryIncome},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			result := s.classifier.Classify(tc.description, "")
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(0.7, result.Confidence)
			s.Equal(models.ClassificationSourceKeywordMatch, result.Source)
		})
	}
}

func (s *ClassifierTestSuite) TestClassify_FallbackPatterns() {
	testCases := []struct {
		description      string
		expectedCategory string
	}{
		{"Online Transfer to Savings", models.CategoryFinancePayments},
		{"Mobile Deposit", models.CategoryIncome},
		{"Payroll ACME Corp", models.CategoryIncome},
		{"ATM WITHDRAWAL 1234", models.CategoryFinancePayments},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			result := s.classifier.Classify(tc.description, "")
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(0.3, result.Confidence)
			s.Equal(models.ClassificationSourceFallback, result.Source)
		})
	}
}

func (s *ClassifierTestSuite) TestClassify_Other() {
	for _, in := range []Input{
		{Description: "XYZZY 42"},
		{Description: ""},
		{Description: "   ", Merchant: "   "},
	} {
		result := s.classifier.Classify(in.Description, in.Merchant)
		s.Equal(models.CategoryOther, result.Category)
		s.Equal(0.3, result.Confidence)
		s.Equal(models.ClassificationSourceFallback, result.Source)
	}
}

func (s *ClassifierTestSuite) TestClassify_Idempotent() {
	first := s.classifier.Classify("STARBUCKS STORE 1234", "")
	second := s.classifier.Classify("STARBUCKS STORE 1234", "")
	s.Equal(first, second)
}

func (s *ClassifierTestSuite) TestClassifyWithOverrides() {
	overrides := CategoryOverrides{"netflix": models.CategoryShopping}

	s.Run("exact key", func() {
		result := s.classifier.ClassifyWithOverrides("NETFLIX.COM", "Netflix", overrides)
		s.Equal(models.CategoryShopping, result.Category)
		s.Equal(1.0, result.Confidence)
		s.Equal(models.ClassificationSourceUserOverride, result.Source)
	})

	s.Run("containment on description", func() {
		result := s.classifier.ClassifyWithOverrides("NETFLIX.COM 866-579", "", overrides)
		s.Equal(models.CategoryShopping, result.Category)
		s.Equal(models.ClassificationSourceUserOverride, result.Source)
	})

	s.Run("unrelated merchant falls through", func() {
		result := s.classifier.ClassifyWithOverrides("SPOTIFY USA", "", overrides)
		s.Equal(models.CategoryEntertainment, result.Category)
		s.Equal(models.ClassificationSourcePartialMerchantMatch, result.Source)
	})

	s.Run("longest key wins", func() {
		result := s.classifier.ClassifyWithOverrides("", "Amazon Prime Video", CategoryOverrides{
			"amazon":       models.CategoryShopping,
			"amazon prime": models.CategoryEntertainment,
		})
		s.Equal(models.CategoryEntertainment, result.Category)
	})
}

func (s *ClassifierTestSuite) TestConfidence() {
	testCases := []struct {
		name        string
		description string
		merchant    string
		category    string
		expected    float64
	}{
		{"empty description", "", "Whole Foods", models.CategoryGroceries, 0},
		{"empty category", "WHOLE FOODS MARKET", "", "", 0},
		{"exact merchant", "WHOLE FOODS MARKET", "Whole Foods", models.CategoryGroceries, 1.0},
		{"partial merchant", "WHOLE FOODS MARKET", "", models.CategoryGroceries, 0.9},
		{"partial beats keyword", "Starbucks coffee", "", models.CategoryFoodDining, 0.9},
		{"keyword", "grocery run", "", models.CategoryGroceries, 0.7},
		{"fallback pattern", "Mobile deposit", "", models.CategoryIncome, 0.3},
		{"other", "XYZZY", "", models.CategoryOther, 0.3},
		{"unsupported category", "WHOLE FOODS MARKET", "", models.CategoryEntertainment, 0.3},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, s.classifier.Confidence(tc.description, tc.merchant, tc.category))
		})
	}
}

func (s *ClassifierTestSuite) TestCategories() {
	categories := s.classifier.Categories()
	s.Require().NotEmpty(categories)
	s.Equal(models.CategoryGroceries, categories[0])
	s.Equal(models.CategoryOther, categories[len(categories)-1])
	s.Contains(categories, models.CategoryIncome)
	s.Contains(categories, models.CategoryFinancePayments)

	categories[0] = "mutated"
	s.Equal(models.CategoryGroceries, s.classifier.Categories()[0])
}

func (s *ClassifierTestSuite) TestDefault_ReturnsSharedInstance() {
	s.Same(Default(), Default())
}

func (s *ClassifierTestSuite) TestCustomRuleSet() {
	rules, err := ParseRuleSet([]byte(`
merchants:
  - merchant: Corner Deli
    category: Food & Dining
keywords:
  - category: Travel
    keywords: [ferry]
fallbacks:
  - category: Income
    patterns: [bonus]
`))
	s.Require().NoError(err)

	classifier := NewClassifier(rules)
	s.Equal(models.ClassificationSourceExactMerchantMatch, classifier.Classify("x", "corner deli").Source)
	s.Equal(models.CategoryTravel, classifier.Classify("Island Ferry Ticket", "").Category)
	s.Equal(models.CategoryIncome, classifier.Classify("Annual bonus", "").Category)
	s.Equal(models.CategoryOther, classifier.Classify("STARBUCKS", "").Category)
	s.Equal([]string{models.CategoryFoodDining, models.CategoryTravel, models.CategoryIncome, models.CategoryOther}, classifier.Categories())

	s.True(classifier.IsKnownCategory(models.CategoryTravel))
	s.True(classifier.IsKnownCategory(models.CategoryOther))
	s.False(classifier.IsKnownCategory(models.CategoryGroceries), "only categories named by the rules are known")
	s.False(classifier.IsKnownCategory("travel"))
}

func (s *ClassifierTestSuite) TestIsKnownCategory_RuleFileCategory() {
	rules, err := ParseRuleSet([]byte(`
keywords:
  - category: Pet Care
    keywords: [petco, vet clinic]
`))
	s.Require().NoError(err)

	classifier := NewClassifier(rules)
	s.True(classifier.IsKnownCategory("Pet Care"))
	s.Equal("Pet Care", classifier.Classify("PETCO #1234", "").Category)
	s.False(Default().IsKnownCategory("Pet Care"))
}

func (s *ClassifierTestSuite) TestParseRuleSet_Invalid() {
	_, err := ParseRuleSet([]byte("merchants:\n  - merchant: Foo\n"))
	s.ErrorIs(err, ErrInvalidRuleSet)

	_, err = ParseRuleSet([]byte("keywords: [unclosed"))
	s.Error(err)
}

func (s *ClassifierTestSuite) TestLoadRuleSet() {
	s.Run("empty path returns built-in rules", func() {
		rules, err := LoadRuleSet("")
		s.Require().NoError(err)
		s.Equal(DefaultRuleSet(), rules)
	})

	s.Run("reads file", func() {
		path := filepath.Join(s.T().TempDir(), "rules.yaml")
		s.Require().NoError(os.WriteFile(path, []byte("merchants:\n  - merchant: Foo\n    category: Other\n"), 0o600))

		rules, err := LoadRuleSet(path)
		s.Require().NoError(err)
		s.Len(rules.Merchants, 1)
	})

	s.Run("missing file", func() {
		_, err := LoadRuleSet(filepath.Join(s.T().TempDir(), "missing.yaml"))
		s.Error(err)
	})
}

func (s *ClassifierTestSuite) TestSimilarity() {
	s.Equal(1.0, Similarity("Netflix", " netflix "))
	s.InDelta(1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.0001)
	s.Equal(0.0, Similarity("", "abc"))
}
