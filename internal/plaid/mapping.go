package plaid

import (
	"strings"
	"time"
	"unicode"

	"budgethero/internal/models"

	"github.com/plaid/plaid-go/v20/plaid"
	"github.com/shopspring/decimal"
)

var corporateSuffixes = []string{
	" Llc",
	" Inc",
	" Corp",
	" Corporation",
	" Company",
	" Co",
	" Ltd",
	" Limited",
}

// mapTransaction converts a Plaid transaction. Plaid reports money leaving the
// account as a positive amount. Pending or undated transactions are rejected.
func mapTransaction(pt plaid.Transaction) (models.ParsedTransaction, bool) {
	if pt.GetPending() {
		return models.ParsedTransaction{}, false
	}

	date, err := time.Parse(dateLayout, pt.GetDate())
	if err != nil {
		return models.ParsedTransaction{}, false
	}

	amount := decimal.NewFromFloat(pt.GetAmount()).Round(2)
	txnType := models.TransactionTypeIncome
	if amount.IsPositive() {
		txnType = models.TransactionTypeExpense
	}

	merchant := pt.GetMerchantName()
	if merchant == "" {
		merchant = pt.GetName()
	}

	return models.ParsedTransaction{
		Date:         date,
		Description:  strings.TrimSpace(pt.GetName()),
		MerchantName: cleanMerchantName(merchant),
		Amount:       amount.Abs(),
		Type:         txnType,
		ExternalID:   "plaid:" + pt.GetTransactionId(),
	}, true
}

// cleanMerchantName title-cases a merchant name and strips trailing reference
// numbers and corporate suffixes.
func cleanMerchantName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, word := range words {
		runes := []rune(word)
		for j := range runes {
			if j == 0 || !unicode.IsLetter(runes[j-1]) {
				runes[j] = unicode.ToUpper(runes[j])
			}
		}
		words[i] = string(runes)
	}

	// "Merchant 123456789": a long numeric tail is a reference number
	if len(words) > 1 {
		last := words[len(words)-1]
		if len(last) > 5 && isAllDigits(last) {
			words = words[:len(words)-1]
		}
	}
	name = strings.Join(words, " ")

	for changed := true; changed; {
		changed = false
		for _, suffix := range corporateSuffixes {
			if strings.HasSuffix(name, suffix) {
				name = strings.TrimSuffix(name, suffix)
				changed = true
			}
		}
	}

	return strings.TrimSpace(name)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
