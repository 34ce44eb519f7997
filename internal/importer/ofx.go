package importer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"budgethero/internal/models"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX repairs formatting quirks seen in bank exports
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagPattern.ReplaceAllString(content, "$1>")
}

// ParseOFX reads bank and credit card statements from an OFX or QFX file
func ParseOFX(r io.Reader, opts ...Option) (*ParseResult, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, ErrEmptyFile
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	var statements [][]ofxgo.Transaction
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			statements = append(statements, stmt.BankTranList.Transactions)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			statements = append(statements, stmt.BankTranList.Transactions)
		}
	}

	result := &ParseResult{}
	seen := make(map[string]int)
	for _, txns := range statements {
		for i, ofxTx := range txns {
			result.TotalRows++
			if cfg.maxRows > 0 && result.TotalRows > cfg.maxRows {
				return nil, ErrTooManyRows
			}

			txn, reason := convertOFXTransaction(ofxTx)
			if reason != "" {
				result.Skipped = append(result.Skipped, RowError{Line: i + 1, Reason: reason})
				continue
			}

			if txn.ExternalID == "" {
				key := rowKey(txn)
				txn.ExternalID = fingerprint(key, seen[key])
				seen[key]++
			}
			txn.Line = i + 1
			result.Transactions = append(result.Transactions, txn)
		}
	}

	if len(result.Transactions) == 0 {
		return result, ErrNoValidTransactions
	}
	return result, nil
}

func convertOFXTransaction(ofxTx ofxgo.Transaction) (models.ParsedTransaction, string) {
	var txn models.ParsedTransaction

	if ofxTx.DtPosted.Time.IsZero() {
		return txn, "missing date"
	}

	description := strings.TrimSpace(string(ofxTx.Name))
	if description == "" {
		description = strings.TrimSpace(string(ofxTx.Memo))
	}
	if description == "" {
		return txn, "missing description"
	}

	amount, err := decimal.NewFromString(ofxTx.TrnAmt.FloatString(2))
	if err != nil {
		return txn, "invalid amount"
	}

	txn.Date = ofxTx.DtPosted.Time.UTC()
	txn.Description = description
	if ofxTx.Payee != nil {
		txn.MerchantName = strings.TrimSpace(string(ofxTx.Payee.Name))
	}
	txn.Type = models.TransactionTypeForAmount(amount)
	txn.Amount = amount.Abs().Round(2)
	if fitID := strings.TrimSpace(string(ofxTx.FiTID)); fitID != "" {
		txn.ExternalID = "ofx:" + fitID
	}
	return txn, ""
}
