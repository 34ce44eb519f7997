package importer

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"budgethero/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrNoValidTransactions = errors.New("no valid transactions found in file")
	ErrEmptyFile           = errors.New("file is empty or missing a header row")
	ErrTooManyRows         = errors.New("file exceeds the maximum number of rows")
	ErrMalformedFile       = errors.New("file could not be parsed")
)

// Candidate header names per field, in priority order
var (
	dateHeaders        = []string{"date", "transaction date", "trans date", "posted date", "posting date", "post date", "booking date"}
	descriptionHeaders = []string{"description", "transaction description", "name", "payee", "memo", "details", "narrative", "merchant", "merchant name"}
	amountHeaders      = []string{"amount", "transaction amount", "amt", "value"}
	debitHeaders       = []string{"debit", "debit amount", "withdrawal", "withdrawals"}
	creditHeaders      = []string{"credit", "credit amount", "deposit", "deposits"}
	categoryHeaders    = []string{"category", "transaction category"}
	merchantHeaders    = []string{"merchant", "merchant name"}
)

// RowError records why a row was skipped
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseResult holds the rows that parsed and the ones that did not
type ParseResult struct {
	Transactions []models.ParsedTransaction `json:"transactions"`
	Skipped      []RowError                 `json:"skipped,omitempty"`
	TotalRows    int                        `json:"total_rows"`
}

type options struct {
	maxRows int
}

// Option configures a parse
type Option func(*options)

// WithMaxRows caps the number of data rows; zero means unlimited
func WithMaxRows(n int) Option {
	return func(o *options) {
		o.maxRows = n
	}
}

// ParseCSV reads a bank or card export with arbitrary column names. Rows
// that lack a usable date, description or amount are skipped. A file
// with no usable rows returns ErrNoValidTransactions.
func ParseCSV(r io.Reader, opts ...Option) (*ParseResult, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := indexHeader(header)
	result := &ParseResult{}
	seen := make(map[string]int)
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.TotalRows++
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: "malformed row"})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line, err)
		}

		result.TotalRows++
		if cfg.maxRows > 0 && result.TotalRows > cfg.maxRows {
			return nil, ErrTooManyRows
		}

		txn, reason := parseRow(columns, record)
		if reason != "" {
			result.Skipped = append(result.Skipped, RowError{Line: line, Reason: reason})
			continue
		}

		txn.Line = line
		key := rowKey(txn)
		txn.ExternalID = fingerprint(key, seen[key])
		seen[key]++
		result.Transactions = append(result.Transactions, txn)
	}

	if len(result.Transactions) == 0 {
		return result, ErrNoValidTransactions
	}
	return result, nil
}

type headerIndex map[string]int

func indexHeader(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, exists := idx[name]; !exists {
			idx[name] = i
		}
	}
	return idx
}

// firstValue returns the first non-empty value among the candidate columns
func (h headerIndex) firstValue(record []string, candidates []string) string {
	for _, name := range candidates {
		i, ok := h[name]
		if !ok || i >= len(record) {
			continue
		}
		if v := strings.TrimSpace(record[i]); v != "" {
			return v
		}
	}
	return ""
}

func parseRow(columns headerIndex, record []string) (models.ParsedTransaction, string) {
	var txn models.ParsedTransaction

	rawDate := columns.firstValue(record, dateHeaders)
	if rawDate == "" {
		return txn, "missing date"
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return txn, "invalid date"
	}

	description := columns.firstValue(record, descriptionHeaders)
	if description == "" {
		return txn, "missing description"
	}

	amount, reason := rowAmount(columns, record)
	if reason != "" {
		return txn, reason
	}

	txn.Date = date
	txn.Description = description
	txn.MerchantName = columns.firstValue(record, merchantHeaders)
	txn.Category = columns.firstValue(record, categoryHeaders)
	txn.Type = models.TransactionTypeForAmount(amount)
	txn.Amount = amount.Abs().Round(2)
	return txn, ""
}

// rowAmount reads a signed amount, falling back to a debit/credit pair
func rowAmount(columns headerIndex, record []string) (decimal.Decimal, string) {
	if raw := columns.firstValue(record, amountHeaders); raw != "" {
		amount, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, "invalid amount"
		}
		return amount, ""
	}

	rawDebit := columns.firstValue(record, debitHeaders)
	rawCredit := columns.firstValue(record, creditHeaders)
	if rawDebit == "" && rawCredit == "" {
		return decimal.Zero, "missing amount"
	}

	amount := decimal.Zero
	if rawCredit != "" {
		credit, err := ParseAmount(rawCredit)
		if err != nil {
			return decimal.Zero, "invalid amount"
		}
		amount = amount.Add(credit.Abs())
	}
	if rawDebit != "" {
		debit, err := ParseAmount(rawDebit)
		if err != nil {
			return decimal.Zero, "invalid amount"
		}
		amount = amount.Sub(debit.Abs())
	}
	return amount, ""
}

func rowKey(txn models.ParsedTransaction) string {
	return strings.Join([]string{
		txn.Date.Format("2006-01-02"),
		models.NormalizeMerchantName(txn.Description),
		txn.FormattedAmount(),
		txn.Type,
	}, "|")
}

// fingerprint derives a stable external id for rows that carry none.
// Identical rows in one file get distinct ids through the occurrence count.
func fingerprint(key string, occurrence int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", key, occurrence)))
	return "csv:" + hex.EncodeToString(sum[:16])
}
