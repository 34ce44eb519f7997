package importer

import (
	"strings"
	"testing"
	"time"

	"budgethero/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV_ISODateExpense(t *testing.T) {
	input := "date,description,amount\n2024-03-01,Coffee,-4.50\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	txn := result.Transactions[0]
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.Equal(t, "Coffee", txn.Description)
	assert.Equal(t, "4.50", txn.FormattedAmount())
	assert.Equal(t, models.TransactionTypeExpense, txn.Type)
	assert.Equal(t, 2, txn.Line)
	assert.True(t, strings.HasPrefix(txn.ExternalID, "csv:"))
}

func TestParseCSV_MonthFirstDateWithCurrency(t *testing.T) {
	input := "Transaction Date,Description,Amount\n03/15/2024,Payroll,\"$2,000.00\"\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	txn := result.Transactions[0]
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	assert.Equal(t, "2000.00", txn.FormattedAmount())
	assert.Equal(t, models.TransactionTypeIncome, txn.Type)
}

func TestParseCSV_SkipsRowsMissingAmount(t *testing.T) {
	input := "date,description,amount\n2024-03-01,Coffee,\n2024-03-02,Lunch,-12.00\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Lunch", result.Transactions[0].Description)
	assert.Equal(t, []RowError{{Line: 2, Reason: "missing amount"}}, result.Skipped)
	assert.Equal(t, 2, result.TotalRows)
}

func TestParseCSV_NoValidTransactions(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"only rows missing amount", "date,description,amount\n2024-03-01,Coffee,\n2024-03-02,Tea,\n"},
		{"no amount column", "date,description\n2024-03-01,Coffee\n"},
		{"header only", "date,description,amount\n"},
		{"bad dates and amounts", "date,description,amount\nyesterday,Coffee,1\n2024-03-01,Tea,abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrNoValidTransactions)
		})
	}
}

func TestParseCSV_EmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseCSV_HeaderPriorityAndFallbacks(t *testing.T) {
	input := "\ufeffPosted Date,Name,Memo,Transaction Amount,Category\n" +
		"2024-01-05,,NETFLIX.COM,(15.99),Entertainment\n" +
		"2024-01-06,Whole Foods,store 10,45.10,\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, "NETFLIX.COM", result.Transactions[0].Description)
	assert.Equal(t, "15.99", result.Transactions[0].FormattedAmount())
	assert.Equal(t, models.TransactionTypeExpense, result.Transactions[0].Type)
	assert.Equal(t, "Entertainment", result.Transactions[0].Category)

	assert.Equal(t, "Whole Foods", result.Transactions[1].Description)
	assert.Equal(t, models.TransactionTypeIncome, result.Transactions[1].Type)
	assert.Empty(t, result.Transactions[1].Category)
}

func TestParseCSV_DebitCreditColumns(t *testing.T) {
	input := "Date,Description,Debit,Credit\n" +
		"2024-02-01,Electric Co,82.10,\n" +
		"2024-02-02,Refund,,19.99\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, models.TransactionTypeExpense, result.Transactions[0].Type)
	assert.Equal(t, "82.10", result.Transactions[0].FormattedAmount())
	assert.Equal(t, models.TransactionTypeIncome, result.Transactions[1].Type)
	assert.Equal(t, "19.99", result.Transactions[1].FormattedAmount())
}

func TestParseCSV_DuplicateRowsGetDistinctIDs(t *testing.T) {
	input := "date,description,amount\n2024-03-01,Coffee,-4.50\n2024-03-01,Coffee,-4.50\n"

	first, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, first.Transactions, 2)
	assert.NotEqual(t, first.Transactions[0].ExternalID, first.Transactions[1].ExternalID)

	second, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, first.Transactions[0].ExternalID, second.Transactions[0].ExternalID)
	assert.Equal(t, first.Transactions[1].ExternalID, second.Transactions[1].ExternalID)
}

func TestParseCSV_MaxRows(t *testing.T) {
	input := "date,description,amount\n2024-03-01,A,1\n2024-03-02,B,2\n"

	_, err := ParseCSV(strings.NewReader(input), WithMaxRows(1))
	assert.ErrorIs(t, err, ErrTooManyRows)

	result, err := ParseCSV(strings.NewReader(input), WithMaxRows(2))
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 2)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), false},
		{"2024/3/7", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), false},
		{"2024.12.31", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"03/04/2024", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), false},
		{"3-4-2024", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), false},
		{"12/31/23", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"03/15/2024 10:22", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), false},
		{"31/12/2024", time.Time{}, true},
		{"02/30/2024", time.Time{}, true},
		{"March 3rd", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"-4.50", "-4.5", false},
		{"$2,000.00", "2000", false},
		{"(15.99)", "-15.99", false},
		{"($1,250.00)", "-1250", false},
		{" € 12 ", "12", false},
		{"-$3.10", "-3.1", false},
		{"", "", true},
		{"$", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
