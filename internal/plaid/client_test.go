package plaid

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgethero/internal/models"

	"github.com/plaid/plaid-go/v20/plaid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid sandbox", Config{ClientID: "id", Secret: "secret", Environment: "sandbox"}, nil},
		{"valid production", Config{ClientID: "id", Secret: "secret", Environment: "production"}, nil},
		{"missing client ID", Config{Secret: "secret", Environment: "sandbox"}, ErrMissingClientID},
		{"missing secret", Config{ClientID: "id", Environment: "sandbox"}, ErrMissingSecret},
		{"unknown environment", Config{ClientID: "id", Secret: "secret", Environment: "development"}, ErrInvalidEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(Config{ClientID: "id", Secret: "secret", Environment: "sandbox"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "BudgetHero", client.clientName)

	_, err = NewClient(Config{Environment: "sandbox"}, nil)
	assert.ErrorIs(t, err, ErrMissingClientID)
}

func TestGetTransactions_InvalidRange(t *testing.T) {
	client, err := NewClient(Config{ClientID: "id", Secret: "secret", Environment: "sandbox"}, nil)
	require.NoError(t, err)

	now := time.Now()
	_, err = client.GetTransactions(context.Background(), "access-token", now, now.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func plaidTransaction(id, name, merchant, date string, amount float64, pending bool) plaid.Transaction {
	var pt plaid.Transaction
	pt.SetTransactionId(id)
	pt.SetName(name)
	if merchant != "" {
		pt.SetMerchantName(merchant)
	}
	pt.SetDate(date)
	pt.SetAmount(amount)
	pt.SetPending(pending)
	return pt
}

func TestMapTransaction(t *testing.T) {
	t.Run("positive amount is an expense", func(t *testing.T) {
		txn, ok := mapTransaction(plaidTransaction("tx-1", "NETFLIX.COM", "Netflix", "2024-03-12", 15.49, false))
		require.True(t, ok)
		assert.Equal(t, models.TransactionTypeExpense, txn.Type)
		assert.Equal(t, "15.49", txn.FormattedAmount())
		assert.Equal(t, "NETFLIX.COM", txn.Description)
		assert.Equal(t, "Netflix", txn.MerchantName)
		assert.Equal(t, "plaid:tx-1", txn.ExternalID)
		assert.Equal(t, time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), txn.Date)
	})

	t.Run("negative amount is income", func(t *testing.T) {
		txn, ok := mapTransaction(plaidTransaction("tx-2", "ACME PAYROLL 000123456", "", "2024-03-15", -2000, false))
		require.True(t, ok)
		assert.Equal(t, models.TransactionTypeIncome, txn.Type)
		assert.Equal(t, "2000.00", txn.FormattedAmount())
		assert.Equal(t, "Acme Payroll", txn.MerchantName)
	})

	t.Run("pending is skipped", func(t *testing.T) {
		_, ok := mapTransaction(plaidTransaction("tx-3", "UBER", "", "2024-03-15", 12, true))
		assert.False(t, ok)
	})

	t.Run("bad date is skipped", func(t *testing.T) {
		_, ok := mapTransaction(plaidTransaction("tx-4", "UBER", "", "03/15/2024", 12, false))
		assert.False(t, ok)
	})
}

func TestCleanMerchantName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"STARBUCKS", "Starbucks"},
		{"whole foods market", "Whole Foods Market"},
		{"AMAZON.COM 123456789", "Amazon.Com"},
		{"ACME WIDGETS LLC", "Acme Widgets"},
		{"Globex Corp Inc", "Globex"},
		{"  spaced   out  ", "Spaced Out"},
		{"7-ELEVEN 12345", "7-Eleven 12345"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMerchantName(tt.input))
		})
	}
}

func TestWithRetry(t *testing.T) {
	fast := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("temporary")
			}
			return nil
		}, fast)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		calls := 0
		permanent := errors.New("invalid access token")
		err := WithRetry(context.Background(), func() error {
			calls++
			return &RetryableError{Err: permanent, Retryable: false}
		}, fast)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			return ErrRateLimit
		}, fast)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 3, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WithRetry(ctx, func() error { return errors.New("temporary") }, RetryOptions{MaxAttempts: 5, InitialDelay: time.Second})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
