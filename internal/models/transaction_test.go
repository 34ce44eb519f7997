package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     bool
		errMsg      string
	}{
		{
			name: "valid expense transaction",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(4.50),
				Description: "Coffee",
				Source:      TransactionSourceManual,
			},
			wantErr: false,
		},
		{
			name: "valid imported income transaction",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        TransactionTypeIncome,
				Amount:      decimal.NewFromFloat(2000.00),
				Description: "Payroll",
				Source:      TransactionSourceImported,
			},
			wantErr: false,
		},
		{
			name: "zero amount is allowed",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        TransactionTypeIncome,
				Amount:      decimal.Zero,
				Description: "Adjustment",
				Source:      TransactionSourceManual,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			transaction: Transaction{
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(10),
				Description: "Lunch",
				Source:      TransactionSourceManual,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        "debit",
				Amount:      decimal.NewFromFloat(10),
				Description: "Lunch",
				Source:      TransactionSourceManual,
			},
			wantErr: true,
			errMsg:  ErrInvalidTransactionType.Error(),
		},
		{
			name: "invalid source",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(10),
				Description: "Lunch",
				Source:      "scraped",
			},
			wantErr: true,
			errMsg:  ErrInvalidTransactionSource.Error(),
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:      validUserID,
				Type:        TransactionTypeExpense,
				Amount:      decimal.NewFromFloat(-10),
				Description: "Lunch",
				Source:      TransactionSourceManual,
			},
			wantErr: true,
			errMsg:  ErrInvalidAmount.Error(),
		},
		{
			name: "missing description",
			transaction: Transaction{
				UserID: validUserID,
				Type:   TransactionTypeExpense,
				Amount: decimal.NewFromFloat(10),
				Source: TransactionSourceManual,
			},
			wantErr: true,
			errMsg:  "transaction description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BeforeCreate(t *testing.T) {
	txn := &Transaction{
		UserID:      uuid.New(),
		Type:        TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(12.99),
		Description: "NETFLIX.COM",
	}

	err := txn.BeforeCreate(nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.Equal(t, TransactionSourceManual, txn.Source)
	assert.Equal(t, RecurringSourceNone, txn.RecurringSource)
	assert.Equal(t, 1, txn.Version)
	assert.False(t, txn.CreatedAt.IsZero())
	assert.False(t, txn.UpdatedAt.IsZero())
}

func TestTransaction_SignedAmount(t *testing.T) {
	expense := Transaction{Type: TransactionTypeExpense, Amount: decimal.RequireFromString("4.50")}
	income := Transaction{Type: TransactionTypeIncome, Amount: decimal.RequireFromString("2000.00")}

	assert.True(t, expense.SignedAmount().Equal(decimal.RequireFromString("-4.50")))
	assert.True(t, income.SignedAmount().Equal(decimal.RequireFromString("2000")))
}

func TestTransaction_MatchText(t *testing.T) {
	assert.Equal(t, "Netflix", (&Transaction{MerchantName: "Netflix", Description: "NETFLIX.COM 866"}).MatchText())
	assert.Equal(t, "NETFLIX.COM 866", (&Transaction{Description: "NETFLIX.COM 866"}).MatchText())
}

func TestTransaction_ApplyClassification(t *testing.T) {
	txn := &Transaction{}
	txn.ApplyClassification(ClassificationResult{
		Category:   CategoryGroceries,
		Confidence: ConfidenceExactMerchantMatch,
		Source:     ClassificationSourceExactMerchantMatch,
	})

	require.NotNil(t, txn.Category)
	assert.Equal(t, CategoryGroceries, txn.CategoryName())
	assert.Equal(t, 1.0, txn.CategoryConfidence)
	assert.False(t, txn.HasCategoryOverride())

	txn.ApplyClassification(ClassificationResult{
		Category:   CategoryShopping,
		Confidence: ConfidenceUserOverride,
		Source:     ClassificationSourceUserOverride,
	})
	assert.True(t, txn.HasCategoryOverride())
}

func TestTransaction_ApplyRecurringMatch(t *testing.T) {
	merchantID := uuid.New()

	tests := []struct {
		name       string
		match      RecurringMatch
		wantLinked bool
	}{
		{
			name: "match with merchant id",
			match: RecurringMatch{
				IsRecurring:       true,
				Confidence:        0.9,
				Source:            RecurringSourceMerchantMatch,
				Frequency:         FrequencyMonthly,
				MatchedMerchantID: merchantID.String(),
			},
			wantLinked: true,
		},
		{
			name:       "no match clears link",
			match:      NoRecurringMatch(),
			wantLinked: false,
		},
		{
			name: "unparseable merchant id is ignored",
			match: RecurringMatch{
				IsRecurring:       true,
				Confidence:        1.0,
				Source:            RecurringSourceLinkedTransaction,
				MatchedMerchantID: "not-a-uuid",
			},
			wantLinked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := uuid.New()
			txn := &Transaction{RecurringMerchantID: &existing}
			txn.ApplyRecurringMatch(tt.match)

			assert.Equal(t, tt.match.IsRecurring, txn.IsRecurring)
			assert.Equal(t, tt.match.Source, txn.RecurringSource)
			if tt.wantLinked {
				require.NotNil(t, txn.RecurringMerchantID)
				assert.Equal(t, merchantID, *txn.RecurringMerchantID)
			} else {
				assert.Nil(t, txn.RecurringMerchantID)
			}
		})
	}
}

func TestTransaction_OptimisticLocking(t *testing.T) {
	txn := &Transaction{Version: 3}

	assert.False(t, txn.HasVersionConflict(3))
	assert.True(t, txn.HasVersionConflict(2))

	assert.ErrorIs(t, txn.CheckAndUpdateVersion(2), ErrOptimisticLockConflict)
	require.NoError(t, txn.CheckAndUpdateVersion(3))
	assert.Equal(t, 4, txn.Version)
}

func TestTransactionTypeForAmount(t *testing.T) {
	assert.Equal(t, TransactionTypeExpense, TransactionTypeForAmount(decimal.NewFromFloat(-0.01)))
	assert.Equal(t, TransactionTypeIncome, TransactionTypeForAmount(decimal.Zero))
	assert.Equal(t, TransactionTypeIncome, TransactionTypeForAmount(decimal.NewFromInt(10)))
}
