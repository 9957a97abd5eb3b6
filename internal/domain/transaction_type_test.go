package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsExpense(t *testing.T) {
	expenses := map[TransactionType]bool{
		TransactionTypeBankSlip:  true,
		TransactionTypeFinancing: true,
		TransactionTypeRent:      true,
	}

	for code := 1; code <= 9; code++ {
		tt := TransactionType(code)
		assert.True(t, tt.IsValid(), tt.String())
		assert.Equal(t, expenses[tt], tt.IsExpense(), tt.String())
	}

	assert.False(t, TransactionType(0).IsValid())
	assert.False(t, TransactionType(10).IsValid())
	assert.Equal(t, "TransactionType(10)", TransactionType(10).String())
}

func TestTransactionType_SignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("142.00")

	for code := 1; code <= 9; code++ {
		tt := TransactionType(code)
		for _, raw := range []decimal.Decimal{amount, amount.Neg()} {
			signed := tt.SignedAmount(raw)
			assert.Equal(t, tt.IsExpense(), signed.IsNegative(), tt.String())
			assert.True(t, signed.Abs().Equal(amount))
			assert.Equal(t, tt.IsExpense(), SignOf(signed) == SignExpense)
		}
	}
}

func TestSignOf_Zero(t *testing.T) {
	assert.Equal(t, SignIncome, SignOf(decimal.Zero))
	for code := 1; code <= 9; code++ {
		tt := TransactionType(code)
		signed := tt.SignedAmount(decimal.Zero)
		assert.True(t, signed.IsZero(), tt.String())
		assert.Equal(t, SignIncome, SignOf(signed), tt.String())
	}
}
