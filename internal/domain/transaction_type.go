package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TransactionType int

const (
	TransactionTypeDebit       TransactionType = 1
	TransactionTypeBankSlip    TransactionType = 2
	TransactionTypeFinancing   TransactionType = 3
	TransactionTypeCredit      TransactionType = 4
	TransactionTypeLoanReceipt TransactionType = 5
	TransactionTypeSales       TransactionType = 6
	TransactionTypeTedReceipt  TransactionType = 7
	TransactionTypeDocReceipt  TransactionType = 8
	TransactionTypeRent        TransactionType = 9
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeDebit:       "Debit",
	TransactionTypeBankSlip:    "BankSlip",
	TransactionTypeFinancing:   "Financing",
	TransactionTypeCredit:      "Credit",
	TransactionTypeLoanReceipt: "LoanReceipt",
	TransactionTypeSales:       "Sales",
	TransactionTypeTedReceipt:  "TedReceipt",
	TransactionTypeDocReceipt:  "DocReceipt",
	TransactionTypeRent:        "Rent",
}

const (
	SignIncome  = "+"
	SignExpense = "-"
)

func (t TransactionType) IsValid() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// IsExpense reports whether amounts of this type leave the store.
func (t TransactionType) IsExpense() bool {
	switch t {
	case TransactionTypeBankSlip, TransactionTypeFinancing, TransactionTypeRent:
		return true
	default:
		return false
	}
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", int(t))
}

// SignedAmount normalizes the raw amount to the sign implied by the type,
// ignoring whatever sign the raw value carried.
func (t TransactionType) SignedAmount(amount decimal.Decimal) decimal.Decimal {
	if t.IsExpense() {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// SignOf returns the display token for a stored amount. A zero expense has
// no negative form, so it renders as SignIncome.
func SignOf(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return SignExpense
	}
	return SignIncome
}
