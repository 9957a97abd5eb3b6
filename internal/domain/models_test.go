package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validCPF  = "12345678901"
	validCard = "1234****5678"
)

func validStore(t *testing.T) *Store {
	t.Helper()
	owner, err := NewStoreOwner("JOÃO MACEDO", validCPF)
	require.NoError(t, err)
	store, err := NewStore("BAR DO JOÃO", owner)
	require.NoError(t, err)
	return store
}

func TestNewStoreOwner_Valid(t *testing.T) {
	owner, err := NewStoreOwner("JOÃO MACEDO", validCPF)

	require.NoError(t, err)
	assert.NotEmpty(t, owner.ID)
	assert.Equal(t, "JOÃO MACEDO", owner.Name)
	assert.Equal(t, validCPF, owner.CPF)
	assert.False(t, owner.CreatedAt.IsZero())
}

func TestNewStoreOwner_NameRules(t *testing.T) {
	tests := []struct {
		name string
		rule string
	}{
		{name: "", rule: "required"},
		{name: "   ", rule: "required"},
		{name: strings.Repeat("A", 15), rule: "max_length"},
	}

	for _, tt := range tests {
		_, err := NewStoreOwner(tt.name, validCPF)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, EntityStoreOwner, verr.Entity)
		require.Len(t, verr.Errors, 1)
		assert.Equal(t, "name", verr.Errors[0].Field)
		assert.Equal(t, tt.rule, verr.Errors[0].Rule)
	}
}

func TestNewStoreOwner_NameLengthCountsCharacters(t *testing.T) {
	// 14 characters, 28 bytes
	_, err := NewStoreOwner(strings.Repeat("Ã", 14), validCPF)
	assert.NoError(t, err)
}

func TestNewStoreOwner_CPFRules(t *testing.T) {
	for _, cpf := range []string{"", "1234567890", "123456789012", "096.206.760-17", "0962067601A"} {
		_, err := NewStoreOwner("MARIA", cpf)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, cpf)
		assert.True(t, verr.HasField("cpf"), cpf)
	}
}

func TestNewStore(t *testing.T) {
	owner, err := NewStoreOwner("MARIA JOSEFINA", "55641815063")
	require.NoError(t, err)

	store, err := NewStore("LOJA DO Ó - MATRIZ", owner)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, store.OwnerID)

	_, err = NewStore(strings.Repeat("B", 20), owner)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("name"))

	_, err = NewStore("LOJA", nil)
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("owner"))
}

func TestNewTransaction_Valid(t *testing.T) {
	store := validStore(t)
	date := time.Date(2019, 3, 1, 15, 34, 53, 0, time.FixedZone("UTC-3", -3*3600))

	tx, err := NewTransaction(TransactionParams{
		Type:       TransactionTypeFinancing,
		Date:       date,
		Amount:     decimal.RequireFromString("-142.00"),
		CPF:        "09620676017",
		CardNumber: "4753****3153",
		LineHash:   "abc",
		Store:      store,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, store.ID, tx.StoreID)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-142")))
	assert.True(t, tx.Date.Equal(date))
}

func TestNewTransaction_FutureDate(t *testing.T) {
	store := validStore(t)
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	base := TransactionParams{
		Type:        TransactionTypeDebit,
		Amount:      decimal.NewFromInt(10),
		CPF:         validCPF,
		CardNumber:  validCard,
		LineHash:    "h",
		Store:       store,
		ProcessedAt: now,
	}

	withinSkew := base
	withinSkew.Date = now.Add(23 * time.Hour)
	_, err := NewTransaction(withinSkew)
	assert.NoError(t, err)

	tooFar := base
	tooFar.Date = now.Add(10 * 24 * time.Hour)
	_, err = NewTransaction(tooFar)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("date"))
}

func TestNewTransaction_SignMustMatchType(t *testing.T) {
	store := validStore(t)
	params := TransactionParams{
		Type:       TransactionTypeRent,
		Date:       time.Now().Add(-time.Hour),
		Amount:     decimal.NewFromInt(50),
		CPF:        validCPF,
		CardNumber: validCard,
		LineHash:   "h",
		Store:      store,
	}

	_, err := NewTransaction(params)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("amount"))

	params.Type = TransactionTypeSales
	params.Amount = decimal.NewFromInt(-50)
	_, err = NewTransaction(params)
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasField("amount"))

	params.Amount = decimal.Zero
	_, err = NewTransaction(params)
	assert.NoError(t, err)
}

func TestNewTransaction_CollectsAllFieldErrors(t *testing.T) {
	_, err := NewTransaction(TransactionParams{
		Type:       TransactionType(0),
		CPF:        "1",
		CardNumber: "12345",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"type", "date", "cpf", "card_number", "line_hash", "store"} {
		assert.True(t, verr.HasField(field), field)
	}
	assert.Contains(t, verr.Error(), "invalid transaction")
}
