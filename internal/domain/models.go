package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxFutureSkew bounds how far ahead of processing time a transaction may be dated.
const MaxFutureSkew = 24 * time.Hour

type StoreOwner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStoreOwner(name, cpf string) (*StoreOwner, error) {
	v := newValidator(EntityStoreOwner)
	v.requiredMaxLength("name", name, MaxOwnerNameLength)
	v.cpf("cpf", cpf)
	if err := v.err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &StoreOwner{
		ID:        uuid.New().String(),
		Name:      name,
		CPF:       cpf,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewStore(name string, owner *StoreOwner) (*Store, error) {
	v := newValidator(EntityStore)
	v.requiredMaxLength("name", name, MaxStoreNameLength)
	if owner == nil || owner.ID == "" {
		v.add("owner", "required", "owner is required")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Store{
		ID:        uuid.New().String(),
		Name:      name,
		OwnerID:   owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

type Transaction struct {
	ID         string          `json:"id"`
	Type       TransactionType `json:"type"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	CPF        string          `json:"cpf"`
	CardNumber string          `json:"card_number"`
	LineHash   string          `json:"line_hash"`
	StoreID    string          `json:"store_id"`
	CreatedAt  time.Time       `json:"created_at"`
}

type TransactionParams struct {
	Type       TransactionType
	Date       time.Time
	Amount     decimal.Decimal
	CPF        string
	CardNumber string
	LineHash   string
	Store      *Store
	// ProcessedAt anchors the future-date rule; zero means now.
	ProcessedAt time.Time
}

// NewTransaction validates an already signed amount. The sign must agree
// with the type classification.
func NewTransaction(p TransactionParams) (*Transaction, error) {
	processedAt := p.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	v := newValidator(EntityTransaction)
	if !p.Type.IsValid() {
		v.add("type", "enum", "type must be between 1 and 9")
	}
	if p.Date.IsZero() {
		v.add("date", "required", "date is required")
	} else if p.Date.After(processedAt.Add(MaxFutureSkew)) {
		v.add("date", "not_future", "date cannot be more than 1 day in the future")
	}
	if p.Type.IsValid() {
		if p.Type.IsExpense() && p.Amount.IsPositive() {
			v.add("amount", "sign", "expense amounts must not be positive")
		}
		if !p.Type.IsExpense() && p.Amount.IsNegative() {
			v.add("amount", "sign", "income amounts must not be negative")
		}
	}
	v.cpf("cpf", p.CPF)
	v.cardNumber("card_number", p.CardNumber)
	if p.LineHash == "" {
		v.add("line_hash", "required", "line_hash is required")
	}
	if p.Store == nil || p.Store.ID == "" {
		v.add("store", "required", "store is required")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	return &Transaction{
		ID:         uuid.New().String(),
		Type:       p.Type,
		Date:       p.Date,
		Amount:     p.Amount,
		CPF:        p.CPF,
		CardNumber: p.CardNumber,
		LineHash:   p.LineHash,
		StoreID:    p.Store.ID,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
