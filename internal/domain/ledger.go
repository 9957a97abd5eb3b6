package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StoreLedger is a store read back with its owner's name and every
// transaction recorded against it.
type StoreLedger struct {
	Store        Store
	OwnerName    string
	Transactions []Transaction
}

// Balance sums stored amounts. The stored sign is authoritative.
func (l StoreLedger) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range l.Transactions {
		balance = balance.Add(tx.Amount)
	}
	return balance
}

type StoresQuery struct {
	Page     int
	PageSize int
	CPF      string
}

// NormalizeCPF strips the usual CPF punctuation (dots, dashes, spaces).
func NormalizeCPF(cpf string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(strings.TrimSpace(cpf))
}

type TransactionView struct {
	Type       string          `json:"type"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Sign       string          `json:"sign"`
	CPF        string          `json:"cpf"`
	CardNumber string          `json:"card_number"`
}

type StoreView struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	OwnerName    string            `json:"owner_name"`
	Balance      decimal.Decimal   `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
}

type StoresPage struct {
	Stores          []StoreView `json:"stores"`
	Page            int         `json:"page"`
	PageSize        int         `json:"page_size"`
	TotalItems      int         `json:"total_items"`
	TotalPages      int         `json:"total_pages"`
	HasPreviousPage bool        `json:"has_previous_page"`
	HasNextPage     bool        `json:"has_next_page"`
}

func NewStoreView(l StoreLedger) StoreView {
	txs := make([]TransactionView, 0, len(l.Transactions))
	for _, tx := range l.Transactions {
		txs = append(txs, TransactionView{
			Type:       tx.Type.String(),
			Date:       tx.Date,
			Amount:     tx.Amount,
			Sign:       SignOf(tx.Amount),
			CPF:        tx.CPF,
			CardNumber: tx.CardNumber,
		})
	}

	return StoreView{
		ID:           l.Store.ID,
		Name:         l.Store.Name,
		OwnerName:    l.OwnerName,
		Balance:      l.Balance(),
		Transactions: txs,
	}
}

func NewStoresPage(items []StoreLedger, page, pageSize, totalItems int) *StoresPage {
	stores := make([]StoreView, 0, len(items))
	for _, item := range items {
		stores = append(stores, NewStoreView(item))
	}

	totalPages := TotalPages(totalItems, pageSize)
	return &StoresPage{
		Stores:          stores,
		Page:            page,
		PageSize:        pageSize,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasPreviousPage: page > 1,
		HasNextPage:     page < totalPages,
	}
}

func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// PageBounds returns the half-open [start, end) window of a page over total
// items. Pages past the end, however large, give an empty window at total.
func PageBounds(page, pageSize, total int) (int, int) {
	if page < 1 || pageSize < 1 || total <= 0 {
		return max(total, 0), max(total, 0)
	}
	if page-1 > (total-1)/pageSize {
		return total, total
	}
	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	return start, end
}
