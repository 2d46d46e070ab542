package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionSummary is the scalar aggregate of a filtered ledger slice.
// Balance is always TotalIncome - TotalExpense, computed from the same two
// sums so the identity holds exactly. Derived, never stored.
type TransactionSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transactionCount"`
}

// CategoryStat is the per-category aggregate for one owner. Every category
// the owner has appears exactly once; categories with no matching
// transactions report a zero total and count.
type CategoryStat struct {
	CategoryID uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
}

// TransactionPage is one ordered page of a filtered listing plus the count
// of all rows matching the filter before pagination.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
}
