package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// CreateTransactionRequest contains the data for a new ledger entry. Date is
// optional and accepts RFC 3339 or YYYY-MM-DD; when omitted the entry is
// dated now.
type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=255"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,transaction_type"`
	Date        string          `json:"date" validate:"omitempty"`
	CategoryID  string          `json:"categoryId" validate:"required,uuid"`
}

// UpdateTransactionRequest carries a partial transaction update. Nil fields
// are left untouched.
type UpdateTransactionRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty"`
	Type        *string          `json:"type" validate:"omitempty,transaction_type"`
	Date        *string          `json:"date" validate:"omitempty"`
	CategoryID  *string          `json:"categoryId" validate:"omitempty,uuid"`
}

// TransactionFilterQuery captures the listing filter as it arrives in the
// query string. Validation happens when it is parsed into a filter, not here.
type TransactionFilterQuery struct {
	StartDate  string `query:"startDate"`
	EndDate    string `query:"endDate"`
	Type       string `query:"type"`
	CategoryID string `query:"categoryId"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

// ToFilterInput converts the query parameters to raw filter input
func (q TransactionFilterQuery) ToFilterInput() models.FilterInput {
	return models.FilterInput{
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Type:       q.Type,
		CategoryID: q.CategoryID,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}

// Transaction Response DTOs

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        string            `json:"type"`
	Date        time.Time         `json:"date"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ListTransactionsResponse is one page of a filtered listing together with
// the total number of matching rows before pagination
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

// SummaryResponse carries the scalar aggregates of a filtered ledger slice
type SummaryResponse struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int64           `json:"transactionCount"`
}

// ToTransactionResponse converts a transaction model to its API representation
func ToTransactionResponse(transaction *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID.String(),
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Date:        transaction.Date,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}

	if transaction.Category.ID != uuid.Nil {
		category := ToCategoryResponse(&transaction.Category)
		response.Category = &category
	}

	return response
}

// ToListTransactionsResponse converts one page of transactions
func ToListTransactionsResponse(page *models.TransactionPage) ListTransactionsResponse {
	transactions := make([]TransactionResponse, 0, len(page.Transactions))
	for i := range page.Transactions {
		transactions = append(transactions, ToTransactionResponse(&page.Transactions[i]))
	}

	return ListTransactionsResponse{
		Transactions: transactions,
		Total:        page.Total,
		Page:         page.Page,
		Limit:        page.Limit,
	}
}

// ToSummaryResponse converts a transaction summary
func ToSummaryResponse(summary *models.TransactionSummary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      summary.TotalIncome,
		TotalExpense:     summary.TotalExpense,
		Balance:          summary.Balance,
		TransactionCount: summary.TransactionCount,
	}
}
