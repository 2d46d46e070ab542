package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReportService_TransactionRows(t *testing.T) {
	service := NewReportService()

	transactions := []models.Transaction{
		{
			Description: "Weekly shop",
			Amount:      decimal.RequireFromString("42.5"),
			Type:        models.TransactionTypeExpense,
			Date:        time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC),
			Category:    models.Category{Name: "Groceries"},
			CreatedAt:   time.Date(2024, 6, 15, 18, 31, 2, 0, time.UTC),
		},
		{
			Description: "June salary",
			Amount:      decimal.RequireFromString("3200"),
			Type:        models.TransactionTypeIncome,
			Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Category:    models.Category{Name: "Salary"},
			CreatedAt:   time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	rows := service.TransactionRows(transactions)

	expected := [][]string{
		{"Date", "Description", "Type", "Amount", "Category", "Created At"},
		{"2024-06-15", "Weekly shop", "Expense", "42.50", "Groceries", "2024-06-15T18:31:02Z"},
		{"2024-06-01", "June salary", "Income", "3200.00", "Salary", "2024-06-01T09:00:00Z"},
	}
	assert.Equal(t, expected, rows)
}

func TestReportService_TransactionRows_Empty(t *testing.T) {
	service := NewReportService()

	rows := service.TransactionRows(nil)
	assert.Equal(t, [][]string{
		{"Date", "Description", "Type", "Amount", "Category", "Created At"},
	}, rows)
}

func TestReportService_SummaryRows(t *testing.T) {
	service := NewReportService()

	summary := &models.TransactionSummary{
		TotalIncome:      decimal.RequireFromString("3200"),
		TotalExpense:     decimal.RequireFromString("1250.75"),
		Balance:          decimal.RequireFromString("1949.25"),
		TransactionCount: 14,
	}
	stats := []models.CategoryStat{
		{Name: "Salary", Total: decimal.RequireFromString("3200")},
		{Name: "Groceries", Total: decimal.RequireFromString("850.5")},
		{Name: "Unused", Total: decimal.Zero},
	}

	rows := service.SummaryRows(summary, stats)

	expected := [][]string{
		{"Metric", "Value"},
		{"Total Income", "3200.00"},
		{"Total Expense", "1250.75"},
		{"Balance", "1949.25"},
		{"Transaction Count", "14"},
		{"", ""},
		{"Category Breakdown", ""},
		{"Salary", "3200.00"},
		{"Groceries", "850.50"},
		{"Unused", "0.00"},
	}
	assert.Equal(t, expected, rows)
}
