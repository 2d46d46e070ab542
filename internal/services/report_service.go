package services

import (
	"strconv"
	"time"

	"fintrack/internal/models"
)

const reportDateFormat = "2006-01-02"

// ReportService renders ledger data into tabular rows for export. It holds
// no state and touches no store; callers fetch the data and choose the
// encoding.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() ReportServiceInterface {
	return &ReportService{}
}

// TransactionRows renders transactions as spreadsheet rows, header first.
// The date column is calendar-only; the recording timestamp keeps its full
// precision in the last column. Amounts always carry two decimal places.
func (rs *ReportService) TransactionRows(transactions []models.Transaction) [][]string {
	rows := make([][]string, 0, len(transactions)+1)
	rows = append(rows, []string{"Date", "Description", "Type", "Amount", "Category", "Created At"})

	for i := range transactions {
		t := &transactions[i]
		rows = append(rows, []string{
			t.Date.UTC().Format(reportDateFormat),
			t.Description,
			models.CapitalizeTransactionType(t.Type),
			t.Amount.StringFixed(2),
			t.Category.Name,
			t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return rows
}

// SummaryRows renders a summary report as metric/value rows: the scalar
// aggregates first, then a separator and the per-category breakdown in the
// order the stats were computed.
func (rs *ReportService) SummaryRows(summary *models.TransactionSummary, stats []models.CategoryStat) [][]string {
	rows := [][]string{
		{"Metric", "Value"},
		{"Total Income", summary.TotalIncome.StringFixed(2)},
		{"Total Expense", summary.TotalExpense.StringFixed(2)},
		{"Balance", summary.Balance.StringFixed(2)},
		{"Transaction Count", strconv.FormatInt(summary.TransactionCount, 10)},
		{"", ""},
		{"Category Breakdown", ""},
	}

	for _, stat := range stats {
		rows = append(rows, []string{stat.Name, stat.Total.StringFixed(2)})
	}

	return rows
}
