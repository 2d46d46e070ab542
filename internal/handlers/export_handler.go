package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// ExportHandler streams ledger reports as CSV downloads
type ExportHandler struct {
	transactionService services.TransactionServiceInterface
	reportService      services.ReportServiceInterface
	metrics            services.MetricsRecorderInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(
	transactionService services.TransactionServiceInterface,
	reportService services.ReportServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ExportHandler {
	return &ExportHandler{
		transactionService: transactionService,
		reportService:      reportService,
		metrics:            metrics,
	}
}

// ExportTransactions streams the filtered ledger as a CSV file
// @Summary Export transactions
// @Description Download the filtered ledger as a CSV file, newest entry first
// @Tags Export
// @Security BearerAuth
// @Produce text/csv
// @Param startDate query string false "Inclusive start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (RFC 3339 or YYYY-MM-DD)"
// @Param type query string false "Transaction type (income or expense)"
// @Param categoryId query string false "Category ID"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "No matching transactions - EXPORT_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /export/transactions [get]
func (h *ExportHandler) ExportTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.parseExportFilters(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	page, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	if len(page.Transactions) == 0 {
		return SendError(c, apierrors.ExportNoData)
	}

	rows := h.reportService.TransactionRows(page.Transactions)
	h.recordExport("transactions")

	return h.writeCSV(c, "transactions", rows)
}

// ExportSummary streams the summary report as a CSV file
// @Summary Export summary
// @Description Download the summary report with per-category breakdown as a CSV file
// @Tags Export
// @Security BearerAuth
// @Produce text/csv
// @Param startDate query string false "Inclusive start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /export/summary [get]
func (h *ExportHandler) ExportSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.parseExportFilters(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	summary, err := h.transactionService.GetSummary(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	stats, err := h.transactionService.GetCategoryStats(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	rows := h.reportService.SummaryRows(summary, stats)
	h.recordExport("summary")

	return h.writeCSV(c, "summary", rows)
}

// parseExportFilters validates the filter query and widens the page size so
// the export covers the whole filtered ledger, not a single page.
func (h *ExportHandler) parseExportFilters(c echo.Context) (models.TransactionFilters, error) {
	var query struct {
		StartDate  string `query:"startDate"`
		EndDate    string `query:"endDate"`
		Type       string `query:"type"`
		CategoryID string `query:"categoryId"`
	}
	if err := c.Bind(&query); err != nil {
		return models.TransactionFilters{}, err
	}

	filters, err := models.ParseTransactionFilters(models.FilterInput{
		StartDate:  query.StartDate,
		EndDate:    query.EndDate,
		Type:       query.Type,
		CategoryID: query.CategoryID,
	})
	if err != nil {
		return models.TransactionFilters{}, err
	}

	filters.Page = 1
	filters.Limit = exportRowLimit
	return filters, nil
}

// exportRowLimit bounds a single export download
const exportRowLimit = 100000

func (h *ExportHandler) writeCSV(c echo.Context, name string, rows [][]string) error {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("2006-01-02"))

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

func (h *ExportHandler) recordExport(kind string) {
	if h.metrics == nil {
		return
	}
	h.metrics.IncrementCounter("export", map[string]string{"kind": kind})
}
