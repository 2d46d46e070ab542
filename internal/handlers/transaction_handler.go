package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new ledger entry
// @Summary Create transaction
// @Description Record a new income or expense entry in the authenticated user's ledger
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "Category not found - CATEGORY_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// ListTransactions returns one page of the user's filtered ledger
// @Summary List transactions
// @Description Retrieve a filtered, paginated page of the authenticated user's transactions, newest first
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Inclusive start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (RFC 3339 or YYYY-MM-DD)"
// @Param type query string false "Transaction type (income or expense)"
// @Param categoryId query string false "Category ID"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions page"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.parseFilters(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	page, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

// GetSummary returns the scalar aggregates of the filtered ledger
// @Summary Transaction summary
// @Description Compute total income, total expense, balance and count over the filtered ledger. The type filter is ignored; both sides are always reported.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Inclusive start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (RFC 3339 or YYYY-MM-DD)"
// @Param categoryId query string false "Category ID"
// @Success 200 {object} dto.SummaryResponse "Summary"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.parseFilters(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	summary, err := h.transactionService.GetSummary(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// GetCategoryStats returns the per-category breakdown of the filtered ledger
// @Summary Category statistics
// @Description Aggregate the filtered ledger per category. Every category appears, including those with no matching transactions.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "Inclusive start date (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive end date (RFC 3339 or YYYY-MM-DD)"
// @Param type query string false "Transaction type (income or expense)"
// @Success 200 {array} dto.CategoryStatResponse "Per-category stats"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetCategoryStats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	filters, err := h.parseFilters(c)
	if err != nil {
		return sendValidationError(c, err)
	}

	stats, err := h.transactionService.GetCategoryStats(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCategoryStatResponses(stats))
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction
// @Description Retrieve one of the authenticated user's transactions by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	transaction, err := h.transactionService.GetTransaction(id, userID)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// UpdateTransaction applies a partial update to a transaction
// @Summary Update transaction
// @Description Update fields of one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001 or CATEGORY_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(id, userID, &req)
	if err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one of the authenticated user's transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse "Transaction deleted"
// @Failure 404 {object} errors.ErrorResponse "Not found - TRANSACTION_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.TransactionNotFound)
	}

	if err := h.transactionService.DeleteTransaction(id, userID); err != nil {
		return h.mapTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// parseFilters reads the filter query parameters and validates them
func (h *TransactionHandler) parseFilters(c echo.Context) (models.TransactionFilters, error) {
	var query dto.TransactionFilterQuery
	if err := c.Bind(&query); err != nil {
		return models.TransactionFilters{}, err
	}
	return models.ParseTransactionFilters(query.ToFilterInput())
}

// mapTransactionError translates service and repository sentinels into the
// standardized error responses
func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case isValidationError(err):
		return sendValidationError(c, err)
	default:
		return SendSystemError(c, err)
	}
}
