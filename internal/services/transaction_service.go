package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// TransactionService handles ledger business logic. Every operation is
// scoped to the calling owner, and any category reference is resolved
// through the ownership guard before it is written.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records a new ledger entry. The referenced category must
// exist and belong to the user; a missing or foreign category reads as not
// found. An omitted date defaults to the time of recording.
func (s *TransactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	category, err := s.resolveOwnedCategory(req.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		UserID:      userID,
		CategoryID:  category.ID,
	}

	if req.Date != "" {
		date, err := models.ParseTransactionDate(req.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}
	transaction.Category = *category

	s.recordLedgerWrite("create", transaction.Type)
	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"type", transaction.Type)

	return transaction, nil
}

// GetTransaction retrieves a single transaction owned by the user
func (s *TransactionService) GetTransaction(id, userID uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByIDAndUser(id, userID)
}

// UpdateTransaction applies a partial update to a transaction owned by the
// user. A new category reference goes through the same ownership guard as on
// creation.
func (s *TransactionService) UpdateTransaction(id, userID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Date != nil {
		date, err := models.ParseTransactionDate(*req.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = date
	}
	if req.CategoryID != nil {
		category, err := s.resolveOwnedCategory(*req.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = category.ID
		transaction.Category = *category
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}

	s.recordLedgerWrite("update", transaction.Type)

	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the user
func (s *TransactionService) DeleteTransaction(id, userID uuid.UUID) error {
	if err := s.transactionRepo.Delete(&models.Transaction{ID: id, UserID: userID}); err != nil {
		return err
	}

	s.recordLedgerWrite("delete", "")
	s.logger.Info("transaction deleted",
		"transaction_id", id,
		"user_id", userID)

	return nil
}

// ListTransactions returns one page of the user's ledger matching the filter
func (s *TransactionService) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionPage, error) {
	transactions, total, err := s.transactionRepo.GetWithFilters(userID, filters)
	if err != nil {
		return nil, err
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Total:        total,
		Page:         filters.Page,
		Limit:        filters.Limit,
	}, nil
}

// GetSummary returns the income, expense and balance aggregates for the
// user's ledger under the filter's date and category bounds. The type filter
// never narrows a summary; both sides of the ledger are always reported.
func (s *TransactionService) GetSummary(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionSummary, error) {
	start := time.Now()

	summary, err := s.transactionRepo.GetSummary(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	s.recordAggregation("summary", time.Since(start))

	return summary, nil
}

// GetCategoryStats returns the per-category breakdown of the user's ledger
// under the filter's date and type bounds. Every category the user owns
// appears, including those with no matching transactions.
func (s *TransactionService) GetCategoryStats(userID uuid.UUID, filters models.TransactionFilters) ([]models.CategoryStat, error) {
	start := time.Now()

	stats, err := s.transactionRepo.GetCategoryStats(userID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}

	s.recordAggregation("category_stats", time.Since(start))

	return stats, nil
}

// resolveOwnedCategory parses and resolves a category reference against the
// user's own categories. The repository reports a foreign category as not
// found, so ownership never leaks through error responses.
func (s *TransactionService) resolveOwnedCategory(rawID string, userID uuid.UUID) (*models.Category, error) {
	categoryID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID", models.ErrValidation)
	}

	return s.categoryRepo.GetByIDAndUser(categoryID, userID)
}

func (s *TransactionService) recordLedgerWrite(operation, transactionType string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("ledger_write", map[string]string{
		"operation": operation,
		"type":      transactionType,
	})
}

func (s *TransactionService) recordAggregation(kind string, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("aggregation_request", map[string]string{"kind": kind})
	s.metrics.RecordProcessingTime("aggregation."+kind, duration)
}
