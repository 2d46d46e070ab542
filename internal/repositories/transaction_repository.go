package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByIDAndUser retrieves a transaction only if it belongs to the given
// user; rows owned by other users are reported as not found.
func (r *transactionRepository) GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// Update persists changes to an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(transaction *models.Transaction) error {
	result := r.db.Delete(&models.Transaction{}, "id = ? AND user_id = ?", transaction.ID, transaction.UserID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// GetWithFilters retrieves one page of the owner's transactions matching the
// filter, ordered by date descending with created_at descending as the
// tie-break. The returned total counts all matching rows before pagination,
// so page boundaries stay stable across re-reads with no intervening writes.
func (r *transactionRepository) GetWithFilters(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.applyFilters(userID, filters, true).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := r.applyFilters(userID, filters, true).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(filters.Offset()).Limit(filters.Limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// GetSummary computes income and expense totals in the store itself rather
// than by loading rows. The type filter is deliberately not applied: the
// summary always reports both sides of the ledger, whatever type restriction
// the caller may be using for its listing.
func (r *transactionRepository) GetSummary(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionSummary, error) {
	var row struct {
		TotalIncome  string
		TotalExpense string
		Count        int64
	}

	if err := r.applyFilters(userID, filters, false).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_income, "+
			"COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE 0 END), 0) AS total_expense, "+
			"COUNT(*) AS count",
			models.TransactionTypeIncome, models.TransactionTypeExpense).
		Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to get transaction summary: %w", err)
	}

	totalIncome, err := decimal.NewFromString(row.TotalIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to parse income total %q: %w", row.TotalIncome, err)
	}

	totalExpense, err := decimal.NewFromString(row.TotalExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expense total %q: %w", row.TotalExpense, err)
	}

	return &models.TransactionSummary{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		TransactionCount: row.Count,
	}, nil
}

// GetCategoryStats aggregates matching transactions per category for every
// category the user owns. The filter conditions live in the JOIN clause, not
// the WHERE clause, so categories with no matching transactions survive the
// LEFT JOIN and report zero totals. The category filter is not applied here;
// the result is always the full per-category breakdown.
func (r *transactionRepository) GetCategoryStats(userID uuid.UUID, filters models.TransactionFilters) ([]models.CategoryStat, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.color,
			COALESCE(SUM(t.amount), 0) AS total,
			COUNT(t.id) AS count
		FROM categories c
		LEFT JOIN transactions t
			ON t.category_id = c.id
			AND t.user_id = c.user_id`
	args := []interface{}{}

	if filters.StartDate != nil {
		query += ` AND t.date >= ?`
		args = append(args, *filters.StartDate)
	}
	if filters.EndDate != nil {
		query += ` AND t.date <= ?`
		args = append(args, *filters.EndDate)
	}
	if filters.Type != "" {
		query += ` AND t.type = ?`
		args = append(args, filters.Type)
	}

	query += `
		WHERE c.user_id = ?
		GROUP BY c.id, c.name, c.color
		ORDER BY total DESC, c.id ASC`
	args = append(args, userID)

	var rows []struct {
		ID    uuid.UUID
		Name  string
		Color string
		Total decimal.Decimal
		Count int64
	}
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}

	stats := make([]models.CategoryStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.CategoryStat{
			CategoryID: row.ID,
			Name:       row.Name,
			Color:      row.Color,
			Total:      row.Total,
			Count:      row.Count,
		})
	}

	return stats, nil
}

// applyFilters builds the scoped predicate shared by listing, counting and
// summarizing. withType controls whether the type restriction participates;
// the summary aggregation always passes false.
func (r *transactionRepository) applyFilters(userID uuid.UUID, filters models.TransactionFilters, withType bool) *gorm.DB {
	query := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if withType && filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}

	return query
}
