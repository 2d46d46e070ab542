package repositories

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository
// operations. Every read is scoped to an owner; GetByIDAndUser is the
// ownership guard used before any write that references a category.
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByIDAndUser(id, userID uuid.UUID) (*models.Category, error)
	GetByNameAndUser(name string, userID uuid.UUID) (*models.Category, error)
	GetByUser(userID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	DeleteIfUnreferenced(category *models.Category) error
}

// TransactionRepositoryInterface defines the contract for transaction
// repository operations, including the filtered listing and the native SQL
// aggregations behind summaries and per-category stats.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByIDAndUser(id, userID uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(transaction *models.Transaction) error
	GetWithFilters(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetSummary(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionSummary, error)
	GetCategoryStats(userID uuid.UUID, filters models.TransactionFilters) ([]models.CategoryStat, error)
}
