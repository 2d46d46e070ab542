package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has referencing transactions")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByIDAndUser retrieves a category only if it belongs to the given user.
// A category that exists but is owned by someone else yields the same
// ErrCategoryNotFound as a category that does not exist at all.
func (r *categoryRepository) GetByIDAndUser(id, userID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByNameAndUser retrieves a category by its per-user unique name
func (r *categoryRepository) GetByNameAndUser(name string, userID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// GetByUser retrieves all categories for a user ordered by name
func (r *categoryRepository) GetByUser(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// Update persists changes to an existing category
func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// DeleteIfUnreferenced removes a category unless any transaction still
// references it. The reference check and the delete run in one store
// transaction so the caller sees them as a single atomic step.
func (r *categoryRepository) DeleteIfUnreferenced(category *models.Category) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Transaction{}).
			Where("category_id = ?", category.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count referencing transactions: %w", err)
		}

		if count > 0 {
			return ErrCategoryInUse
		}

		result := tx.Delete(&models.Category{}, "id = ? AND user_id = ?", category.ID, category.UserID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
