package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrDuplicateCategoryName = errors.New("category with this name already exists")
)

// CategoryService handles category business logic. All reads and writes are
// scoped to the owning user; a category belonging to someone else behaves as
// if it did not exist.
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// CreateCategory creates a new category for the user. Names are unique per
// owner; a clash yields ErrDuplicateCategoryName.
func (s *CategoryService) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	if err := s.checkNameAvailable(req.Name, userID, uuid.Nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		UserID:      userID,
	}
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created",
		"category_id", category.ID,
		"user_id", userID)

	return category, nil
}

// GetCategories retrieves all of the user's categories ordered by name
func (s *CategoryService) GetCategories(userID uuid.UUID) ([]models.Category, error) {
	return s.categoryRepo.GetByUser(userID)
}

// GetCategory retrieves a single category owned by the user
func (s *CategoryService) GetCategory(id, userID uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByIDAndUser(id, userID)
}

// UpdateCategory applies a partial update to a category owned by the user.
// A rename must not collide with another of the user's categories.
func (s *CategoryService) UpdateCategory(id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if err := s.checkNameAvailable(*req.Name, userID, category.ID); err != nil {
			return nil, err
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category owned by the user. A category still
// referenced by transactions is never deleted; the repository reports
// ErrCategoryInUse and the transactions keep their history.
func (s *CategoryService) DeleteCategory(id, userID uuid.UUID) error {
	category, err := s.categoryRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteIfUnreferenced(category); err != nil {
		return err
	}

	s.logger.Info("category deleted",
		"category_id", id,
		"user_id", userID)

	return nil
}

// checkNameAvailable verifies no other category of the user carries the
// name. excludeID skips the category being renamed.
func (s *CategoryService) checkNameAvailable(name string, userID, excludeID uuid.UUID) error {
	existing, err := s.categoryRepo.GetByNameAndUser(name, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check category name: %w", err)
	}

	if existing.ID != excludeID {
		return ErrDuplicateCategoryName
	}

	return nil
}
