package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Category Request DTOs

// CreateCategoryRequest contains the data for a new spending category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Color       string `json:"color" validate:"omitempty,hex_color"`
}

// UpdateCategoryRequest carries a partial category update. Nil fields are
// left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hex_color"`
}

// Category Response DTOs

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryStatResponse is one row of the per-category breakdown
type CategoryStatResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// ToCategoryResponse converts a category model to its API representation
func ToCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of category models
func ToCategoryResponses(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, ToCategoryResponse(&categories[i]))
	}
	return responses
}

// ToCategoryStatResponses converts per-category aggregates
func ToCategoryStatResponses(stats []models.CategoryStat) []CategoryStatResponse {
	responses := make([]CategoryStatResponse, 0, len(stats))
	for _, stat := range stats {
		responses = append(responses, CategoryStatResponse{
			ID:    stat.CategoryID.String(),
			Name:  stat.Name,
			Color: stat.Color,
			Total: stat.Total,
			Count: stat.Count,
		})
	}
	return responses
}
