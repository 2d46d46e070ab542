package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is assigned when a category is created without one.
const DefaultCategoryColor = "#6366f1"

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Category is a per-user label for transactions. Name is unique within the
// owning user's set; two users may both have a "Food" category.
//
// Deletion is restricted while any transaction references the category. That
// rule is enforced by the repository layer, not by a schema cascade, so a
// category removal can never silently take transactions with it.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	Color       string    `gorm:"type:varchar(7);not null;default:'#6366f1'" json:"color"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name;index" json:"user_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("%w: owner ID is required", ErrValidation)
	}

	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}

	if len(c.Name) > 100 {
		return fmt.Errorf("%w: category name too long", ErrValidation)
	}

	if len(c.Description) > 500 {
		return fmt.Errorf("%w: category description too long", ErrValidation)
	}

	if c.Color != "" && !hexColorRegex.MatchString(c.Color) {
		return fmt.Errorf("%w: color must be a valid hex color", ErrValidation)
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}
