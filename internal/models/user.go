package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ErrValidation is the base error for all field-level validation failures.
// Callers check it with errors.Is to distinguish caller-correctable input
// errors from internal failures.
var ErrValidation = errors.New("validation failed")

// User owns categories and transactions. It is referenced by the ledger
// only as an ownership scope key; deleting a user cascades to both sets.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`

	Categories   []Category    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

func (u *User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if !emailRegex.MatchString(u.Email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	if u.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", ErrValidation)
	}

	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
