package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is a single ledger entry. Amount is always strictly positive;
// the income/expense direction is carried by Type, never by the sign.
// Date is the calendar timestamp the entry applies to and is independent of
// CreatedAt, which records when the row was inserted.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()

	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return fmt.Errorf("%w: owner ID is required", ErrValidation)
	}

	if t.CategoryID == uuid.Nil {
		return fmt.Errorf("%w: category ID is required", ErrValidation)
	}

	if t.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	if len(t.Description) > 255 {
		return fmt.Errorf("%w: description too long", ErrValidation)
	}

	if !IsValidTransactionType(t.Type) {
		return fmt.Errorf("%w: type must be either income or expense", ErrValidation)
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	return nil
}

// IsIncome returns true if the transaction adds to the balance
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// CapitalizeTransactionType renders a type constant for display ("Income",
// "Expense").
func CapitalizeTransactionType(transactionType string) string {
	if transactionType == "" {
		return ""
	}
	return strings.ToUpper(transactionType[:1]) + transactionType[1:]
}
