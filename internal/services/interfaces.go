package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines the contract for JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// CategoryServiceInterface defines category business operations. Every
// operation is scoped to the calling owner.
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategories(userID uuid.UUID) ([]models.Category, error)
	GetCategory(id, userID uuid.UUID) (*models.Category, error)
	UpdateCategory(id, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id, userID uuid.UUID) error
}

// TransactionServiceInterface defines ledger business operations: the CRUD
// surface plus the filtered listing and the two read-only aggregations.
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(id, userID uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(id, userID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(id, userID uuid.UUID) error
	ListTransactions(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionPage, error)
	GetSummary(userID uuid.UUID, filters models.TransactionFilters) (*models.TransactionSummary, error)
	GetCategoryStats(userID uuid.UUID, filters models.TransactionFilters) ([]models.CategoryStat, error)
}

// ReportServiceInterface renders ledger data into tabular rows for export.
// The rows are format-agnostic; encoding them (CSV or otherwise) is the
// caller's concern.
type ReportServiceInterface interface {
	TransactionRows(transactions []models.Transaction) [][]string
	SummaryRows(summary *models.TransactionSummary, stats []models.CategoryStat) [][]string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
