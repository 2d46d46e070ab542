package main

import (
	"fmt"
	"log"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail    = "demo@fintrack.local"
	demoPassword = "demo-password-1"

	monthsOfHistory      = 6
	transactionsPerMonth = 30
)

var expenseCategories = []struct {
	name  string
	color string
}{
	{"Groceries", "#22c55e"},
	{"Rent", "#ef4444"},
	{"Transport", "#3b82f6"},
	{"Dining Out", "#f97316"},
	{"Entertainment", "#a855f7"},
	{"Utilities", "#eab308"},
}

var incomeCategories = []struct {
	name  string
	color string
}{
	{"Salary", "#14b8a6"},
	{"Freelance", "#6366f1"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	if err := seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Println("Seeding complete")
}

func seed(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		log.Printf("Demo user %s already exists, skipping", demoEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	user := &models.User{
		Name:         gofakeit.Name(),
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create demo user: %w", err)
	}

	var expenses, incomes []*models.Category
	for _, c := range expenseCategories {
		category := &models.Category{
			Name:        c.name,
			Description: gofakeit.Sentence(6),
			Color:       c.color,
			UserID:      user.ID,
		}
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.name, err)
		}
		expenses = append(expenses, category)
	}
	for _, c := range incomeCategories {
		category := &models.Category{
			Name:        c.name,
			Description: gofakeit.Sentence(6),
			Color:       c.color,
			UserID:      user.ID,
		}
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.name, err)
		}
		incomes = append(incomes, category)
	}

	now := time.Now().UTC()
	count := 0

	for month := 0; month < monthsOfHistory; month++ {
		monthStart := now.AddDate(0, -month, 0)

		// One salary entry per month
		salary := &models.Transaction{
			Description: "Monthly salary",
			Amount:      decimal.NewFromFloat(gofakeit.Price(3000, 6000)).Round(2),
			Type:        models.TransactionTypeIncome,
			Date:        monthStart,
			UserID:      user.ID,
			CategoryID:  incomes[0].ID,
		}
		if err := db.Create(salary).Error; err != nil {
			return fmt.Errorf("failed to create salary transaction: %w", err)
		}
		count++

		for i := 0; i < transactionsPerMonth; i++ {
			category := expenses[gofakeit.Number(0, len(expenses)-1)]
			transactionType := models.TransactionTypeExpense
			amount := gofakeit.Price(5, 250)

			// Occasional freelance income
			if gofakeit.Number(0, 9) == 0 {
				category = incomes[1]
				transactionType = models.TransactionTypeIncome
				amount = gofakeit.Price(100, 1500)
			}

			transaction := &models.Transaction{
				Description: gofakeit.ProductName(),
				Amount:      decimal.NewFromFloat(amount).Round(2),
				Type:        transactionType,
				Date:        monthStart.AddDate(0, 0, -gofakeit.Number(0, 27)),
				UserID:      user.ID,
				CategoryID:  category.ID,
			}
			if err := db.Create(transaction).Error; err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}
			count++
		}
	}

	log.Printf("Seeded demo user %s with %d categories and %d transactions",
		demoEmail, len(expenses)+len(incomes), count)

	return nil
}
