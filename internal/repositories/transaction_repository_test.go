package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	user     *models.User
	food     *models.Category
	salary   *models.Category
	baseDate time.Time
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, s.user, "Food")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user, "Salary")
	s.baseDate = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) defaultFilters() models.TransactionFilters {
	return models.TransactionFilters{Page: models.DefaultPage, Limit: models.DefaultLimit}
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateAndGet() {
	created := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "42.50", s.baseDate)

	found, err := s.repo.GetByIDAndUser(created.ID, s.user.ID)
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.Amount.Equal(created.Amount))
	s.Equal("Food", found.Category.Name)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByIDAndUser_OtherOwner() {
	created := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "10.00", s.baseDate)

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")

	// A transaction owned by someone else reads as not found
	_, err := s.repo.GetByIDAndUser(created.ID, other.ID)
	s.Equal(ErrTransactionNotFound, err)

	_, err = s.repo.GetByIDAndUser(uuid.New(), s.user.ID)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete() {
	created := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "10.00", s.baseDate)

	err := s.repo.Delete(&models.Transaction{ID: created.ID, UserID: s.user.ID})
	s.NoError(err)

	_, err = s.repo.GetByIDAndUser(created.ID, s.user.ID)
	s.Equal(ErrTransactionNotFound, err)

	// Deleting again reports not found
	err = s.repo.Delete(&models.Transaction{ID: created.ID, UserID: s.user.ID})
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_OrderedNewestFirst() {
	oldest := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "1.00", s.baseDate.AddDate(0, 0, -2))
	newest := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "2.00", s.baseDate)
	middle := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "3.00", s.baseDate.AddDate(0, 0, -1))

	transactions, total, err := s.repo.GetWithFilters(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(transactions, 3)
	s.Equal(newest.ID, transactions[0].ID)
	s.Equal(middle.ID, transactions[1].ID)
	s.Equal(oldest.ID, transactions[2].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SameDateTieBreakByCreatedAt() {
	first := &models.Transaction{
		Description: "first recorded",
		Amount:      decimalFromString(s.T(), "5.00"),
		Type:        models.TransactionTypeExpense,
		Date:        s.baseDate,
		UserID:      s.user.ID,
		CategoryID:  s.food.ID,
		CreatedAt:   s.baseDate.Add(1 * time.Hour),
	}
	second := &models.Transaction{
		Description: "second recorded",
		Amount:      decimalFromString(s.T(), "6.00"),
		Type:        models.TransactionTypeExpense,
		Date:        s.baseDate,
		UserID:      s.user.ID,
		CategoryID:  s.food.ID,
		CreatedAt:   s.baseDate.Add(2 * time.Hour),
	}
	s.NoError(s.repo.Create(first))
	s.NoError(s.repo.Create(second))

	transactions, _, err := s.repo.GetWithFilters(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.Require().Len(transactions, 2)

	// Same calendar date: the more recently recorded entry comes first
	s.Equal(second.ID, transactions[0].ID)
	s.Equal(first.ID, transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Pagination() {
	for day := 1; day <= 5; day++ {
		database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "1.00",
			time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC))
	}

	filters := models.TransactionFilters{Page: 1, Limit: 2}
	pageOne, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(pageOne, 2)

	filters.Page = 2
	pageTwo, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(pageTwo, 2)

	filters.Page = 3
	pageThree, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(pageThree, 1)

	// No row appears on two pages
	seen := map[uuid.UUID]bool{}
	for _, t := range append(append(pageOne, pageTwo...), pageThree...) {
		s.False(seen[t.ID])
		seen[t.ID] = true
	}

	// A page past the data is empty, not an error
	filters.Page = 4
	pageFour, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(pageFour, 0)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DateRangeInclusive() {
	inside := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "1.00",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	onStart := database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "2.00",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "3.00",
		time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	filters := s.defaultFilters()
	filters.StartDate = &start
	filters.EndDate = &end

	transactions, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(transactions, 2)
	s.Equal(inside.ID, transactions[0].ID)
	s.Equal(onStart.ID, transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_TypeAndCategoryFilters() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "1.00", s.baseDate)
	income := database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "2.00", s.baseDate)

	filters := s.defaultFilters()
	filters.Type = models.TransactionTypeIncome
	transactions, total, err := s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.Equal(income.ID, transactions[0].ID)

	filters = s.defaultFilters()
	filters.CategoryID = &s.salary.ID
	transactions, total, err = s.repo.GetWithFilters(s.user.ID, filters)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.Equal(income.ID, transactions[0].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_OwnerIsolation() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other, "Food")

	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "1.00", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, other, otherCategory, models.TransactionTypeExpense, "100.00", s.baseDate)

	transactions, total, err := s.repo.GetWithFilters(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(transactions, 1)
	s.Equal(s.user.ID, transactions[0].UserID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Summary() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "2500.00", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "100.50", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "300.25", s.baseDate)

	summary, err := s.repo.GetSummary(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.True(summary.TotalIncome.Equal(decimalFromString(s.T(), "2600.50")), "income was %s", summary.TotalIncome)
	s.True(summary.TotalExpense.Equal(decimalFromString(s.T(), "300.25")), "expense was %s", summary.TotalExpense)
	s.True(summary.Balance.Equal(decimalFromString(s.T(), "2300.25")), "balance was %s", summary.Balance)
	s.Equal(int64(3), summary.TransactionCount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SummaryEmptyLedger() {
	summary, err := s.repo.GetSummary(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.IsZero())
	s.True(summary.Balance.IsZero())
	s.Equal(int64(0), summary.TransactionCount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SummaryIgnoresTypeFilter() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "1000.00", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "400.00", s.baseDate)

	filters := s.defaultFilters()
	filters.Type = models.TransactionTypeIncome

	// Both sides of the ledger are reported even under a type filter
	summary, err := s.repo.GetSummary(s.user.ID, filters)
	s.NoError(err)
	s.True(summary.TotalIncome.Equal(decimalFromString(s.T(), "1000.00")))
	s.True(summary.TotalExpense.Equal(decimalFromString(s.T(), "400.00")))
	s.True(summary.Balance.Equal(decimalFromString(s.T(), "600.00")))
	s.Equal(int64(2), summary.TransactionCount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_SummaryAppliesDateAndCategory() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "50.00",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "70.00",
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "900.00",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	filters := s.defaultFilters()
	filters.StartDate = &start
	filters.CategoryID = &s.food.ID

	summary, err := s.repo.GetSummary(s.user.ID, filters)
	s.NoError(err)
	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.Equal(decimalFromString(s.T(), "50.00")))
	s.Equal(int64(1), summary.TransactionCount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CategoryStats() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "30.00", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "20.00", s.baseDate)
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "10.00", s.baseDate)
	empty := database.CreateTestCategory(s.T(), s.db, s.user, "Unused")

	stats, err := s.repo.GetCategoryStats(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.Require().Len(stats, 3)

	// Ordered by total descending, empty categories included with zeros
	s.Equal("Food", stats[0].Name)
	s.True(stats[0].Total.Equal(decimalFromString(s.T(), "50.00")))
	s.Equal(int64(2), stats[0].Count)

	s.Equal("Salary", stats[1].Name)
	s.True(stats[1].Total.Equal(decimalFromString(s.T(), "10.00")))
	s.Equal(int64(1), stats[1].Count)

	s.Equal(empty.ID, stats[2].CategoryID)
	s.True(stats[2].Total.IsZero())
	s.Equal(int64(0), stats[2].Count)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CategoryStatsFiltered() {
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "30.00",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.food, models.TransactionTypeExpense, "99.00",
		time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user, s.salary, models.TransactionTypeIncome, "500.00",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	filters := s.defaultFilters()
	filters.StartDate = &start
	filters.Type = models.TransactionTypeExpense

	stats, err := s.repo.GetCategoryStats(s.user.ID, filters)
	s.NoError(err)
	s.Require().Len(stats, 2)

	s.Equal("Food", stats[0].Name)
	s.True(stats[0].Total.Equal(decimalFromString(s.T(), "30.00")))
	s.Equal(int64(1), stats[0].Count)

	// Filtered out entirely but still present with zeros
	s.Equal("Salary", stats[1].Name)
	s.True(stats[1].Total.IsZero())
	s.Equal(int64(0), stats[1].Count)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CategoryStatsOwnerIsolation() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other, "Other Food")
	database.CreateTestTransaction(s.T(), s.db, other, otherCategory, models.TransactionTypeExpense, "77.00", s.baseDate)

	stats, err := s.repo.GetCategoryStats(s.user.ID, s.defaultFilters())
	s.NoError(err)
	s.Require().Len(stats, 2)
	for _, stat := range stats {
		s.True(stat.Total.IsZero())
		s.Equal(int64(0), stat.Count)
	}
}
