package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	user *models.User
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := &models.Category{
		Name:   "Groceries",
		UserID: s.user.ID,
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.Equal(models.DefaultCategoryColor, category.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByIDAndUser() {
	category := database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")

	found, err := s.repo.GetByIDAndUser(category.ID, s.user.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	// Someone else's category is indistinguishable from a missing one
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	_, err = s.repo.GetByIDAndUser(category.ID, other.ID)
	s.Equal(ErrCategoryNotFound, err)

	_, err = s.repo.GetByIDAndUser(uuid.New(), s.user.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByNameAndUser() {
	category := database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")

	found, err := s.repo.GetByNameAndUser("Groceries", s.user.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	_, err = s.repo.GetByNameAndUser("Rent", s.user.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByUserOrderedByName() {
	database.CreateTestCategory(s.T(), s.db, s.user, "Transport")
	database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")
	database.CreateTestCategory(s.T(), s.db, s.user, "Rent")

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	database.CreateTestCategory(s.T(), s.db, other, "Entertainment")

	categories, err := s.repo.GetByUser(s.user.ID)
	s.NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Groceries", categories[0].Name)
	s.Equal("Rent", categories[1].Name)
	s.Equal("Transport", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Update() {
	category := database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")

	category.Name = "Food"
	category.Color = "#ff0000"
	err := s.repo.Update(category)
	s.NoError(err)

	found, err := s.repo.GetByIDAndUser(category.ID, s.user.ID)
	s.NoError(err)
	s.Equal("Food", found.Name)
	s.Equal("#ff0000", found.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_DeleteIfUnreferenced() {
	category := database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")

	err := s.repo.DeleteIfUnreferenced(category)
	s.NoError(err)

	_, err = s.repo.GetByIDAndUser(category.ID, s.user.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_DeleteIfUnreferenced_InUse() {
	category := database.CreateTestCategory(s.T(), s.db, s.user, "Groceries")
	database.CreateTestTransaction(s.T(), s.db, s.user, category, models.TransactionTypeExpense, "12.50",
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	err := s.repo.DeleteIfUnreferenced(category)
	s.Equal(ErrCategoryInUse, err)

	// Still there
	found, err := s.repo.GetByIDAndUser(category.ID, s.user.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)
}
