package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := &models.User{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
	}

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.False(user.CreatedAt.IsZero())
	s.False(user.UpdatedAt.IsZero())
}

func (s *UserRepositorySuite) TestUserRepository_GetByID() {
	user := database.CreateTestUser(s.T(), s.db, "ada@example.com")

	found, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.Email, found.Email)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_GetByEmail() {
	user := database.CreateTestUser(s.T(), s.db, "ada@example.com")

	found, err := s.repo.GetByEmail("ada@example.com")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByEmail("nobody@example.com")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Delete() {
	user := database.CreateTestUser(s.T(), s.db, "ada@example.com")

	err := s.repo.Delete(user.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(user.ID)
	s.Equal(ErrUserNotFound, err)

	err = s.repo.Delete(user.ID)
	s.Equal(ErrUserNotFound, err)
}
