package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

type AuthServiceSuite struct {
	suite.Suite
	db      *database.DB
	service AuthServiceInterface
	tokens  TokenServiceInterface
}

func (s *AuthServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	userRepo := repositories.NewUserRepository(s.db.DB)
	s.tokens = NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewAuthService(userRepo, NewPasswordService(), s.tokens, nil, logger)
}

func (s *AuthServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuthServiceSuite) register(email string) {
	_, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    email,
		Password: "long-enough-1",
	})
	s.Require().NoError(err)
}

func (s *AuthServiceSuite) TestAuthService_Register() {
	user, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "long-enough-1",
	})
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.Equal("ada@example.com", user.Email)
	// The hash is stored, never the password
	s.NotEqual("long-enough-1", user.PasswordHash)
	s.NotEmpty(user.PasswordHash)
}

func (s *AuthServiceSuite) TestAuthService_Register_DuplicateEmail() {
	s.register("ada@example.com")

	_, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Impostor",
		Email:    "ada@example.com",
		Password: "another-password-1",
	})
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *AuthServiceSuite) TestAuthService_Login() {
	s.register("ada@example.com")

	tokens, err := s.service.Login(&dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "long-enough-1",
	})
	s.NoError(err)
	s.NotEmpty(tokens.AccessToken)
	s.Equal("Bearer", tokens.TokenType)
	s.True(tokens.ExpiresAt.After(time.Now()))

	claims, err := s.tokens.ValidateAccessToken(tokens.AccessToken)
	s.NoError(err)
	s.Equal("ada@example.com", claims.Email)
}

func (s *AuthServiceSuite) TestAuthService_Login_WrongPassword() {
	s.register("ada@example.com")

	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password-1",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestAuthService_Login_UnknownEmail() {
	// Unknown email and wrong password are indistinguishable to the caller
	_, err := s.service.Login(&dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "long-enough-1",
	})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestAuthService_GetProfile() {
	user, err := s.service.Register(&dto.RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "long-enough-1",
	})
	s.NoError(err)

	profile, err := s.service.GetProfile(user.ID)
	s.NoError(err)
	s.Equal(user.ID, profile.ID)
	s.Equal("Ada Lovelace", profile.Name)

	_, err = s.service.GetProfile(uuid.New())
	s.ErrorIs(err, repositories.ErrUserNotFound)
}
