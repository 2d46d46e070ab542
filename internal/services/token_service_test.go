package services

import (
	"testing"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceSuite))
}

type TokenServiceSuite struct {
	suite.Suite
	service TokenServiceInterface
	user    *models.User
}

func (s *TokenServiceSuite) SetupSuite() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.service = NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})

	s.user = &models.User{
		ID:    uuid.New(),
		Email: "ada@example.com",
	}
}

func (s *TokenServiceSuite) TestTokenService_GenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.user)
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Equal(s.user.ID.String(), claims.UserID)
	s.Equal(s.user.Email, claims.Email)
	s.Equal("fintrack-test", claims.Issuer)
}

func (s *TokenServiceSuite) TestTokenService_GenerateAccessToken_NilUser() {
	_, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
}

func (s *TokenServiceSuite) TestTokenService_ValidateAccessToken_Empty() {
	_, err := s.service.ValidateAccessToken("")
	s.Equal(ErrEmptyToken, err)
}

func (s *TokenServiceSuite) TestTokenService_ValidateAccessToken_Garbage() {
	_, err := s.service.ValidateAccessToken("not.a.token")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestTokenService_ValidateAccessToken_Expired() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	expired := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: -time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})

	token, _, err := expired.GenerateAccessToken(s.user)
	s.NoError(err)

	_, err = expired.ValidateAccessToken(token)
	s.Equal(ErrExpiredToken, err)
}

func (s *TokenServiceSuite) TestTokenService_ValidateAccessToken_WrongIssuer() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	otherIssuer := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "someone-else",
	})

	token, _, err := otherIssuer.GenerateAccessToken(s.user)
	s.NoError(err)

	validator := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "fintrack-test",
	})

	_, err = validator.ValidateAccessToken(token)
	s.Equal(ErrInvalidIssuer, err)
}

func (s *TokenServiceSuite) TestTokenService_ValidateAccessToken_WrongKey() {
	token, _, err := s.service.GenerateAccessToken(s.user)
	s.NoError(err)

	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	otherKeys := NewTokenService(&config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          otherPrivate,
		PublicKey:           otherPublic,
		Issuer:              "fintrack-test",
	})

	_, err = otherKeys.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceSuite) TestTokenService_ExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	// Scheme is case-insensitive
	token, err = s.service.ExtractTokenFromHeader("bearer abc.def.ghi")
	s.NoError(err)
	s.Equal("abc.def.ghi", token)

	_, err = s.service.ExtractTokenFromHeader("")
	s.Equal(ErrInvalidAuthHeader, err)

	_, err = s.service.ExtractTokenFromHeader("Basic abc")
	s.Equal(ErrInvalidAuthHeader, err)

	_, err = s.service.ExtractTokenFromHeader("Bearer ")
	s.Equal(ErrInvalidAuthHeader, err)
}
