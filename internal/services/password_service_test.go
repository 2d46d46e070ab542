package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestPasswordService(t *testing.T) {
	suite.Run(t, new(PasswordServiceSuite))
}

type PasswordServiceSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceSuite) SetupSuite() {
	s.service = NewPasswordService()
}

func (s *PasswordServiceSuite) TestPasswordService_ValidatePassword() {
	s.NoError(s.service.ValidatePassword("long-enough-1"))
	s.Error(s.service.ValidatePassword("short"))

	tooLong := make([]byte, MaxPasswordLength+1)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	s.Error(s.service.ValidatePassword(string(tooLong)))
}

func (s *PasswordServiceSuite) TestPasswordService_HashAndCompare() {
	hash, err := s.service.HashPassword("correct horse battery")
	s.NoError(err)
	s.NotEqual("correct horse battery", hash)

	s.True(s.service.ComparePassword("correct horse battery", hash))
	s.False(s.service.ComparePassword("wrong password", hash))
}

func (s *PasswordServiceSuite) TestPasswordService_HashesAreSalted() {
	first, err := s.service.HashPassword("correct horse battery")
	s.NoError(err)
	second, err := s.service.HashPassword("correct horse battery")
	s.NoError(err)
	s.NotEqual(first, second)
}
