package handlers

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	apierrors "fintrack/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// sendValidationError maps a models.ErrValidation wrapped error to the
// standard validation response, preserving the specific message
func sendValidationError(c echo.Context, err error) error {
	return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
}

// isValidationError reports whether the error stems from input validation
func isValidationError(err error) bool {
	return errors.Is(err, models.ErrValidation)
}
