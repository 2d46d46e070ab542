package handlers

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// handlerEnv wires real services over the in-memory test database so handler
// tests exercise the full stack below the HTTP layer.
type handlerEnv struct {
	db                 *database.DB
	echo               *echo.Echo
	categoryService    services.CategoryServiceInterface
	transactionService services.TransactionServiceInterface
	reportService      services.ReportServiceInterface
	user               *models.User
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	db := database.SetupTestDB(t)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = NewValidator()

	return &handlerEnv{
		db:                 db,
		echo:               e,
		categoryService:    services.NewCategoryService(categoryRepo, logger),
		transactionService: services.NewTransactionService(transactionRepo, categoryRepo, nil, logger),
		reportService:      services.NewReportService(),
		user:               database.CreateTestUser(t, db, "owner@example.com"),
	}
}

// newContext builds an echo context carrying the authenticated user, the way
// the auth middleware would leave it.
func (env *handlerEnv) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.Set("user_id", env.user.ID)
	c.Set("user_email", env.user.Email)
	return c, rec
}

func (env *handlerEnv) newContextWithParam(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := env.newContext(method, target, body)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}
