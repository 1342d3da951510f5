package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/service"
	"earnhub/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

/* ---------- shared fakes ---------- */

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newStructValidator() structValidator { return structValidator{v: validator.New()} }

func newGetCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restoreStubs() {
	listUsers = store.ListUsers
	createTask = store.CreateTask
	listWithdraws = store.ListWithdraws
	getWithdrawByID = store.GetWithdrawByID
	debitBalance = store.DebitBalance
	updateWithdrawStatus = store.UpdateWithdrawStatus
	hashPassword = service.HashPassword
	newReferralCode = service.NewReferralCode
	getUserByEmail = store.GetUserByEmail
	createUser = store.CreateUser
	replaceTasks = store.ReplaceTasks
}

/* ---------- tests ---------- */

func TestListUsersHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	db := &database.FakeDB{}

	t.Run("store error", func(t *testing.T) {
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return nil, errors.New("query failed")
		}
		ctx, rec := newGetCtx(echo.New())
		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("password hash never leaves the handler", func(t *testing.T) {
		listUsers = func(context.Context, database.DB) ([]model.User, error) {
			return []model.User{
				{ID: 1, Name: "Alice", Email: "a@x.com", PasswordHash: "bcrypt-secret", ReferralCode: "c1", Balance: 50},
				{ID: 2, Name: "Bob", Email: "b@x.com", PasswordHash: "bcrypt-secret", ReferralCode: "c2"},
			}, nil
		}
		ctx, rec := newGetCtx(echo.New())
		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "a@x.com")
		require.Contains(t, rec.Body.String(), `"balance":50`)
		require.NotContains(t, rec.Body.String(), "bcrypt-secret")
	})
}
