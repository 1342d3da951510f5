package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	db := &database.FakeDB{}
	body := `{"email":"alice@example.com","password":"pw"}`

	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		e.Binder = errBinder{}
		ctx, rec := newJSONCtx(e, "")
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		restoreStubs()
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("wrong password issues no token", func(t *testing.T) {
		restoreStubs()
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1, Email: "alice@example.com"}, nil
		}
		authenticateUser = func(context.Context, model.User, string) error {
			return errors.New("invalid password")
		}
		issueAccessToken = stubToken
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotContains(t, rec.Body.String(), "tok")
	})

	t.Run("success", func(t *testing.T) {
		restoreStubs()
		getUserByEmail = func(_ context.Context, _ database.DB, email string) (*model.User, error) {
			require.Equal(t, "alice@example.com", email)
			return &model.User{ID: 1, Email: email, Balance: 100}, nil
		}
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		issueAccessToken = stubToken
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"token":"tok"`)
		require.Contains(t, rec.Body.String(), `"balance":100`)
	})

	t.Run("token error", func(t *testing.T) {
		restoreStubs()
		getUserByEmail = func(context.Context, database.DB, string) (*model.User, error) {
			return &model.User{ID: 1}, nil
		}
		authenticateUser = func(context.Context, model.User, string) error { return nil }
		issueAccessToken = func(model.User, time.Duration) (string, error) {
			return "", errors.New("no secret")
		}
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newJSONCtx(e, body)
		require.NoError(t, LoginHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
