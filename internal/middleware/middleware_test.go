package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"earnhub/internal/model"
	"earnhub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCtx(e *echo.Echo, authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	e := echo.New()

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("missing header", func(t *testing.T) {
		err := RequireAuth(next)(newCtx(e, ""))
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("bad format", func(t *testing.T) {
		err := RequireAuth(next)(newCtx(e, "Basic abc"))
		require.Error(t, err)
		he := err.(*echo.HTTPError)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		err := RequireAuth(next)(newCtx(e, "Bearer nope"))
		require.Error(t, err)
		he := err.(*echo.HTTPError)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("valid token sets claims", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 7}, time.Minute)
		require.NoError(t, err)
		var got *service.CustomClaims
		capture := func(c echo.Context) error {
			got = c.Get(ContextUserKey).(*service.CustomClaims)
			return c.NoContent(http.StatusOK)
		}
		require.NoError(t, RequireAuth(capture)(newCtx(e, "Bearer "+tok)))
		require.NotNil(t, got)
		require.Equal(t, 7, got.UserID)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("non-admin forbidden", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 7}, time.Minute)
		require.NoError(t, err)
		err = RequireAdmin(next)(newCtx(e, "Bearer "+tok))
		require.Error(t, err)
		he := err.(*echo.HTTPError)
		require.Equal(t, http.StatusForbidden, he.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		tok, err := service.IssueAccessToken(model.User{ID: 1, IsAdmin: true}, time.Minute)
		require.NoError(t, err)
		require.NoError(t, RequireAdmin(next)(newCtx(e, "Bearer "+tok)))
	})
}
