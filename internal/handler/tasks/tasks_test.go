package tasks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListTasksHandler(t *testing.T) {
	t.Cleanup(func() { listActiveTasks = store.ListActiveTasks })
	db := &database.FakeDB{}

	t.Run("cache hit skips the database", func(t *testing.T) {
		listActiveTasks = func(context.Context, database.DB) ([]model.Task, error) {
			t.Fatal("store must not be queried on a cache hit")
			return nil, nil
		}
		rdb := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				require.Equal(t, CacheKey, key)
				return redis.NewStringResult(`[{"id":1,"title":"t","reward":30,"link":"l","active":true}]`, nil)
			},
		}
		ctx, rec := newCtx(echo.New())
		require.NoError(t, ListTasksHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"reward":30`)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		listActiveTasks = func(context.Context, database.DB) ([]model.Task, error) {
			return []model.Task{{ID: 1, Title: "Subscribe", Reward: 30, Link: "https://youtube.com", Active: true}}, nil
		}
		var setKey string
		var setTTL time.Duration
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				setKey = key
				setTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newCtx(echo.New())
		require.NoError(t, ListTasksHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Subscribe")
		require.Equal(t, CacheKey, setKey)
		require.Equal(t, cacheTTL, setTTL)
	})

	t.Run("cache write failure does not fail the listing", func(t *testing.T) {
		listActiveTasks = func(context.Context, database.DB) ([]model.Task, error) {
			return []model.Task{}, nil
		}
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("", errors.New("redis down"))
			},
		}
		ctx, rec := newCtx(echo.New())
		require.NoError(t, ListTasksHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]", rec.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		listActiveTasks = func(context.Context, database.DB) ([]model.Task, error) {
			return nil, errors.New("query failed")
		}
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		ctx, rec := newCtx(echo.New())
		require.NoError(t, ListTasksHandler(db, rdb)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
