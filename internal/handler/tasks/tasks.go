package tasks

import (
	"encoding/json"
	"net/http"
	"time"

	"earnhub/internal/api"
	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

// CacheKey holds the cached active-task listing; task add and seed delete it.
const CacheKey = "tasks:active"

const cacheTTL = 30 * time.Second

var listActiveTasks = store.ListActiveTasks

// @Summary     List active tasks
// @Description Returns every task with active=true, served from cache when fresh
// @Tags        tasks
// @Produce     json
// @Success     200 {array} api.TaskResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tasks [get]
func ListTasksHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if body, err := rdb.Get(ctx, CacheKey).Bytes(); err == nil {
			return c.JSONBlob(http.StatusOK, body)
		}

		tasks, err := listActiveTasks(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			resp = append(resp, api.TaskResponse{
				ID:     t.ID,
				Title:  t.Title,
				Reward: t.Reward,
				Link:   t.Link,
				Active: t.Active,
			})
		}

		body, err := json.Marshal(resp)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// Best effort: a failed cache write must not fail the listing.
		rdb.Set(ctx, CacheKey, body, cacheTTL)

		return c.JSONBlob(http.StatusOK, body)
	}
}
