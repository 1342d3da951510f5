package admin

import (
	"net/http"

	"earnhub/internal/api"
	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/handler/tasks"
	"earnhub/internal/model"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

var createTask = store.CreateTask

// @Summary     Add a task
// @Description Creates a new reward-eligible task, active by default
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.AddTaskRequest true "task data"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/task/add [post]
func AddTaskHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AddTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if _, err := createTask(ctx, db, &model.Task{
			Title:  req.Title,
			Reward: req.Reward,
			Link:   req.Link,
			Active: true,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		rdb.Del(ctx, tasks.CacheKey)

		return c.JSON(http.StatusOK, api.MessageResponse{Msg: "task added"})
	}
}
