// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"earnhub/internal/api"
	"earnhub/internal/cache"
	"earnhub/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// @Summary     Health check
// @Description Returns pong after verifying the database and cache connections
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Set(ctx, "ping", "pong", 10*time.Second).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
