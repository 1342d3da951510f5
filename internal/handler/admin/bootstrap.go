package admin

import (
	"errors"
	"net/http"

	"earnhub/internal/api"
	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/handler/tasks"
	"earnhub/internal/model"
	"earnhub/internal/service"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	adminEmail       = "admin@gmail.com"
	adminPassword    = "admin123"
	adminSeedBalance = 999999
)

var (
	hashPassword    = service.HashPassword
	newReferralCode = service.NewReferralCode
	getUserByEmail  = store.GetUserByEmail
	createUser      = store.CreateUser
	replaceTasks    = store.ReplaceTasks
)

func seedTasks() []model.Task {
	return []model.Task{
		{Title: "Subscribe to the YouTube channel", Reward: 30, Link: "https://youtube.com", Active: true},
		{Title: "Like the Facebook page", Reward: 25, Link: "https://facebook.com", Active: true},
	}
}

// @Summary     Create the default admin account
// @Description Idempotent bootstrap: creates the preset administrator when absent, does nothing otherwise
// @Tags        bootstrap
// @Produce     plain
// @Success     200 {string} string
// @Failure     500 {object} api.ErrorResponse
// @Router      /create-admin [get]
func CreateAdminHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		_, err := getUserByEmail(ctx, db, adminEmail)
		if err == nil {
			return c.String(http.StatusOK, "admin already exists")
		}
		if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(adminPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		code, err := newReferralCode()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to generate referral code"})
		}

		if _, err := createUser(ctx, db, &model.User{
			Name:         "Admin",
			Email:        adminEmail,
			PasswordHash: hash,
			ReferralCode: code,
			Balance:      adminSeedBalance,
			IsAdmin:      true,
		}); err != nil && !errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.String(http.StatusOK, "admin created: "+adminEmail+" / "+adminPassword)
	}
}

// @Summary     Seed the task catalog
// @Description Destructive reset: deletes every task, admin-added ones included, then inserts the two fixed seed tasks
// @Tags        bootstrap
// @Produce     plain
// @Success     200 {string} string
// @Failure     500 {object} api.ErrorResponse
// @Router      /seed-tasks [get]
func SeedTasksHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := replaceTasks(ctx, db, seedTasks()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		rdb.Del(ctx, tasks.CacheKey)
		return c.String(http.StatusOK, "tasks seeded")
	}
}
