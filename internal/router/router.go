// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"earnhub/internal/cache"
	"earnhub/internal/database"
	"earnhub/internal/handler"
	"earnhub/internal/handler/admin"
	"earnhub/internal/handler/auth"
	"earnhub/internal/handler/tasks"
	"earnhub/internal/handler/withdraw"
	"earnhub/internal/middleware"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache) {
	// Bootstrap endpoints live outside /api and answer plain text.
	e.GET("/create-admin", admin.CreateAdminHandler(db))
	e.GET("/seed-tasks", admin.SeedTasksHandler(db, rdb))

	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db))

	api.GET("/tasks", tasks.ListTasksHandler(db, rdb))

	api.POST("/withdraw/request", withdraw.RequestHandler(db), middleware.RequireAuth)

	apiAdmin := api.Group("/admin", middleware.RequireAdmin)
	apiAdmin.POST("/task/add", admin.AddTaskHandler(db, rdb))
	apiAdmin.GET("/users", admin.ListUsersHandler(db))
	apiAdmin.GET("/withdraws", admin.ListWithdrawsHandler(db))
	apiAdmin.POST("/withdraw/action", admin.ActionWithdrawHandler(db))
}
