package admin

import (
	"net/http"

	"earnhub/internal/api"
	"earnhub/internal/database"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

var listUsers = store.ListUsers

// @Summary     List all users
// @Description Returns every user record with the password hash omitted
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
