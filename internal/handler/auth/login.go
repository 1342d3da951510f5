package auth

import (
	"errors"
	"net/http"
	"strings"

	"earnhub/internal/api"
	"earnhub/internal/database"
	"earnhub/internal/service"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

var authenticateUser = service.AuthenticateUser

// @Summary     Log in
// @Description Verifies email and password and returns a bearer token with the user record
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "wrong password"
// @Failure     404 {object} api.ErrorResponse "unknown email"
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByEmail(ctx, db, strings.ToLower(req.Email))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "wrong password"})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: api.NewUserResponse(user)})
	}
}
