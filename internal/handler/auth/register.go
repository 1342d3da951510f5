package auth

import (
	"errors"
	"net/http"
	"strings"

	"earnhub/internal/api"
	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/service"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

// referralBonus is credited to the referrer's balance and total_earned for
// every successful referred registration.
const referralBonus = 50

var (
	hashPassword     = service.HashPassword
	newReferralCode  = service.NewReferralCode
	issueAccessToken = service.IssueAccessToken
	getUserByEmail   = store.GetUserByEmail
	createUser       = store.CreateUser
	creditReferrer   = store.CreditReferrer
)

// @Summary     Register a new user
// @Description Creates an account, credits the referrer when a matching referral code is supplied, and returns a bearer token with the new user record
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration data"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "email already registered"
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		req.Email = strings.ToLower(req.Email)

		// The duplicate check must run before the referrer credit so a
		// rejected registration never pays out a bonus.
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		} else if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		code, err := newReferralCode()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to generate referral code"})
		}

		// referred_by keeps the raw submitted code even when it matches no
		// referrer; the bonus is only paid on an exact (trimmed) match. The
		// bonus is not rolled back if the insert below fails.
		var referredBy *string
		if req.ReferralCode != "" {
			referredBy = &req.ReferralCode
			if _, err := creditReferrer(ctx, db, strings.TrimSpace(req.ReferralCode), referralBonus); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		user, err := createUser(ctx, db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			ReferralCode: code,
			ReferredBy:   referredBy,
		})
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		token, err := issueAccessToken(*user, service.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{Token: token, User: api.NewUserResponse(user)})
	}
}
