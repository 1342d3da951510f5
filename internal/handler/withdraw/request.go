package withdraw

import (
	"errors"
	"net/http"

	"earnhub/internal/api"
	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

// minAmount is the smallest withdrawable amount.
const minAmount = 500

var (
	getUserByID    = store.GetUserByID
	createWithdraw = store.CreateWithdraw
)

// @Summary     Request a withdrawal
// @Description Validates the amount against the user's balance and the minimum, then stores a pending withdraw request
// @Tags        withdraw
// @Accept      json
// @Produce     json
// @Param       request body api.WithdrawRequest true "withdraw data"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse "insufficient balance / below minimum"
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "unknown user"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /withdraw/request [post]
func RequestHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.WithdrawRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		user, err := getUserByID(ctx, db, req.UserID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// Balance check runs before the minimum check. Neither is atomic with
		// the eventual approval; the balance is only re-debited, not
		// re-validated, at approval time.
		if req.Amount > user.Balance {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "insufficient balance"})
		}
		if req.Amount < minAmount {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "minimum withdraw amount is 500"})
		}

		if _, err := createWithdraw(ctx, db, &model.Withdraw{
			UserID: req.UserID,
			Name:   req.Name,
			Phone:  req.Phone,
			Method: req.Method,
			Amount: req.Amount,
			Status: model.WithdrawStatusPending,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Msg: "withdraw request submitted"})
	}
}
