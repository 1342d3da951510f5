package admin

import (
	"errors"
	"net/http"

	"earnhub/internal/api"
	"earnhub/internal/database"
	"earnhub/internal/model"
	"earnhub/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listWithdraws        = store.ListWithdraws
	getWithdrawByID      = store.GetWithdrawByID
	debitBalance         = store.DebitBalance
	updateWithdrawStatus = store.UpdateWithdrawStatus
)

// @Summary     List withdraw requests
// @Description Returns every withdraw request, newest first, with the requesting user's name and email
// @Tags        admin
// @Produce     json
// @Success     200 {array} api.WithdrawResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/withdraws [get]
func ListWithdrawsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		withdraws, err := listWithdraws(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.WithdrawResponse, 0, len(withdraws))
		for _, w := range withdraws {
			resp = append(resp, api.WithdrawResponse{
				ID:          w.ID,
				UserID:      w.UserID,
				Name:        w.Name,
				Phone:       w.Phone,
				Method:      w.Method,
				Amount:      w.Amount,
				Status:      w.Status,
				RequestedAt: w.RequestedAt,
				UserName:    w.UserName,
				UserEmail:   w.UserEmail,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Approve or reject a withdraw request
// @Description Approval atomically debits the user's balance by the request amount; rejection only updates the status. No sufficiency re-check happens here, so an approval can drive the balance negative.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.WithdrawActionRequest true "action"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "unknown withdraw id"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/withdraw/action [post]
func ActionWithdrawHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.WithdrawActionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		w, err := getWithdrawByID(ctx, db, req.WithdrawID)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "withdraw request not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if req.Action == model.WithdrawStatusApproved {
			if err := debitBalance(ctx, db, w.UserID, w.Amount); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
				}
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
			}
		}

		if err := updateWithdrawStatus(ctx, db, req.WithdrawID, req.Action); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Msg: "withdraw request updated"})
	}
}
