package api

// swagger:model api.WithdrawRequest
type WithdrawRequest struct {
	UserID int    `json:"user_id" validate:"required" example:"1"`
	Name   string `json:"name" validate:"required" example:"Alice"`
	Phone  string `json:"phone" validate:"required" example:"+8801700000000"`
	Method string `json:"method" validate:"required" example:"bkash"`
	Amount int64  `json:"amount" validate:"required,gt=0" example:"500"`
}
