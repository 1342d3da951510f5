package api

// swagger:model api.WithdrawActionRequest
type WithdrawActionRequest struct {
	WithdrawID int    `json:"withdraw_id" validate:"required" example:"1"`
	Action     string `json:"action" validate:"required,oneof=approved rejected" example:"approved"`
}
