package api

import "time"

// WithdrawResponse is the admin listing row, enriched with the requesting
// user's name and email.
// swagger:model api.WithdrawResponse
type WithdrawResponse struct {
	ID          int       `json:"id" example:"1"`
	UserID      int       `json:"user_id" example:"1"`
	Name        string    `json:"name" example:"Alice"`
	Phone       string    `json:"phone" example:"+8801700000000"`
	Method      string    `json:"method" example:"bkash"`
	Amount      int64     `json:"amount" example:"500"`
	Status      string    `json:"status" example:"pending"`
	RequestedAt time.Time `json:"requested_at" example:"2025-05-01T15:04:05Z07:00"`
	UserName    string    `json:"user_name" example:"Alice"`
	UserEmail   string    `json:"user_email" example:"alice@example.com"`
}
