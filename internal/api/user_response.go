package api

import (
	"time"

	"earnhub/internal/model"
)

// NewUserResponse maps a stored user to its public shape, password omitted.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		ReferralCode: u.ReferralCode,
		ReferredBy:   u.ReferredBy,
		Balance:      u.Balance,
		TotalEarned:  u.TotalEarned,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
	}
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"Alice"`
	Email        string    `json:"email" example:"alice@example.com"`
	ReferralCode string    `json:"referral_code" example:"a1B2c3D4"`
	ReferredBy   *string   `json:"referred_by,omitempty" example:"x9Y8z7W6"`
	Balance      int64     `json:"balance" example:"50"`
	TotalEarned  int64     `json:"total_earned" example:"50"`
	IsAdmin      bool      `json:"is_admin" example:"false"`
	CreatedAt    time.Time `json:"created_at" example:"2025-05-01T15:04:05Z07:00"`
}
