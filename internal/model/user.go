// File: internal/model/user.go
package model

import "time"

type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	ReferralCode   string    `db:"referral_code" json:"referral_code"`
	ReferredBy     *string   `db:"referred_by" json:"referred_by,omitempty"`
	Balance        int64     `db:"balance" json:"balance"`
	TotalEarned    int64     `db:"total_earned" json:"total_earned"`
	TasksCompleted []string  `db:"tasks_completed" json:"tasks_completed"`
	IsAdmin        bool      `db:"is_admin" json:"is_admin"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
