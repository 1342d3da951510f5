// File: internal/model/withdraw.go
package model

import "time"

// Withdraw statuses. The request is stored as pending and moved exactly once
// by an admin action.
const (
	WithdrawStatusPending  = "pending"
	WithdrawStatusApproved = "approved"
	WithdrawStatusRejected = "rejected"
)

type Withdraw struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Phone       string    `db:"phone" json:"phone"`
	Method      string    `db:"method" json:"method"`
	Amount      int64     `db:"amount" json:"amount"`
	Status      string    `db:"status" json:"status"`
	RequestedAt time.Time `db:"requested_at" json:"requested_at"`
}

// WithdrawWithUser is the admin listing row, enriched with the requesting
// user's name and email.
type WithdrawWithUser struct {
	Withdraw
	UserName  string `db:"user_name" json:"user_name"`
	UserEmail string `db:"user_email" json:"user_email"`
}
