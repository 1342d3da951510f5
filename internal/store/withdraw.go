package store

import (
	"context"
	"errors"
	"fmt"

	"earnhub/internal/database"
	"earnhub/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateWithdraw(ctx context.Context, db database.DB, w *model.Withdraw) (*model.Withdraw, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO withdraw_requests (user_id, name, phone, method, amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, requested_at`,
		w.UserID,
		w.Name,
		w.Phone,
		w.Method,
		w.Amount,
		w.Status,
	)
	if err := row.Scan(&w.ID, &w.RequestedAt); err != nil {
		return nil, fmt.Errorf("CreateWithdraw: %w", err)
	}
	return w, nil
}

func GetWithdrawByID(ctx context.Context, db database.DB, withdrawID int) (*model.Withdraw, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, name, phone, method, amount, status, requested_at
		 FROM withdraw_requests WHERE id = $1`,
		withdrawID,
	)
	w := &model.Withdraw{}
	err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.Phone, &w.Method, &w.Amount, &w.Status, &w.RequestedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetWithdrawByID: %w", err)
	}
	return w, nil
}

// ListWithdraws returns every withdraw request, newest first, each joined with
// the requesting user's name and email for the admin view.
func ListWithdraws(ctx context.Context, db database.DB) ([]model.WithdrawWithUser, error) {
	rows, err := db.Query(ctx,
		`SELECT w.id, w.user_id, w.name, w.phone, w.method, w.amount, w.status, w.requested_at,
		        u.name, u.email
		 FROM withdraw_requests w
		 JOIN users u ON u.id = w.user_id
		 ORDER BY w.requested_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListWithdraws: %w", err)
	}
	defer rows.Close()

	withdraws := []model.WithdrawWithUser{}
	for rows.Next() {
		var w model.WithdrawWithUser
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Name, &w.Phone, &w.Method, &w.Amount, &w.Status, &w.RequestedAt,
			&w.UserName, &w.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("ListWithdraws: %w", err)
		}
		withdraws = append(withdraws, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWithdraws: %w", err)
	}
	return withdraws, nil
}

func UpdateWithdrawStatus(ctx context.Context, db database.DB, withdrawID int, status string) error {
	tag, err := db.Exec(ctx,
		`UPDATE withdraw_requests SET status = $2 WHERE id = $1`,
		withdrawID,
		status,
	)
	if err != nil {
		return fmt.Errorf("UpdateWithdrawStatus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
