package store

import (
	"context"
	"errors"
	"fmt"

	"earnhub/internal/database"
	"earnhub/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, referral_code, referred_by,
	 balance, total_earned, tasks_completed, is_admin, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.ReferralCode,
		&u.ReferredBy,
		&u.Balance,
		&u.TotalEarned,
		&u.TasksCompleted,
		&u.IsAdmin,
		&u.CreatedAt,
	)
	return u, err
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user. The email unique constraint is absorbed into
// ErrDuplicateEmail via ON CONFLICT DO NOTHING.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, referral_code, referred_by, balance, total_earned, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.ReferralCode,
		u.ReferredBy,
		u.Balance,
		u.TotalEarned,
		u.IsAdmin,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// CreditReferrer atomically adds amount to the balance and total_earned of the
// user owning the given referral code. Returns false when no user owns the
// code. Concurrent credits against the same code must all land.
func CreditReferrer(ctx context.Context, db database.DB, referralCode string, amount int64) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET balance = balance + $2, total_earned = total_earned + $2
		 WHERE referral_code = $1`,
		referralCode,
		amount,
	)
	if err != nil {
		return false, fmt.Errorf("CreditReferrer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DebitBalance atomically subtracts amount from the user's balance. No
// sufficiency check: the balance may go negative when it changed after the
// withdraw request was made.
func DebitBalance(ctx context.Context, db database.DB, userID int, amount int64) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET balance = balance - $2 WHERE id = $1`,
		userID,
		amount,
	)
	if err != nil {
		return fmt.Errorf("DebitBalance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
