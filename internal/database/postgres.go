package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPgxPool opens a pgx connection pool for the given URL.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
