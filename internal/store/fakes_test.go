package store

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- fakes ---------- */

// fakeRow implements pgx.Row over a fixed value list.
type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.vals)
}

// fakeRows implements pgx.Rows over fixed value lists.
type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.rows) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	vals := r.rows[r.idx]
	r.idx++
	return assign(dest, vals)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func assign(dest []any, vals []any) error {
	for i := range dest {
		switch d := dest[i].(type) {
		case *int:
			*d = vals[i].(int)
		case *int64:
			*d = vals[i].(int64)
		case *string:
			*d = vals[i].(string)
		case **string:
			*d = vals[i].(*string)
		case *[]string:
			*d = vals[i].([]string)
		case *bool:
			*d = vals[i].(bool)
		case *time.Time:
			*d = vals[i].(time.Time)
		default:
			panic("assign: unexpected dest type")
		}
	}
	return nil
}
