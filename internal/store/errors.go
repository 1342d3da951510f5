package store

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user insert hits the email
	// unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
