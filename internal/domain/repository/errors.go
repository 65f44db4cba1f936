package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert or update violates a unique
	// constraint (user email, post title).
	ErrDuplicate = errors.New("duplicate value")
)
