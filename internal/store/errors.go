package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to create a new user
	// fails because a non-deleted user with the same username or email
	// already exists in the database.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a lookup expected to match a
	// non-deleted user produces an empty result set. Soft-deleted rows
	// count as not found.
	ErrUserNotFound = errors.New("no user was found")
)
