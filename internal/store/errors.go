package store

import "errors"

// Expected, recoverable failures. The messages are display-ready; the
// HTTP layer passes them straight through to the client.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
