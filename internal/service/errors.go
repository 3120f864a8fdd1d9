// Package service implements the profile, session and match logic on
// top of the storage contracts. Errors are package-level sentinels
// matched with errors.Is; handlers map them to HTTP statuses.
package service

import "errors"

var (
	// ErrValidation marks malformed or missing input. The client must
	// correct and retry; nothing is retried internally.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized marks bad credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks a selector that resolves to no record.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a unique-field collision with another user.
	ErrConflict = errors.New("conflict")
)
