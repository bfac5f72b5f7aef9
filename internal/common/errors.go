// Package common defines shared sentinel errors and small utilities used
// across notekeeper components. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrUserExists = errors.New("username already taken")
	ErrEmptyNote  = errors.New("note title and body are both empty")

	// Credential encoding errors.
	ErrMalformedHash = errors.New("malformed password hash")
)
