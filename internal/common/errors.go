// Package common defines shared constants and sentinel errors used across
// the shopctl layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors. ErrNoSession means the caller is anonymous: the local
	// token is absent, empty, or no longer matches an active session row.
	// It is an expected state, not a failure.
	ErrNoSession   = errors.New("no active session")
	ErrNotLoggedIn = errors.New("not logged in")

	// Cart precondition errors.
	ErrProductUnavailable = errors.New("invalid or inactive product")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
)
