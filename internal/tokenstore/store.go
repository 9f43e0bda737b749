// Package tokenstore persists the local session artifact: the single opaque
// token that represents the calling process's claimed identity. The store is
// injected into the services, so tests can swap the file-backed
// implementation for an in-memory one.
package tokenstore

// Store holds at most one session token.
//
// Contract:
//   - Get returns the stored token, or "" when no token is stored. A missing
//     artifact is a normal state, never an error.
//   - Set overwrites the stored token wholesale.
//   - Clear removes the token and is idempotent: clearing an empty store
//     succeeds.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}
