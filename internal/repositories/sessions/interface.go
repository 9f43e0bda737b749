// Package sessions manages the per-user login status rows. A row exists for
// a user exactly while they have an active session, and the row's token is
// the only credential that resolves the local session artifact to a user.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shopctl/internal/models"
)

// Repository describes the session-row lifecycle.
type Repository interface {
	// Upsert creates or refreshes the status row for userID in one atomic
	// statement: status LOGGED_IN, timestamp at, token replacing whatever
	// token was there before. Repeat logins therefore rotate the token and
	// silently invalidate the previous session.
	Upsert(ctx context.Context, userID int64, token string, at time.Time) error

	// FindUserIDByToken returns the user whose active session owns token,
	// or common.ErrorNotFound. A stale token is an expected state.
	FindUserIDByToken(ctx context.Context, token string) (int64, error)

	// GetForUser returns the status row for userID, or common.ErrorNotFound
	// when the user has no active session.
	GetForUser(ctx context.Context, userID int64) (*models.LoginStatus, error)

	// DeleteForUser removes the status row for userID. Deleting a row that
	// does not exist is a no-op.
	DeleteForUser(ctx context.Context, userID int64) error
}
