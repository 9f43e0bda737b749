// Package services contains the application services behind the shopctl
// commands: identity resolution, session management, cart mutation and
// catalog queries. Each mutating operation runs inside exactly one dbx.WithTx
// scope opened by the service.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/dbx"
	"github.com/dmitrijs2005/shopctl/internal/repositories/sessions"
	"github.com/dmitrijs2005/shopctl/internal/tokenstore"
)

// Resolver answers "who is the current actor". It reads the local session
// artifact and matches it against the active session rows.
//
// Resolution is read-only and never treats a missing or stale artifact as a
// failure: both simply mean the caller is anonymous.
type Resolver struct {
	tokens tokenstore.Store
}

// NewResolver returns a Resolver reading tokens from the given store.
func NewResolver(tokens tokenstore.Store) *Resolver {
	return &Resolver{tokens: tokens}
}

// CurrentUserID resolves the calling process's user id, or common.ErrNoSession
// when the caller is anonymous. It runs against any DBTX so callers can
// resolve inside their own transaction scope.
func (r *Resolver) CurrentUserID(ctx context.Context, db dbx.DBTX) (int64, error) {
	token, err := r.tokens.Get()
	if err != nil {
		return 0, fmt.Errorf("read session artifact: %w", err)
	}
	if token == "" {
		return 0, common.ErrNoSession
	}

	userID, err := sessions.NewSQLiteRepository(db).FindUserIDByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// the session was invalidated elsewhere; the leftover
			// artifact makes the caller anonymous, not broken
			return 0, common.ErrNoSession
		}
		return 0, err
	}
	return userID, nil
}
