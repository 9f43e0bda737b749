package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/dbx"
	"github.com/dmitrijs2005/shopctl/internal/logging"
	"github.com/dmitrijs2005/shopctl/internal/repositories/sessions"
	"github.com/dmitrijs2005/shopctl/internal/repositories/users"
	"github.com/dmitrijs2005/shopctl/internal/tokenstore"
)

// sessionTokenBytes is the entropy of a minted session token; the hex string
// is twice as long.
const sessionTokenBytes = 32

// AuthService establishes and tears down login sessions.
type AuthService struct {
	db       *sql.DB
	tokens   tokenstore.Store
	resolver *Resolver
	log      logging.Logger
}

// NewAuthService constructs an AuthService over the given database handle and
// token store.
func NewAuthService(db *sql.DB, tokens tokenstore.Store, log logging.Logger) *AuthService {
	return &AuthService{
		db:       db,
		tokens:   tokens,
		resolver: NewResolver(tokens),
		log:      log,
	}
}

func (s *AuthService) checkPassword(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Login authenticates username/password and, on success, mints a fresh opaque
// token, upserts the user's login-status row (replacing any previous token,
// so a repeat login silently invalidates the earlier session) and writes the
// token to the local session artifact. The status row and the artifact are
// committed together: if either write fails, nothing changes.
//
// It returns false for an unknown user or a wrong password without revealing
// which of the two it was, and with no state touched.
func (s *AuthService) Login(ctx context.Context, username, password string) (bool, error) {
	ok := false

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, err := users.NewSQLiteRepository(tx).GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil
			}
			return err
		}

		if !s.checkPassword(user.Password, password) {
			return nil
		}

		token, err := common.MakeRandHexString(sessionTokenBytes)
		if err != nil {
			return fmt.Errorf("mint session token: %w", err)
		}

		if err := sessions.NewSQLiteRepository(tx).Upsert(ctx, user.ID, token, time.Now()); err != nil {
			return err
		}
		if err := s.tokens.Set(token); err != nil {
			return err
		}

		ok = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if ok {
		s.log.Info(ctx, "logged in", "username", username)
	} else {
		s.log.Warn(ctx, "login failed", "username", username)
	}
	return ok, nil
}

// Logout terminates the current session, whatever its state. The local
// artifact is cleared unconditionally and the status row, if an identity was
// resolved, is deleted. Logging out without a session is a success too: an
// observer cannot tell a terminated session from no session at all.
func (s *AuthService) Logout(ctx context.Context) (bool, error) {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID, resolveErr := s.resolver.CurrentUserID(ctx, tx)
		if resolveErr != nil && !errors.Is(resolveErr, common.ErrNoSession) {
			return resolveErr
		}

		if err := s.tokens.Clear(); err != nil {
			return err
		}

		if resolveErr == nil {
			if err := sessions.NewSQLiteRepository(tx).DeleteForUser(ctx, userID); err != nil {
				return err
			}
			s.log.Info(ctx, "logged out", "user_id", userID)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// CurrentUserID resolves the calling process's identity, or
// common.ErrNoSession when anonymous.
func (s *AuthService) CurrentUserID(ctx context.Context) (int64, error) {
	return s.resolver.CurrentUserID(ctx, s.db)
}
