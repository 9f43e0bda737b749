package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/dbx"
	"github.com/dmitrijs2005/shopctl/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, userID int64, token string, at time.Time) error {
	query := `INSERT INTO user_login_status (user_id, status, status_updated_at, session_token)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			status = excluded.status,
			status_updated_at = excluded.status_updated_at,
			session_token = excluded.session_token`

	_, err := r.db.ExecContext(ctx, query,
		userID, models.StatusLoggedIn, at.UTC().Format(time.RFC3339), token)
	if err != nil {
		return fmt.Errorf("failed to upsert login status: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) FindUserIDByToken(ctx context.Context, token string) (int64, error) {
	query := `SELECT user_id FROM user_login_status
		WHERE session_token = ? AND status = ?`

	var userID int64
	err := r.db.QueryRowContext(ctx, query, token, models.StatusLoggedIn).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return userID, nil
}

func (r *SQLiteRepository) GetForUser(ctx context.Context, userID int64) (*models.LoginStatus, error) {
	query := `SELECT user_id, status, status_updated_at, session_token
		FROM user_login_status WHERE user_id = ?`

	var (
		ls    models.LoginStatus
		at    string
		token sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&ls.UserID, &ls.Status, &at, &token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	ls.UpdatedAt, err = time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, fmt.Errorf("malformed status timestamp %q: %w", at, err)
	}
	ls.Token = token.String
	return &ls, nil
}

func (r *SQLiteRepository) DeleteForUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM user_login_status WHERE user_id = ?`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete login status: %w", err)
	}
	return nil
}
