package sessions

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/models"
	"github.com/dmitrijs2005/shopctl/internal/store"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func userID(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(`SELECT user_id FROM users WHERE username=?`, username).Scan(&id))
	return id
}

func statusRows(t *testing.T, db *sql.DB, uid int64) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM user_login_status WHERE user_id=?`, uid).Scan(&n))
	return n
}

func TestUpsert_CreatesSingleRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	require.NoError(t, r.Upsert(ctx, joe, "tok-1", time.Now()))
	assert.Equal(t, 1, statusRows(t, db, joe))

	// a second login refreshes the same row instead of adding one
	require.NoError(t, r.Upsert(ctx, joe, "tok-2", time.Now()))
	assert.Equal(t, 1, statusRows(t, db, joe))
}

func TestUpsert_RotatesToken(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	require.NoError(t, r.Upsert(ctx, joe, "tok-old", time.Now()))
	require.NoError(t, r.Upsert(ctx, joe, "tok-new", time.Now()))

	uid, err := r.FindUserIDByToken(ctx, "tok-new")
	require.NoError(t, err)
	assert.Equal(t, joe, uid)

	_, err = r.FindUserIDByToken(ctx, "tok-old")
	assert.True(t, errors.Is(err, common.ErrorNotFound),
		"the overwritten token must stop resolving")

	ls, err := r.GetForUser(ctx, joe)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLoggedIn, ls.Status)
	assert.Equal(t, "tok-new", ls.Token)
	assert.WithinDuration(t, time.Now(), ls.UpdatedAt, time.Minute)
}

func TestGetForUser_NoSession(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetForUser(context.Background(), userID(t, db, "emily"))
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestFindUserIDByToken_Unknown(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.FindUserIDByToken(context.Background(), "never-issued")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDeleteForUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	require.NoError(t, r.Upsert(ctx, joe, "tok", time.Now()))
	require.NoError(t, r.DeleteForUser(ctx, joe))
	assert.Equal(t, 0, statusRows(t, db, joe))

	// deleting an absent row is a no-op
	require.NoError(t, r.DeleteForUser(ctx, joe))
}
