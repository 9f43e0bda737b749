package users

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/store"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGetByUsername_Found(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	u, err := r.GetByUsername(context.Background(), "joe")
	require.NoError(t, err)
	assert.Equal(t, "joe", u.Username)
	assert.Equal(t, "admin1234", u.Password)
	assert.Positive(t, u.ID)
}

func TestGetByUsername_ExactMatchOnly(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByUsername(context.Background(), "JOE ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestGetByUsername_NotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByUsername(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
