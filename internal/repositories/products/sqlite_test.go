package products

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

func TestListActive_ExcludesInactive(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	list, err := r.ListActive(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)

	var total int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&total))
	assert.Less(t, len(list), total, "seed contains an inactive product that must be hidden")

	for _, p := range list {
		assert.True(t, p.Active)
		assert.GreaterOrEqual(t, p.PriceCents, int64(0))
	}

	// ordered by id
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i].ID, list[i-1].ID)
	}
}

func TestGetActiveByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p, err := r.GetActiveByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.NotEmpty(t, p.Name)
}

func TestGetActiveByID_NullDescription(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	// seed product 2 has a NULL description
	p, err := r.GetActiveByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "", p.Description)
}

func TestGetActiveByID_InactiveOrMissing(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	var inactiveID int64
	require.NoError(t, db.QueryRow(
		`SELECT product_id FROM products WHERE active=0 LIMIT 1`).Scan(&inactiveID))

	_, err := r.GetActiveByID(ctx, inactiveID)
	assert.True(t, errors.Is(err, common.ErrorNotFound), "inactive product must be invisible")

	_, err = r.GetActiveByID(ctx, 9999)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
