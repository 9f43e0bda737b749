package cart

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

func userID(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(`SELECT user_id FROM users WHERE username=?`, username).Scan(&id))
	return id
}

func inactiveProductID(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(`SELECT product_id FROM products WHERE active=0 LIMIT 1`).Scan(&id))
	return id
}

func TestAddQuantity_InsertThenIncrement(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	qty, err := r.AddQuantity(ctx, joe, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), qty)

	// the second add compounds, it does not overwrite
	qty, err = r.AddQuantity(ctx, joe, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), qty)

	var rows int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM cart_items WHERE user_id=? AND product_id=1`, joe).Scan(&rows))
	assert.Equal(t, 1, rows, "one ledger line per (user, product)")
}

func TestAddQuantity_InactiveProductRejected(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	_, err := r.AddQuantity(ctx, joe, inactiveProductID(t, db), 1)
	assert.True(t, errors.Is(err, common.ErrProductUnavailable))

	_, err = r.AddQuantity(ctx, joe, 9999, 1)
	assert.True(t, errors.Is(err, common.ErrProductUnavailable))

	var rows int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM cart_items`).Scan(&rows))
	assert.Zero(t, rows, "rejected add must not write anything")
}

func TestAddQuantity_MissingUserRejected(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.AddQuantity(context.Background(), 9999, 1, 1)
	assert.True(t, errors.Is(err, common.ErrProductUnavailable))
}

func TestAddQuantity_PerUserLedgers(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")
	emily := userID(t, db, "emily")

	_, err := r.AddQuantity(ctx, joe, 1, 2)
	require.NoError(t, err)
	qty, err := r.AddQuantity(ctx, emily, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty, "carts must not bleed across users")
}

func TestSetQuantity(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	updated, err := r.SetQuantity(ctx, joe, 1, 4)
	require.NoError(t, err)
	assert.False(t, updated, "no line yet, nothing to update")

	_, err = r.AddQuantity(ctx, joe, 1, 2)
	require.NoError(t, err)

	updated, err = r.SetQuantity(ctx, joe, 1, 4)
	require.NoError(t, err)
	assert.True(t, updated)

	var qty int64
	require.NoError(t, db.QueryRow(
		`SELECT quantity FROM cart_items WHERE user_id=? AND product_id=1`, joe).Scan(&qty))
	assert.Equal(t, int64(4), qty, "update sets, it does not add")
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	deleted, err := r.Delete(ctx, joe, 1)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = r.AddQuantity(ctx, joe, 1, 2)
	require.NoError(t, err)

	deleted, err = r.Delete(ctx, joe, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Delete(ctx, joe, 1)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete is a no-op")
}

func TestListForUser(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	joe := userID(t, db, "joe")

	items, err := r.ListForUser(ctx, joe)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = r.AddQuantity(ctx, joe, 1, 2)
	require.NoError(t, err)
	_, err = r.AddQuantity(ctx, joe, 3, 1)
	require.NoError(t, err)

	items, err = r.ListForUser(ctx, joe)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.NotEmpty(t, items[0].Name)
	assert.Equal(t, int64(3), items[1].ProductID)
}

func TestDeleteUserCascadesToCart(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	emily := userID(t, db, "emily")

	_, err := r.AddQuantity(ctx, emily, 1, 2)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM users WHERE user_id=?`, emily)
	require.NoError(t, err)

	var rows int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM cart_items WHERE user_id=?`, emily).Scan(&rows))
	assert.Zero(t, rows, "deleting a user must cascade to their cart lines")
}
