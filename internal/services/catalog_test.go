package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/logging"
	"github.com/dmitrijs2005/shopctl/internal/store"
)

func setupCatalog(t *testing.T) *CatalogService {
	t.Helper()
	db, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewCatalogService(db, logging.NewTextLogger(io.Discard, false))
}

func TestCatalogList(t *testing.T) {
	svc := setupCatalog(t)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, p := range list {
		assert.True(t, p.Active, "listing must contain only active products")
	}
}

func TestCatalogGet(t *testing.T) {
	svc := setupCatalog(t)
	ctx := context.Background()

	p, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = svc.Get(ctx, 9999)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
