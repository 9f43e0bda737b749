package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopctl/internal/logging"
	"github.com/dmitrijs2005/shopctl/internal/models"
	"github.com/dmitrijs2005/shopctl/internal/repositories/products"
)

// CatalogService serves product listings. Browsing needs no session, and
// inactive products are never shown.
type CatalogService struct {
	db  *sql.DB
	log logging.Logger
}

// NewCatalogService constructs a CatalogService over the given database handle.
func NewCatalogService(db *sql.DB, log logging.Logger) *CatalogService {
	return &CatalogService{db: db, log: log}
}

// List returns all active products ordered by id.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return products.NewSQLiteRepository(s.db).ListActive(ctx)
}

// Get returns one active product, or common.ErrorNotFound for a missing or
// inactive one.
func (s *CatalogService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return products.NewSQLiteRepository(s.db).GetActiveByID(ctx, id)
}
