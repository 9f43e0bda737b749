// Package products provides read access to the catalog. Inactive products
// are invisible here: they can be neither listed nor viewed.
package products

import (
	"context"

	"github.com/dmitrijs2005/shopctl/internal/models"
)

// Repository describes catalog queries.
type Repository interface {
	// ListActive returns all active products ordered by id.
	ListActive(ctx context.Context) ([]models.Product, error)

	// GetActiveByID returns one active product, or common.ErrorNotFound for
	// a missing or inactive one.
	GetActiveByID(ctx context.Context, id int64) (*models.Product, error)
}
