// Package users provides lookup of identity records.
package users

import (
	"context"

	"github.com/dmitrijs2005/shopctl/internal/models"
)

// Repository describes read access to user records. The CLI never creates or
// mutates users; they are owned by the store and seeded at initialization.
type Repository interface {
	// GetByUsername returns the user with exactly this username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
