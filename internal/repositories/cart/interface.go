// Package cart maintains the per-(user, product) quantity ledger. Every
// mutation is a single atomic statement, so concurrent invocations against
// the same pair serialize at the store and never lose an update.
package cart

import (
	"context"

	"github.com/dmitrijs2005/shopctl/internal/models"
)

// Repository describes the cart-line ledger operations.
type Repository interface {
	// AddQuantity inserts a line with qty for (userID, productID) or, when
	// the line already exists, increments it by qty, as one conditional
	// upsert gated on the user existing and the product being active. It returns
	// the post-update quantity, or common.ErrProductUnavailable when the
	// gate did not pass.
	AddQuantity(ctx context.Context, userID, productID, qty int64) (int64, error)

	// SetQuantity sets the quantity on an existing line. It reports whether
	// a line was actually matched; false means there was nothing to update.
	SetQuantity(ctx context.Context, userID, productID, qty int64) (bool, error)

	// Delete removes the line for (userID, productID), reporting whether a
	// line existed.
	Delete(ctx context.Context, userID, productID int64) (bool, error)

	// ListForUser returns the user's cart lines joined with catalog fields,
	// ordered by product id.
	ListForUser(ctx context.Context, userID int64) ([]models.CartItem, error)
}
