package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/dbx"
	"github.com/dmitrijs2005/shopctl/internal/logging"
	"github.com/dmitrijs2005/shopctl/internal/models"
	"github.com/dmitrijs2005/shopctl/internal/repositories/cart"
	"github.com/dmitrijs2005/shopctl/internal/tokenstore"
)

// CartService applies cart mutations for the currently logged-in user. Every
// operation resolves the caller's identity first; anonymous callers get
// common.ErrNotLoggedIn and nothing is written.
type CartService struct {
	db       *sql.DB
	resolver *Resolver
	log      logging.Logger
}

// NewCartService constructs a CartService over the given database handle and
// token store.
func NewCartService(db *sql.DB, tokens tokenstore.Store, log logging.Logger) *CartService {
	return &CartService{
		db:       db,
		resolver: NewResolver(tokens),
		log:      log,
	}
}

// resolve maps an anonymous caller to ErrNotLoggedIn.
func (s *CartService) resolve(ctx context.Context, tx dbx.DBTX) (int64, error) {
	userID, err := s.resolver.CurrentUserID(ctx, tx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return 0, common.ErrNotLoggedIn
		}
		return 0, err
	}
	return userID, nil
}

// Add puts qty more units of the product into the caller's cart and returns
// the resulting line quantity. The product must exist and be active;
// otherwise common.ErrProductUnavailable.
//
// The supplied quantity is taken as given. The ledger's CHECK constraint is
// the backstop against a non-positive result.
func (s *CartService) Add(ctx context.Context, productID, qty int64) (int64, error) {
	var quantity int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID, err := s.resolve(ctx, tx)
		if err != nil {
			return err
		}
		quantity, err = cart.NewSQLiteRepository(tx).AddQuantity(ctx, userID, productID, qty)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, "cart add", "product_id", productID, "quantity", quantity)
	return quantity, nil
}

// Remove deletes the caller's cart line for the product. It returns false
// when there was no line: removing nothing is a no-op, not an error.
func (s *CartService) Remove(ctx context.Context, productID int64) (bool, error) {
	var removed bool

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID, err := s.resolve(ctx, tx)
		if err != nil {
			return err
		}
		removed, err = cart.NewSQLiteRepository(tx).Delete(ctx, userID, productID)
		return err
	})
	if err != nil {
		return false, err
	}

	s.log.Info(ctx, "cart remove", "product_id", productID, "removed", removed)
	return removed, nil
}

// Update sets the caller's cart line for the product to exactly qty, which
// must be at least 1. Dropping a line goes through Remove, never through a
// zero quantity. It returns false when no line existed.
func (s *CartService) Update(ctx context.Context, productID, qty int64) (bool, error) {
	if qty < 1 {
		return false, common.ErrInvalidQuantity
	}

	var updated bool

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userID, err := s.resolve(ctx, tx)
		if err != nil {
			return err
		}
		updated, err = cart.NewSQLiteRepository(tx).SetQuantity(ctx, userID, productID, qty)
		return err
	})
	if err != nil {
		return false, err
	}

	s.log.Info(ctx, "cart update", "product_id", productID, "quantity", qty, "updated", updated)
	return updated, nil
}

// Items returns the caller's cart joined with catalog fields. Read-only.
func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	userID, err := s.resolve(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return cart.NewSQLiteRepository(s.db).ListForUser(ctx, userID)
}
