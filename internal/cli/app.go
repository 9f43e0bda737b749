// Package cli defines the shopctl command tree. Commands stay thin: parse
// arguments, open the store, call one service operation, print a line of
// human-readable status. Precondition failures are printed; store failures
// propagate as command errors.
package cli

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopctl/internal/config"
	"github.com/dmitrijs2005/shopctl/internal/logging"
	"github.com/dmitrijs2005/shopctl/internal/services"
	"github.com/dmitrijs2005/shopctl/internal/store"
	"github.com/dmitrijs2005/shopctl/internal/tokenstore"
)

// App carries the per-invocation configuration and logger shared by all
// commands. It is populated by the root command before any subcommand runs.
type App struct {
	cfg *config.Config
	log logging.Logger
}

// runtime bundles an open database handle with the services built on it,
// for the duration of one command.
type runtime struct {
	db      *sql.DB
	auth    *services.AuthService
	cart    *services.CartService
	catalog *services.CatalogService
}

// open opens the shop database (creating and migrating it if needed) and
// builds the services. The caller must Close the runtime.
func (a *App) open(ctx context.Context) (*runtime, error) {
	db, err := store.Open(ctx, a.cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	tokens := tokenstore.NewFileStore(a.cfg.SessionFilePath)
	return &runtime{
		db:      db,
		auth:    services.NewAuthService(db, tokens, a.log),
		cart:    services.NewCartService(db, tokens, a.log),
		catalog: services.NewCatalogService(db, a.log),
	}, nil
}

func (rt *runtime) Close() {
	_ = rt.db.Close()
}
