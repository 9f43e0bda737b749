// Package store opens the shop's SQLite database and brings its schema up to
// date. Everything above this package talks to the database through
// database/sql handles and dbx transaction scopes.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/shopctl/internal/migrations"
)

// Open creates or opens the SQLite database at path, applies the required
// pragmas and runs the embedded migrations. Safe to call on every invocation;
// migrations that already ran are skipped.
//
// The connection pool is limited to a single connection: SQLite allows one
// writer at a time, and per-connection pragmas then apply to every statement.
// Transactions take the write lock immediately, so two invocations mutating
// the same database queue up on the busy timeout instead of failing on a
// stale read snapshot.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	// foreign_keys: cascading delete from users to cart lines relies on it.
	// busy_timeout: a concurrent invocation waits for the writer instead of
	// failing immediately.
	dsn := "file:" + path +
		"?_txlock=immediate" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
