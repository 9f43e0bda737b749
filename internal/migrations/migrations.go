// Package migrations embeds the goose SQL migrations that create and seed
// the shop database. store.Open applies them on every start; goose keeps
// track of what already ran, so opening an up-to-date database is a no-op.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
