// Package models defines the typed records persisted in the shop database.
// Query results are scanned into these structs field by field; no dynamic
// column lookup.
package models

import "time"

// User is an identity record. Immutable after creation as far as the CLI is
// concerned. The credential is stored in the clear; hardening it is out of
// scope for this tool.
type User struct {
	ID       int64
	Username string
	Password string
}

// StatusLoggedIn is the only legal value of LoginStatus.Status. A user is
// logged out exactly when no status row exists for them.
const StatusLoggedIn = "LOGGED_IN"

// LoginStatus is the per-user session row. A row exists iff the user has an
// active session, and its token (when set) is the sole credential for
// resolving that user's identity out-of-band.
type LoginStatus struct {
	UserID    int64
	Status    string
	UpdatedAt time.Time
	Token     string
}

// Product is a catalog entry. Price is in integer minor currency units.
// Only active products may be listed or added to a cart.
type Product struct {
	ID          int64
	Name        string
	Description string
	PriceCents  int64
	Active      bool
}

// CartItem is one line of a user's cart, joined with catalog fields for
// display. Quantity is strictly positive; a line driven to zero is deleted,
// never stored.
type CartItem struct {
	UserID     int64
	ProductID  int64
	Name       string
	PriceCents int64
	Quantity   int64
}
