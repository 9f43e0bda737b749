package cart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopctl/internal/common"
	"github.com/dmitrijs2005/shopctl/internal/dbx"
	"github.com/dmitrijs2005/shopctl/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// AddQuantity is deliberately a single INSERT..SELECT..ON CONFLICT statement
// rather than an existence check followed by a write: a product deactivated
// between check and write could otherwise slip into a cart.
func (r *SQLiteRepository) AddQuantity(ctx context.Context, userID, productID, qty int64) (int64, error) {
	query := `INSERT INTO cart_items (user_id, product_id, quantity)
		SELECT u.user_id, p.product_id, ?
		FROM users u JOIN products p ON p.product_id = ?
		WHERE u.user_id = ? AND p.active = 1
		ON CONFLICT(user_id, product_id) DO UPDATE SET
			quantity = quantity + excluded.quantity
		RETURNING quantity`

	var quantity int64
	err := r.db.QueryRowContext(ctx, query, qty, productID, userID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the gating SELECT produced nothing: product missing or
			// inactive, or the user is gone
			return 0, common.ErrProductUnavailable
		}
		return 0, fmt.Errorf("failed to upsert cart line: %w", err)
	}
	return quantity, nil
}

func (r *SQLiteRepository) SetQuantity(ctx context.Context, userID, productID, qty int64) (bool, error) {
	query := `UPDATE cart_items SET quantity = ? WHERE user_id = ? AND product_id = ?`

	res, err := r.db.ExecContext(ctx, query, qty, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to update cart line: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, productID int64) (bool, error) {
	query := `DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`

	res, err := r.db.ExecContext(ctx, query, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to delete cart line: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) ListForUser(ctx context.Context, userID int64) ([]models.CartItem, error) {
	query := `SELECT c.user_id, c.product_id, p.name, p.price_cents, c.quantity
		FROM cart_items c JOIN products p ON p.product_id = c.product_id
		WHERE c.user_id = ?
		ORDER BY c.product_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select cart lines: %w", err)
	}
	defer rows.Close()

	var result []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.UserID, &item.ProductID, &item.Name, &item.PriceCents, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
