package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

// CartRepository stores one row per (user, product) with its quantity.
type CartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetByUserID returns the user's cart joined with product data. It never returns nil.
func (r *CartRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	query := `
		SELECT ` + productColumns + `, c.quantity
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = ?
		ORDER BY c.created_at, p.id
	`

	items := []models.CartItem{}
	err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), userID)

	logQuery(query, []any{userID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// Add performs an UPSERT: creates the entry if missing, otherwise increases its
// quantity. It returns the resulting quantity. An unknown product yields
// storage.ErrForeignKeyViolation; a sum above models.MaxCartQuantity yields
// storage.ErrLimitExceeded and leaves the row unchanged.
func (r *CartRepository) Add(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (int, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		WHERE cart_items.quantity + EXCLUDED.quantity <= ?
		RETURNING quantity
	`
	now := time.Now().UTC()

	var total int
	err := r.db.GetContext(ctx, &total, r.db.Rebind(query), userID, productID, quantity, now, now, models.MaxCartQuantity)

	logQuery(query, []any{userID, productID, quantity}, total, err)

	// the conflict branch returns no row when the sum is over the limit
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrLimitExceeded
	}
	if err != nil {
		return 0, storage.Classify(err)
	}
	return total, nil
}

// Update sets the quantity of an existing entry. It returns sql.ErrNoRows when
// the product is not in the cart.
func (r *CartRepository) Update(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	query := `
		UPDATE cart_items
		SET quantity = ?, updated_at = ?
		WHERE user_id = ? AND product_id = ?
	`
	args := []any{quantity, time.Now().UTC(), userID, productID}

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	n := rowsAffected(res)

	logQuery(query, args, n, err)

	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Remove deletes an entry. It returns sql.ErrNoRows when nothing was deleted.
func (r *CartRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	query := `
		DELETE FROM cart_items
		WHERE user_id = ? AND product_id = ?
	`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), userID, productID)
	n := rowsAffected(res)

	logQuery(query, []any{userID, productID}, n, err)

	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
