package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

// WishlistRepository stores one row per (user, product).
type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepository(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// GetByUserID returns the wishlisted products. It never returns nil.
func (r *WishlistRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = ?
		ORDER BY w.created_at, p.id
	`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), userID)

	logQuery(query, []any{userID}, len(products), err)

	if err != nil {
		return nil, err
	}
	return products, nil
}

// Add inserts an entry. A duplicate yields storage.ErrUniqueViolation and an
// unknown product storage.ErrForeignKeyViolation.
func (r *WishlistRepository) Add(ctx context.Context, userID uuid.UUID, productID int64) error {
	query := `
		INSERT INTO wishlist_items (user_id, product_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id, product_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), userID, productID, time.Now().UTC())
	n := rowsAffected(res)

	logQuery(query, []any{userID, productID}, n, err)

	if err != nil {
		return storage.Classify(err)
	}
	if n == 0 {
		return storage.ErrUniqueViolation
	}
	return nil
}

// Remove deletes an entry. It returns sql.ErrNoRows when nothing was deleted.
func (r *WishlistRepository) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	query := `
		DELETE FROM wishlist_items
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
