package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// OrderRepository writes orders with their lines atomically.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save inserts the order header and one row per item in a single transaction.
// Either all rows are written or none are. order.CreatedAt is set on success.
func (r *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	headerQuery := `
		INSERT INTO orders (order_id, user_id, total_amount, created_at)
		VALUES (?, ?, ?, ?)
	`
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES (?, ?, ?, ?)
	`
	createdAt := time.Now().UTC()

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		args := []any{order.OrderID, order.UserID, order.TotalAmount, createdAt}
		res, err := tx.ExecContext(ctx, tx.Rebind(headerQuery), args...)
		logQuery(headerQuery, args, rowsAffected(res), err)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			args := []any{order.OrderID, item.ProductID, item.Quantity, item.Price}
			res, err := tx.ExecContext(ctx, tx.Rebind(itemQuery), args...)
			logQuery(itemQuery, args, rowsAffected(res), err)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	order.CreatedAt = createdAt
	return nil
}
