package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

const productColumns = `p.id, p.name, p.price, p.original_price, p.image_url, p.category, p.rating, p.reviews, p.description, p.features`

// ProductRepository reads the product catalog.
type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products ordered by id, optionally restricted to one category.
func (r *ProductRepository) List(ctx context.Context, category string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p`
	var args []any
	if category != "" {
		query += ` WHERE p.category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY p.id`

	products := []models.Product{}
	err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...)

	logQuery(query, args, len(products), err)

	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID returns the product or nil when it does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		WHERE p.id = ?
	`

	var product models.Product
	err := r.db.GetContext(ctx, &product, r.db.Rebind(query), productID)

	logQuery(query, []any{productID}, product.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
