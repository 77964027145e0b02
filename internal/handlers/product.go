package handlers

//go:generate mockgen -source=product.go -destination=product_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// ProductLister lists catalog products.
type ProductLister interface {
	List(ctx context.Context, category string) ([]models.Product, error)
}

// ProductGetter returns one catalog product.
type ProductGetter interface {
	Get(ctx context.Context, productID int64) (*models.Product, error)
}

// NewListProductsHandler returns an HTTP handler listing the catalog.
// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.Product "Products"
// @Router /products [get]
func NewListProductsHandler(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.List(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

// NewGetProductHandler returns an HTTP handler for a single product.
// @Summary Get product
// @Tags products
// @Produce json
// @Param productId path int true "Product id"
// @Success 200 {object} models.Product "Product"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product id"
// @Failure 404 {object} handlers.ErrorResponse "Product not found"
// @Router /products/{productId} [get]
func NewGetProductHandler(svc ProductGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product, err := svc.Get(r.Context(), productIDParam(r))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
