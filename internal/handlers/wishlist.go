package handlers

//go:generate mockgen -source=wishlist.go -destination=wishlist_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// WishlistGetter returns a user's wishlist.
type WishlistGetter interface {
	Get(ctx context.Context, userID uuid.UUID) ([]models.Product, error)
}

// WishlistAdder adds products to a wishlist.
type WishlistAdder interface {
	Add(ctx context.Context, userID uuid.UUID, productID int64) error
}

// WishlistRemover removes products from a wishlist.
type WishlistRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}

// AddToWishlistRequest represents the JSON body for adding to the wishlist
// swagger:model AddToWishlistRequest
type AddToWishlistRequest struct {
	// required: true
	// default: 1
	ProductID int64 `json:"productId"`
}

// NewGetWishlistHandler returns an HTTP handler listing the wishlist.
// @Summary Get wishlist
// @Tags wishlist
// @Produce json
// @Success 200 {array} models.Product "Wishlisted products"
// @Failure 401 {object} handlers.ErrorResponse "Token missing"
// @Failure 403 {object} handlers.ErrorResponse "Token invalid or expired"
// @Router /wishlist [get]
// @Security BearerAuth
func NewGetWishlistHandler(svc WishlistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		products, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

// NewAddToWishlistHandler returns an HTTP handler adding a product to the wishlist.
// @Summary Add to wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param addToWishlistRequest body handlers.AddToWishlistRequest true "Product"
// @Success 201 {object} handlers.MessageResponse "Product added"
// @Failure 400 {object} handlers.ErrorResponse "Missing or unknown product"
// @Failure 409 {object} handlers.ErrorResponse "Already in wishlist"
// @Router /wishlist/add [post]
// @Security BearerAuth
func NewAddToWishlistHandler(svc WishlistAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req AddToWishlistRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.Add(r.Context(), userID, req.ProductID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Product added to wishlist."})
	}
}

// NewRemoveFromWishlistHandler returns an HTTP handler removing a product from the wishlist.
// @Summary Remove from wishlist
// @Tags wishlist
// @Produce json
// @Param productId path int true "Product id"
// @Success 200 {object} handlers.MessageResponse "Product removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product id"
// @Failure 404 {object} handlers.ErrorResponse "Not in wishlist"
// @Router /wishlist/remove/{productId} [delete]
// @Security BearerAuth
func NewRemoveFromWishlistHandler(svc WishlistRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		if err := svc.Remove(r.Context(), userID, productIDParam(r)); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Product removed from wishlist."})
	}
}
