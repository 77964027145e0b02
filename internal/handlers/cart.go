package handlers

//go:generate mockgen -source=cart.go -destination=cart_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// CartGetter returns a user's cart.
type CartGetter interface {
	Get(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

// CartAdder adds products to a cart.
type CartAdder interface {
	Add(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (bool, error)
}

// CartUpdater sets cart quantities.
type CartUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error
}

// CartRemover removes products from a cart.
type CartRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}

// AddToCartRequest represents the JSON body for adding to the cart
// swagger:model AddToCartRequest
type AddToCartRequest struct {
	// required: true
	// default: 1
	ProductID int64 `json:"productId"`

	// required: true
	// default: 1
	Quantity int `json:"quantity"`
}

// UpdateCartRequest represents the JSON body for changing a quantity
// swagger:model UpdateCartRequest
type UpdateCartRequest struct {
	// required: true
	// default: 2
	Quantity int `json:"quantity"`
}

// NewGetCartHandler returns an HTTP handler listing the cart.
// @Summary Get cart
// @Tags cart
// @Produce json
// @Success 200 {array} models.CartItem "Cart items"
// @Failure 401 {object} handlers.ErrorResponse "Token missing"
// @Failure 403 {object} handlers.ErrorResponse "Token invalid or expired"
// @Router /cart [get]
// @Security BearerAuth
func NewGetCartHandler(svc CartGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		items, err := svc.Get(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

// NewAddToCartHandler returns an HTTP handler adding a product to the cart.
// Adding a product already in the cart increases its quantity.
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param addToCartRequest body handlers.AddToCartRequest true "Product and quantity"
// @Success 201 {object} handlers.MessageResponse "Item added"
// @Success 200 {object} handlers.MessageResponse "Quantity increased"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or unknown product"
// @Router /cart/add [post]
// @Security BearerAuth
func NewAddToCartHandler(svc CartAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req AddToCartRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		created, err := svc.Add(r.Context(), userID, req.ProductID, req.Quantity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if created {
			writeJSON(w, http.StatusCreated, MessageResponse{Message: "Item added to cart."})
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item quantity updated."})
	}
}

// NewUpdateCartHandler returns an HTTP handler setting a cart quantity.
// @Summary Update cart quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path int true "Product id"
// @Param updateCartRequest body handlers.UpdateCartRequest true "New quantity"
// @Success 200 {object} handlers.MessageResponse "Quantity updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid quantity"
// @Failure 404 {object} handlers.ErrorResponse "Item not found in cart"
// @Router /cart/update/{productId} [put]
// @Security BearerAuth
func NewUpdateCartHandler(svc CartUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req UpdateCartRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		if err := svc.Update(r.Context(), userID, productIDParam(r), req.Quantity); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item quantity updated."})
	}
}

// NewRemoveFromCartHandler returns an HTTP handler removing a product from the cart.
// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param productId path int true "Product id"
// @Success 200 {object} handlers.MessageResponse "Item removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid product id"
// @Failure 404 {object} handlers.ErrorResponse "Item not found in cart"
// @Router /cart/remove/{productId} [delete]
// @Security BearerAuth
func NewRemoveFromCartHandler(svc CartRemover) http.HandlerFunc {
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

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Item removed from cart."})
	}
}
