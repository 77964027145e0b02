package handlers

//go:generate mockgen -source=order.go -destination=order_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// OrderPlacer defines the interface that the service must implement.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, items []models.OrderItem, totalAmount float64) (uuid.UUID, error)
}

// PlaceOrderRequest represents the JSON body for placing an order
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	// required: true
	Items []models.OrderItem `json:"items"`

	// required: true
	// default: 19.98
	TotalAmount float64 `json:"totalAmount"`
}

// PlaceOrderResponse represents a placed order
// swagger:model PlaceOrderResponse
type PlaceOrderResponse struct {
	// default: Order placed successfully
	Message string    `json:"message"`
	OrderID uuid.UUID `json:"orderId"`
}

// NewPlaceOrderHandler returns an HTTP handler placing an order.
// @Summary Place order
// @Description Stores the order header and all lines in one transaction.
// @Tags orders
// @Accept json
// @Produce json
// @Param placeOrderRequest body handlers.PlaceOrderRequest true "Order"
// @Success 200 {object} handlers.PlaceOrderResponse "Order placed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid order data"
// @Failure 500 {object} handlers.ErrorResponse "Error processing order"
// @Router /orders [post]
// @Security BearerAuth
func NewPlaceOrderHandler(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeErrorMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var req PlaceOrderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		orderID, err := svc.PlaceOrder(r.Context(), userID, req.Items, req.TotalAmount)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, PlaceOrderResponse{
			Message: "Order placed successfully",
			OrderID: orderID,
		})
	}
}
