package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one requested line of an order.
type OrderItem struct {
	ProductID int64   `json:"productId" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
}

// Order is an order header with its lines.
type Order struct {
	OrderID     uuid.UUID   `json:"orderId" db:"order_id"`
	UserID      uuid.UUID   `json:"userId" db:"user_id"`
	TotalAmount float64     `json:"totalAmount" db:"total_amount"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	Items       []OrderItem `json:"items"`
}

// OrderPlacedEvent is published after an order commits.
type OrderPlacedEvent struct {
	Type        string      `json:"type"`
	OrderID     uuid.UUID   `json:"orderId"`
	UserID      uuid.UUID   `json:"userId"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	PlacedAt    time.Time   `json:"placedAt"`
}
