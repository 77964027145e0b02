package models

// MaxCartQuantity caps the quantity of a single cart entry.
const MaxCartQuantity = 9999

// CartItem is a product joined with the quantity held in a user's cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity" db:"quantity"`
}
