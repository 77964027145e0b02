package services

import "errors"

// Error kinds. Every error returned by a service either wraps one of these or is
// an unexpected storage failure.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrTransaction  = errors.New("transaction failed")
)

// serviceError carries a client-facing message and unwraps to its kind.
type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }

func (e *serviceError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

var (
	ErrRegisterFieldsRequired = newError(ErrValidation, "Please provide username, email, and password.")
	ErrLoginFieldsRequired    = newError(ErrValidation, "Please provide email and password.")
	ErrUserAlreadyExists      = newError(ErrConflict, "Username or email already exists.")
	ErrUserNotFound           = newError(ErrNotFound, "User not found.")
	ErrInvalidCredentials     = newError(ErrUnauthorized, "Invalid credentials.")

	ErrInvalidProductID = newError(ErrValidation, "A valid productId is required.")
	ErrInvalidQuantity  = newError(ErrValidation, "A valid quantity is required.")
	ErrInvalidCartItem  = newError(ErrValidation, "productId and quantity are required.")
	ErrUnknownProduct   = newError(ErrValidation, "Product does not exist.")
	ErrProductNotFound  = newError(ErrNotFound, "Product not found.")
	ErrCartItemNotFound = newError(ErrNotFound, "Item not found in cart.")

	ErrWishlistItemExists   = newError(ErrConflict, "Product is already in the wishlist.")
	ErrWishlistItemNotFound = newError(ErrNotFound, "Item not found in wishlist.")

	ErrInvalidOrder = newError(ErrValidation, "Invalid order data.")
	ErrOrderFailed  = newError(ErrTransaction, "Error processing order.")

	ErrContactFieldsRequired = newError(ErrValidation, "Please provide name, email, and message.")
)
