package services

//go:generate mockgen -source=cart.go -destination=cart_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

// CartRepository defines cart persistence.
type CartRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Add(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (int, error)
	Update(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}

// CartService manages per-user carts. Adding a product that is already in the
// cart increases its quantity.
type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Get returns the cart contents; an empty cart is an empty slice.
func (svc *CartService) Get(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	items, err := svc.repo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get cart", "userID", userID, "err", err)
		return nil, err
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// Add puts quantity units of a product in the cart. created reports whether a
// new entry was made rather than an existing one incremented.
func (svc *CartService) Add(ctx context.Context, userID uuid.UUID, productID int64, quantity int) (created bool, err error) {
	if productID <= 0 || quantity <= 0 {
		return false, ErrInvalidCartItem
	}
	if quantity > models.MaxCartQuantity {
		return false, ErrInvalidQuantity
	}

	total, err := svc.repo.Add(ctx, userID, productID, quantity)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return false, ErrUnknownProduct
		}
		if errors.Is(err, storage.ErrLimitExceeded) {
			return false, ErrInvalidQuantity
		}
		logger.Log.Errorw("failed to add cart item", "userID", userID, "productID", productID, "err", err)
		return false, err
	}

	// stored quantities are at least 1, so an increment always exceeds quantity
	return total == quantity, nil
}

// Update sets the absolute quantity of a product already in the cart.
func (svc *CartService) Update(ctx context.Context, userID uuid.UUID, productID int64, quantity int) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}
	if quantity <= 0 || quantity > models.MaxCartQuantity {
		return ErrInvalidQuantity
	}

	if err := svc.repo.Update(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartItemNotFound
		}
		logger.Log.Errorw("failed to update cart item", "userID", userID, "productID", productID, "err", err)
		return err
	}
	return nil
}

// Remove deletes a product from the cart.
func (svc *CartService) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := svc.repo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartItemNotFound
		}
		logger.Log.Errorw("failed to remove cart item", "userID", userID, "productID", productID, "err", err)
		return err
	}
	return nil
}
