package services

//go:generate mockgen -source=wishlist.go -destination=wishlist_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
	"github.com/sbilibin2017/gw-storefront/internal/storage"
)

// WishlistRepository defines wishlist persistence.
type WishlistRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Product, error)
	Add(ctx context.Context, userID uuid.UUID, productID int64) error
	Remove(ctx context.Context, userID uuid.UUID, productID int64) error
}

// WishlistService manages per-user wishlists. Adding a product twice is a conflict.
type WishlistService struct {
	repo WishlistRepository
}

func NewWishlistService(repo WishlistRepository) *WishlistService {
	return &WishlistService{repo: repo}
}

// Get returns the wishlisted products.
func (svc *WishlistService) Get(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	products, err := svc.repo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wishlist", "userID", userID, "err", err)
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Add puts a product on the wishlist.
func (svc *WishlistService) Add(ctx context.Context, userID uuid.UUID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	err := svc.repo.Add(ctx, userID, productID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrUniqueViolation):
		return ErrWishlistItemExists
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return ErrUnknownProduct
	default:
		logger.Log.Errorw("failed to add wishlist item", "userID", userID, "productID", productID, "err", err)
		return err
	}
}

// Remove deletes a product from the wishlist.
func (svc *WishlistService) Remove(ctx context.Context, userID uuid.UUID, productID int64) error {
	if productID <= 0 {
		return ErrInvalidProductID
	}

	if err := svc.repo.Remove(ctx, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWishlistItemNotFound
		}
		logger.Log.Errorw("failed to remove wishlist item", "userID", userID, "productID", productID, "err", err)
		return err
	}
	return nil
}
