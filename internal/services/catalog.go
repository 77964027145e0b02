package services

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// ProductRepository reads the catalog. GetByID returns nil, nil for unknown ids.
type ProductRepository interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, productID int64) (*models.Product, error)
}

// ProductCache caches single products. Get returns nil, nil on a miss.
type ProductCache interface {
	Get(ctx context.Context, productID int64) (*models.Product, error)
	Set(ctx context.Context, product *models.Product) error
}

// CatalogService serves the read-only product catalog.
type CatalogService struct {
	repo  ProductRepository
	cache ProductCache
}

// NewCatalogService creates a CatalogService. cache may be nil to disable caching.
func NewCatalogService(repo ProductRepository, cache ProductCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List returns all products, or those of one category when category is set.
func (svc *CatalogService) List(ctx context.Context, category string) ([]models.Product, error) {
	products, err := svc.repo.List(ctx, category)
	if err != nil {
		logger.Log.Errorw("failed to list products", "category", category, "err", err)
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Get returns one product, reading through the cache when configured.
// Cache failures fall back to the repository.
func (svc *CatalogService) Get(ctx context.Context, productID int64) (*models.Product, error) {
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}

	if svc.cache != nil {
		product, err := svc.cache.Get(ctx, productID)
		if err != nil {
			logger.Log.Warnw("product cache read failed", "productID", productID, "err", err)
		} else if product != nil {
			return product, nil
		}
	}

	product, err := svc.repo.GetByID(ctx, productID)
	if err != nil {
		logger.Log.Errorw("failed to get product", "productID", productID, "err", err)
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, product); err != nil {
			logger.Log.Warnw("product cache write failed", "productID", productID, "err", err)
		}
	}

	return product, nil
}
