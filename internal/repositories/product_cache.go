package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

// ProductCacheRepository caches catalog products in Redis.
type ProductCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached products
}

// NewProductCacheRepository creates a new repository instance with the given TTL
func NewProductCacheRepository(client *redis.Client, expiration time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func productKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}

// Get returns the cached product, or nil on a cache miss.
func (r *ProductCacheRepository) Get(ctx context.Context, productID int64) (*models.Product, error) {
	key := productKey(productID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("product cache get", "key", key, "result", "miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("product cache get", "key", key, "error", err)
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(val, &product); err != nil {
		logger.Log.Infow("product cache get", "key", key, "value", string(val), "error", err)
		return nil, err
	}

	logger.Log.Infow("product cache get", "key", key, "result", "hit")
	return &product, nil
}

// Set stores product with the repository TTL.
func (r *ProductCacheRepository) Set(ctx context.Context, product *models.Product) error {
	key := productKey(product.ID)

	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("product cache set", "key", key, "error", err)

	return err
}
