package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/models"
)

func TestProductCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewProductCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get product", func(t *testing.T) {
		price := 12.5
		product := &models.Product{ID: 1, Name: "mug", Price: 9.99, OriginalPrice: &price, Features: models.Features{"Ceramic"}}

		require.NoError(t, repo.Set(ctx, product))

		got, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupt value returns error", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "product:7", "not-json", time.Minute).Err())
		_, err := repo.Get(ctx, 7)
		assert.Error(t, err)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, &models.Product{ID: 2, Name: "plate"}))

		time.Sleep(3 * time.Second)

		got, err := repo.Get(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestProductCacheRepository_LogsKeyAsField(t *testing.T) {
	originalLog := logger.Log
	defer func() { logger.Log = originalLog }()

	core, logs := observer.New(zap.InfoLevel)
	logger.Log = zap.New(core).Sugar()

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	repo := NewProductCacheRepository(rdb, time.Second)
	ctx := context.Background()

	_, err := repo.Get(ctx, 7)
	assert.Error(t, err)
	assert.Error(t, repo.Set(ctx, &models.Product{ID: 7, Name: "mug"}))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "product cache get", entries[0].Message)
	assert.Equal(t, "product cache set", entries[1].Message)
	for _, e := range entries {
		assert.Equal(t, "product:7", e.ContextMap()["key"])
		assert.NotNil(t, e.ContextMap()["error"])
	}
}
