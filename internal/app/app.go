// Package app builds the repository, service and handler graph.
package app

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-storefront/internal/jwt"
	"github.com/sbilibin2017/gw-storefront/internal/middlewares"
	"github.com/sbilibin2017/gw-storefront/internal/repositories"
	"github.com/sbilibin2017/gw-storefront/internal/routes"
	"github.com/sbilibin2017/gw-storefront/internal/services"
)

// Deps are the process-level resources. Redis and Kafka are optional.
type Deps struct {
	DB              *sqlx.DB
	JWT             *jwt.JWT
	Redis           *redis.Client
	RedisExpiration time.Duration
	Kafka           *kafka.Writer
	Metrics         *middlewares.Metrics
	Log             *zap.SugaredLogger
	SwaggerURL      string
}

// NewHandler wires repositories into services and services into the router.
func NewHandler(d Deps) http.Handler {
	// Repositories
	userReadRepo := repositories.NewUserReadRepository(d.DB)
	userWriteRepo := repositories.NewUserWriteRepository(d.DB)
	productRepo := repositories.NewProductRepository(d.DB)
	cartRepo := repositories.NewCartRepository(d.DB)
	wishlistRepo := repositories.NewWishlistRepository(d.DB)
	orderRepo := repositories.NewOrderRepository(d.DB)
	contactRepo := repositories.NewContactRepository(d.DB)

	// nil clients must stay untyped nil inside the service interfaces
	var productCache services.ProductCache
	if d.Redis != nil {
		productCache = repositories.NewProductCacheRepository(d.Redis, d.RedisExpiration)
	}
	var kafkaWriter services.KafkaWriter
	if d.Kafka != nil {
		kafkaWriter = d.Kafka
	}

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, d.JWT)
	catalogService := services.NewCatalogService(productRepo, productCache)
	cartService := services.NewCartService(cartRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	orderService := services.NewOrderService(orderRepo, kafkaWriter)
	contactService := services.NewContactService(contactRepo)

	return routes.NewRouter(routes.Config{
		Auth:       authService,
		Cart:       cartService,
		Wishlist:   wishlistService,
		Orders:     orderService,
		Catalog:    catalogService,
		Contact:    contactService,
		DB:         d.DB,
		Tokener:    d.JWT,
		Metrics:    d.Metrics,
		Log:        d.Log,
		SwaggerURL: d.SwaggerURL,
	})
}
