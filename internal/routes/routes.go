// Package routes assembles the HTTP API.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/sbilibin2017/gw-storefront/docs"
	"github.com/sbilibin2017/gw-storefront/internal/handlers"
	"github.com/sbilibin2017/gw-storefront/internal/logger"
	"github.com/sbilibin2017/gw-storefront/internal/middlewares"
)

// AuthService covers registration, login and profile lookup.
type AuthService interface {
	handlers.Registerer
	handlers.Loginer
	handlers.ProfileGetter
}

// CartService covers the cart endpoints.
type CartService interface {
	handlers.CartGetter
	handlers.CartAdder
	handlers.CartUpdater
	handlers.CartRemover
}

// WishlistService covers the wishlist endpoints.
type WishlistService interface {
	handlers.WishlistGetter
	handlers.WishlistAdder
	handlers.WishlistRemover
}

// CatalogService covers the product endpoints.
type CatalogService interface {
	handlers.ProductLister
	handlers.ProductGetter
}

// Config holds everything the router needs. Metrics and Log are optional.
type Config struct {
	Auth     AuthService
	Cart     CartService
	Wishlist WishlistService
	Orders   handlers.OrderPlacer
	Catalog  CatalogService
	Contact  handlers.ContactSaver
	DB       handlers.Pinger
	Tokener  middlewares.Tokener
	Metrics  *middlewares.Metrics
	Log      *zap.SugaredLogger

	// SwaggerURL is where the UI fetches doc.json from.
	SwaggerURL string
}

// NewRouter mounts the API under /api, plus /metrics and /swagger.
func NewRouter(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = logger.Log
	}
	swaggerURL := cfg.SwaggerURL
	if swaggerURL == "" {
		swaggerURL = "/swagger/doc.json"
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(cfg.Auth))
		r.Post("/login", handlers.NewLoginHandler(cfg.Auth))
		r.Get("/products", handlers.NewListProductsHandler(cfg.Catalog))
		r.Get("/products/{productId}", handlers.NewGetProductHandler(cfg.Catalog))
		r.Post("/contact", handlers.NewContactHandler(cfg.Contact))
		r.Get("/health", handlers.NewHealthHandler(cfg.DB))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(cfg.Tokener))

			r.Get("/profile", handlers.NewProfileHandler(cfg.Auth))

			r.Get("/cart", handlers.NewGetCartHandler(cfg.Cart))
			r.Post("/cart/add", handlers.NewAddToCartHandler(cfg.Cart))
			r.Put("/cart/update/{productId}", handlers.NewUpdateCartHandler(cfg.Cart))
			r.Delete("/cart/remove/{productId}", handlers.NewRemoveFromCartHandler(cfg.Cart))

			r.Get("/wishlist", handlers.NewGetWishlistHandler(cfg.Wishlist))
			r.Post("/wishlist/add", handlers.NewAddToWishlistHandler(cfg.Wishlist))
			r.Delete("/wishlist/remove/{productId}", handlers.NewRemoveFromWishlistHandler(cfg.Wishlist))

			r.Post("/orders", handlers.NewPlaceOrderHandler(cfg.Orders))
		})
	})

	return r
}
