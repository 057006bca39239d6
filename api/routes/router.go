package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/voicecartlabs/voicecart-backend/api/controllers"
	"github.com/voicecartlabs/voicecart-backend/api/middleware"
	"github.com/voicecartlabs/voicecart-backend/internal/cart"
	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	checkoutsvc "github.com/voicecartlabs/voicecart-backend/internal/checkout"
	"github.com/voicecartlabs/voicecart-backend/internal/orders"
	"github.com/voicecartlabs/voicecart-backend/pkg/config"
	"github.com/voicecartlabs/voicecart-backend/pkg/db"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
	"github.com/voicecartlabs/voicecart-backend/pkg/metrics"
	pkgredis "github.com/voicecartlabs/voicecart-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		if redisClient != nil {
			r.Get("/ready", controllers.HealthReady(dbP, redisClient, logg))
		} else {
			r.Get("/ready", controllers.HealthReady(dbP, nil, logg))
		}
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	sessionPolicy := middleware.SessionRateLimitPolicy{
		Window: cfg.RateLimit.SessionWindow,
		Limit:  cfg.RateLimit.SessionLimit,
	}

	r.Route("/acp", func(r chi.Router) {
		r.Use(middleware.Session(logg))
		if redisClient != nil {
			r.Use(middleware.SessionRateLimit(sessionPolicy, redisClient, logg))
			r.Use(middleware.Idempotency(redisClient, logg))
		}

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
			r.Get("/colors", controllers.CatalogColors(catalogService, logg))
			r.Get("/{productID}", controllers.CatalogGet(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Put("/items/{productID}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/checkout_sessions", func(r chi.Router) {
			r.Post("/", controllers.CheckoutCreate(checkoutService, logg))
			r.Get("/{checkoutID}", controllers.CheckoutGet(checkoutService, logg))
			r.Post("/{checkoutID}", controllers.CheckoutUpdate(checkoutService, logg))
			r.Post("/{checkoutID}/complete", controllers.CheckoutComplete(checkoutService, logg))
			r.Post("/{checkoutID}/cancel", controllers.CheckoutCancel(checkoutService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ordersService, logg))
			r.Get("/analytics/summary", controllers.OrdersAnalyticsSummary(ordersService, logg))
			r.Get("/{orderID}", controllers.OrdersGet(ordersService, logg))
		})
	})

	return r
}
