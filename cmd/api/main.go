package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/voicecartlabs/voicecart-backend/api/routes"
	"github.com/voicecartlabs/voicecart-backend/internal/cart"
	"github.com/voicecartlabs/voicecart-backend/internal/catalog"
	checkoutsvc "github.com/voicecartlabs/voicecart-backend/internal/checkout"
	"github.com/voicecartlabs/voicecart-backend/internal/events"
	"github.com/voicecartlabs/voicecart-backend/internal/orders"
	"github.com/voicecartlabs/voicecart-backend/pkg/config"
	"github.com/voicecartlabs/voicecart-backend/pkg/db"
	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
	"github.com/voicecartlabs/voicecart-backend/pkg/metrics"
	"github.com/voicecartlabs/voicecart-backend/pkg/migrate"
	"github.com/voicecartlabs/voicecart-backend/pkg/pubsub"
	pkgredis "github.com/voicecartlabs/voicecart-backend/pkg/redis"
	"github.com/voicecartlabs/voicecart-backend/pkg/sessionlock"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to prepare schema", err)
		os.Exit(1)
	}

	// Redis is optional for the demo profile; without it idempotency and
	// rate limiting are simply not applied.
	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
	} else {
		logg.Info(context.Background(), "redis not configured, idempotency and rate limiting disabled")
	}

	var publisher events.Publisher = events.Noop{}
	var pubsubClient *pubsub.Client
	if cfg.PubSub.Enabled() {
		pubsubClient, err = pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		publisher = events.NewPubSubPublisher(pubsubClient.EventsPublisher(), logg)
	} else {
		logg.Info(context.Background(), "pubsub not configured, events disabled")
	}

	catalogService, err := catalog.NewService(catalog.SeedProducts(), cfg.Commerce.TrackStock)
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	sessionLocks := sessionlock.New()
	cartService, err := cart.NewService(
		cart.NewStore(),
		catalogService,
		sessionLocks,
		publisher,
		cfg.Commerce.TaxRateBasisPoint,
		cfg.Commerce.Currency,
		cfg.Commerce.TrackStock,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build cart service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to build orders service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(
		checkoutsvc.NewStore(),
		cartService,
		catalogService,
		ordersService,
		publisher,
		sessionlock.New(),
		cfg.Commerce.TaxRateBasisPoint,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build checkout service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			httpMetrics,
			catalogService,
			cartService,
			checkoutService,
			ordersService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}

	var closeErr error
	closeErr = multierr.Append(closeErr, dbClient.Close())
	if redisClient != nil {
		closeErr = multierr.Append(closeErr, redisClient.Close())
	}
	if pubsubClient != nil {
		closeErr = multierr.Append(closeErr, pubsubClient.Close())
	}
	if closeErr != nil {
		logg.Error(ctx, "error closing clients", closeErr)
	}
}
