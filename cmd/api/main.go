package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nashwabd/storefront-backend/api/routes"
	"github.com/nashwabd/storefront-backend/internal/auth"
	"github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/catalog"
	"github.com/nashwabd/storefront-backend/internal/checkout"
	"github.com/nashwabd/storefront-backend/internal/concierge"
	sessionstore "github.com/nashwabd/storefront-backend/internal/session"
	"github.com/nashwabd/storefront-backend/internal/wishlist"
	"github.com/nashwabd/storefront-backend/pkg/auth/session"
	"github.com/nashwabd/storefront-backend/pkg/config"
	"github.com/nashwabd/storefront-backend/pkg/logger"
	"github.com/nashwabd/storefront-backend/pkg/metrics"
	"github.com/nashwabd/storefront-backend/pkg/redis"
	"github.com/nashwabd/storefront-backend/pkg/square"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(ctx, "redis not configured, refresh sessions and rate limits are in-process")
	}

	registry, err := sessionstore.NewRegistry(cfg.Session, logg)
	if err != nil {
		logg.Error(ctx, "failed to create session registry", err)
		os.Exit(1)
	}
	registry.StartSweeper(ctx, cfg.Session.SweepInterval)

	var sessionManager *session.Manager
	if redisClient != nil {
		sessionManager, err = session.NewManager(redisClient, cfg.JWT)
	} else {
		sessionManager, err = session.NewMemoryManager(cfg.JWT)
	}
	if err != nil {
		logg.Error(ctx, "failed to create session manager", err)
		os.Exit(1)
	}

	cat := catalog.Default()

	cartService, err := cart.NewService(cart.ServiceParams{Catalog: cat, Carts: registry})
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{Catalog: cat, Wishlists: registry})
	if err != nil {
		logg.Error(ctx, "failed to create wishlist service", err)
		os.Exit(1)
	}

	var cardGateway checkout.Gateway
	if cfg.Square.Enabled() {
		squareClient, err := square.NewClient(ctx, cfg.Square, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap square", err)
			os.Exit(1)
		}
		cardGateway, err = checkout.NewSquareGateway(squareClient)
		if err != nil {
			logg.Error(ctx, "failed to create square gateway", err)
			os.Exit(1)
		}
	}

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Catalog:     cat,
		Gateway:     checkout.NewSimulatedGateway(cfg.Checkout),
		CardGateway: cardGateway,
		Config:      cfg.Checkout,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create checkout service", err)
		os.Exit(1)
	}

	var generator concierge.Generator
	if cfg.Gemini.APIKey != "" {
		geminiGenerator, err := concierge.NewGeminiGenerator(ctx, cfg.Gemini, cat)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap gemini", err)
			os.Exit(1)
		}
		defer func() {
			if err := geminiGenerator.Close(); err != nil {
				logg.Error(context.Background(), "error closing gemini client", err)
			}
		}()
		generator = geminiGenerator
	} else {
		logg.Warn(ctx, "gemini api key not configured, concierge replies fall back")
		generator = concierge.NewOfflineGenerator()
	}

	conciergeService, err := concierge.NewService(concierge.ServiceParams{
		Transcripts: registry,
		Generator:   generator,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create concierge service", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		Accounts:       auth.NewAccounts(),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(ctx, "failed to create auth service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			registry,
			sessionManager,
			httpMetrics,
			prometheus.DefaultGatherer,
			cat,
			cartService,
			wishlistService,
			checkoutService,
			conciergeService,
			authService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(logCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(logCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(logCtx, "error during shutdown", err)
		}
	}
}
