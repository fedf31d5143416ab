package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nashwabd/storefront-backend/api/controllers"
	"github.com/nashwabd/storefront-backend/api/middleware"
	authsvc "github.com/nashwabd/storefront-backend/internal/auth"
	"github.com/nashwabd/storefront-backend/internal/cart"
	"github.com/nashwabd/storefront-backend/internal/catalog"
	checkoutsvc "github.com/nashwabd/storefront-backend/internal/checkout"
	conciergesvc "github.com/nashwabd/storefront-backend/internal/concierge"
	sessionstore "github.com/nashwabd/storefront-backend/internal/session"
	"github.com/nashwabd/storefront-backend/internal/wishlist"
	"github.com/nashwabd/storefront-backend/pkg/auth/session"
	"github.com/nashwabd/storefront-backend/pkg/config"
	"github.com/nashwabd/storefront-backend/pkg/logger"
	"github.com/nashwabd/storefront-backend/pkg/metrics"
	"github.com/nashwabd/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	registry *sessionstore.Registry,
	sessionChecker session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	cat *catalog.Catalog,
	cartService cart.Service,
	wishlistService wishlist.Service,
	checkoutService checkoutsvc.Service,
	conciergeService conciergesvc.Service,
	authService authsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)
	authLimiter := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if redisClient == nil {
			return middleware.AuthRateLimit(policy, nil, logg)
		}
		return middleware.AuthRateLimit(policy, redisClient, logg)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		pingers := []controllers.Pinger{}
		if redisClient != nil {
			pingers = append(pingers, redisClient)
		}
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers...))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(registry, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(cat, logg))
			r.Get("/categories", controllers.ProductsCategories(logg))
			r.Get("/{productId}", controllers.ProductsDetail(cat, registry, logg))
		})
		r.Get("/recently-viewed", controllers.RecentlyViewed(registry, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartView(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistView(wishlistService, logg))
			r.Post("/toggle", controllers.WishlistToggle(wishlistService, logg))
			r.Delete("/{productId}", controllers.WishlistRemove(wishlistService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/quote", controllers.CheckoutQuote(checkoutService, logg))
			r.Post("/", controllers.CheckoutPlace(checkoutService, logg))
		})

		r.Route("/concierge", func(r chi.Router) {
			r.Get("/", controllers.ConciergeHistory(conciergeService, logg))
			r.Post("/messages", controllers.ConciergeSend(conciergeService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter(registerPolicy)).Post("/register", controllers.AuthRegister(authService, logg))
			r.With(authLimiter(loginPolicy)).Post("/login", controllers.AuthLogin(authService, logg))
			r.Post("/refresh", controllers.AuthRefresh(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, logg))
			r.With(middleware.Auth(cfg.JWT, sessionChecker, logg)).Get("/me", controllers.AuthMe(authService, logg))
		})
	})

	return r
}
