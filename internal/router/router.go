package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticket-flow-api/internal/config"
	"ticket-flow-api/internal/handler"
	"ticket-flow-api/internal/middleware"
)

// New assembles the route table. The gate ordering mirrors the source
// system: /v1/health bypasses everything, /v1/auth/login bypasses the
// bearer stage but still resolves a tenant, and every other /v1 route
// runs bearer auth followed by tenant resolution.
func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	tenantMiddleware *middleware.TenantMiddleware,
	authHandler *handler.AuthHandler,
	tenantHandler *handler.TenantHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics)
	r.Use(rateLimitMiddleware.Handler)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})

		// Login resolves a tenant before credentials are even read;
		// source behavior, kept as-is.
		api.With(tenantMiddleware.ResolveTenant).Post("/auth/login", authHandler.Login)

		api.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.RequireAuth)
			protected.Use(tenantMiddleware.ResolveTenant)

			protected.Get("/auth/me", authHandler.Me)
			protected.Get("/tenants/current", tenantHandler.Current)
		})
	})

	return r
}
