package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"novena-backend/application/services"
	"novena-backend/infrastructure/config"
	"novena-backend/interfaces/http/rest/handlers"
	"novena-backend/interfaces/http/rest/middleware"
	"novena-backend/pkg/auth"
	"novena-backend/pkg/observability"
)

// Router creates and configures the HTTP router.
type Router struct {
	cfg      *config.Config
	matcher  *services.MatchService
	catalog  *services.CatalogService
	verifier auth.TokenVerifier
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(
	cfg *config.Config,
	matcher *services.MatchService,
	catalog *services.CatalogService,
	verifier auth.TokenVerifier,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		matcher:  matcher,
		catalog:  catalog,
		verifier: verifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	if rt.cfg.EnableTracing {
		router.Use(middleware.Tracing("novena-backend"))
	}
	router.Use(middleware.Logger(rt.logger, rt.metrics))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.novena.app"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
			rt.metrics.Registry(),
			promhttp.HandlerOpts{},
		))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.verifier, rt.logger))

		matchHandler := handlers.NewMatchHandler(rt.matcher, rt.logger)
		r.Post("/match", matchHandler.Match)

		catalogHandler := handlers.NewCatalogHandler(rt.catalog, rt.logger)
		r.Get("/novenas", catalogHandler.List)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck reports ready once a catalog is servable. The
// fallback catalog guarantees that, so this only fails if the service
// is wired wrong.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	catalog := rt.catalog.GetCached(req.Context())
	if len(catalog) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
