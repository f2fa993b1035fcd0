package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"novena-backend/application/ports"
	"novena-backend/application/services"
	"novena-backend/domain/matching"
	"novena-backend/infrastructure/config"
	"novena-backend/infrastructure/persistence/sqlite"
	"novena-backend/infrastructure/supabase"
	"novena-backend/pkg/auth"
	"novena-backend/pkg/observability"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideCollector creates the Prometheus metrics collector.
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("novena")
}

// ProvideTracerProvider initializes distributed tracing, or returns nil
// when tracing is disabled.
func ProvideTracerProvider(cfg *config.Config, logger *zap.Logger) (*observability.TracerProvider, error) {
	if !cfg.EnableTracing {
		return nil, nil
	}

	tp, err := observability.InitTracing(observability.TracingConfig{
		ServiceName: "novena-backend",
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("tracing enabled", zap.String("endpoint", cfg.OTLPEndpoint))
	return tp, nil
}

// ProvideCatalogCache opens the local SQLite cache. A broken cache is
// logged and skipped; the catalog service degrades to the fallback list.
func ProvideCatalogCache(cfg *config.Config, logger *zap.Logger) ports.CatalogCache {
	if cfg.CacheDBPath == "" {
		return nil
	}
	cache, err := sqlite.Open(cfg.CacheDBPath)
	if err != nil {
		logger.Warn("catalog cache unavailable",
			zap.String("path", cfg.CacheDBPath),
			zap.Error(err),
		)
		return nil
	}
	return cache
}

// ProvideSessionProvider creates the outbound Supabase session.
func ProvideSessionProvider(cfg *config.Config) supabase.SessionProvider {
	key := cfg.SupabaseServiceKey
	if key == "" {
		key = cfg.SupabaseAnonKey
	}
	return supabase.NewServiceSession(key)
}

// ProvideCatalogFetcher creates the remote catalog client, or nil when
// no remote store is configured.
func ProvideCatalogFetcher(cfg *config.Config, session supabase.SessionProvider, logger *zap.Logger) ports.CatalogFetcher {
	if !cfg.RemoteConfigured() {
		return nil
	}
	return supabase.NewCatalogClient(
		cfg.SupabaseURL,
		cfg.CatalogPath,
		cfg.SupabaseAnonKey,
		session,
		cfg.CatalogTimeout,
		logger,
	)
}

// ProvideAIClient creates the AI match client, or nil when no remote
// endpoint is configured. A nil client makes the AI tier decline.
func ProvideAIClient(
	cfg *config.Config,
	session supabase.SessionProvider,
	reasons *matching.ReasonCache,
	metrics *observability.Collector,
	logger *zap.Logger,
) matching.AIClient {
	if !cfg.RemoteConfigured() {
		return nil
	}
	return supabase.NewMatchClient(
		cfg.SupabaseURL,
		cfg.AIMatchPath,
		cfg.SupabaseAnonKey,
		session,
		cfg.AIMatchTimeout,
		reasons,
		metrics,
		logger,
	)
}

// ProvideReasonCache creates the shared match-reason cache.
func ProvideReasonCache() *matching.ReasonCache {
	return matching.NewReasonCache()
}

// ProvidePicker creates the random picker used for category picks.
func ProvidePicker() matching.Picker {
	return matching.NewRandomPicker()
}

// ProvideCatalogService creates the catalog service.
func ProvideCatalogService(
	cache ports.CatalogCache,
	remote ports.CatalogFetcher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.CatalogService {
	return services.NewCatalogService(cache, remote, metrics, logger)
}

// ProvideMatchService creates the match orchestrator.
func ProvideMatchService(
	catalog *services.CatalogService,
	aiClient matching.AIClient,
	reasons *matching.ReasonCache,
	picker matching.Picker,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.MatchService {
	return services.NewMatchService(catalog, aiClient, reasons, picker, metrics, logger)
}

// ProvideRulesWatcher loads the optional matching-rules overlay, applies
// it, and keeps applying it on file changes. Returns nil when no rules
// file is configured.
func ProvideRulesWatcher(cfg *config.Config, matcher *services.MatchService, logger *zap.Logger) (*config.RulesWatcher, error) {
	if cfg.RulesPath == "" {
		return nil, nil
	}

	watcher, err := config.NewRulesWatcher(cfg.RulesPath, logger)
	if err != nil {
		return nil, err
	}

	apply := func(overlay *config.RulesOverlay) {
		matcher.ReloadRules(overlay.PatronSaintGroups(), overlay.Reasons)
	}
	apply(watcher.Current())
	watcher.OnChange(apply)
	watcher.Start()

	return watcher, nil
}

// ProvideTokenVerifier picks local JWT validation when the signing
// secret is available, otherwise falls back to remote verification
// against the Supabase auth API.
func ProvideTokenVerifier(cfg *config.Config) (auth.TokenVerifier, error) {
	if cfg.SupabaseJWTSecret != "" {
		return auth.NewLocalVerifier(cfg.SupabaseJWTSecret)
	}
	return auth.NewRemoteVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey)
}
