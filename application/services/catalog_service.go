package services

import (
	"context"

	"go.uber.org/zap"

	"novena-backend/application/ports"
	"novena-backend/domain/novena"
	apperrors "novena-backend/pkg/errors"
	"novena-backend/pkg/observability"
)

// CatalogService supplies the current best-known catalog, preferring
// freshness. Neither method ever fails: every error on the way down degrades
// to the previous cache and finally to the compiled-in fallback list, which
// guarantees at least one entry.
type CatalogService struct {
	cache   ports.CatalogCache
	remote  ports.CatalogFetcher
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewCatalogService creates the catalog service. cache and remote may be nil
// when the corresponding collaborator is not configured; the fallback chain
// absorbs their absence.
func NewCatalogService(
	cache ports.CatalogCache,
	remote ports.CatalogFetcher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		cache:   cache,
		remote:  remote,
		metrics: metrics,
		logger:  logger,
	}
}

// GetCached returns the last persisted catalog, or the compiled-in fallback
// list when nothing usable is persisted. Never touches the network.
func (s *CatalogService) GetCached(ctx context.Context) novena.Catalog {
	if s.cache != nil {
		catalog, err := s.cache.Read(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if len(catalog) > 0 {
			s.metrics.RecordCatalogLoad("cache")
			return catalog
		}
	}
	s.metrics.RecordCatalogLoad("fallback")
	return novena.FallbackCatalog()
}

// Refresh fetches the catalog from the remote endpoint, persisting the
// result on success. On any failure it returns whatever GetCached returns.
func (s *CatalogService) Refresh(ctx context.Context) novena.Catalog {
	if s.remote == nil {
		return s.GetCached(ctx)
	}

	catalog, err := s.remote.Fetch(ctx)
	if err != nil {
		// An unavailable remote is routine (unconfigured backend, open
		// breaker); anything else deserves a warning.
		if apperrors.IsUnavailable(err) {
			s.logger.Debug("catalog endpoint unavailable, serving cached", zap.Error(err))
		} else {
			s.logger.Warn("catalog fetch failed, serving cached", zap.Error(err))
		}
		return s.GetCached(ctx)
	}

	if s.cache != nil {
		if err := s.cache.Write(ctx, catalog); err != nil {
			// The fresh catalog is still served; only persistence lagged.
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	s.metrics.RecordCatalogLoad("remote")
	s.logger.Info("catalog refreshed", zap.Int("entries", len(catalog)))
	return catalog
}
