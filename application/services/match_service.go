// Package services holds the application services: catalog supply and the
// match orchestrator that sequences the strategy tiers.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"novena-backend/domain/matching"
	"novena-backend/domain/novena"
	"novena-backend/pkg/observability"
)

// MatchService is the single entry point for intention matching. It runs the
// strategy tiers in strict priority order (preset, keyword, AI, title score,
// default) and returns the first success. It always returns a valid result
// and never an error; the trailing tiers guarantee termination with a
// sensible answer even when every remote collaborator is down.
type MatchService struct {
	mu         sync.RWMutex
	strategies []matching.Strategy

	aiClient matching.AIClient
	reasons  *matching.ReasonCache
	picker   matching.Picker
	catalog  *CatalogService
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewMatchService wires the strategy chain over the built-in tables.
func NewMatchService(
	catalog *CatalogService,
	aiClient matching.AIClient,
	reasons *matching.ReasonCache,
	picker matching.Picker,
	metrics *observability.Collector,
	logger *zap.Logger,
) *MatchService {
	s := &MatchService{
		aiClient: aiClient,
		reasons:  reasons,
		picker:   picker,
		catalog:  catalog,
		metrics:  metrics,
		logger:   logger,
	}
	s.strategies = s.buildStrategies(nil)
	return s
}

// buildStrategies assembles the ordered tier list. Overlay groups are
// appended after the built-in table so the built-in tie-break order holds.
func (s *MatchService) buildStrategies(extraGroups []matching.PatronSaintGroup) []matching.Strategy {
	groups := matching.BuiltinGroups()
	if len(extraGroups) > 0 {
		merged := make([]matching.PatronSaintGroup, 0, len(groups)+len(extraGroups))
		merged = append(merged, groups...)
		merged = append(merged, extraGroups...)
		groups = merged
	}

	return []matching.Strategy{
		matching.NewPresetStrategy(matching.BuiltinPresets(), s.picker),
		matching.NewKeywordStrategy(groups, s.picker),
		matching.NewAIStrategy(s.aiClient, s.logger),
		matching.NewTitleScoreStrategy(s.reasons),
		matching.NewDefaultStrategy(s.reasons),
	}
}

// ReloadRules swaps in overlay keyword groups and seeds extra reasons.
// Called by the rules watcher; safe against in-flight matches.
func (s *MatchService) ReloadRules(extraGroups []matching.PatronSaintGroup, extraReasons map[string]string) {
	for saint, reason := range extraReasons {
		s.reasons.Put(saint, reason)
	}

	strategies := s.buildStrategies(extraGroups)
	s.mu.Lock()
	s.strategies = strategies
	s.mu.Unlock()

	s.logger.Info("matching rules reloaded",
		zap.Int("extraGroups", len(extraGroups)),
		zap.Int("extraReasons", len(extraReasons)),
	)
}

// Match fetches the freshest available catalog and matches against it.
// Without a catalog service it matches against the compiled-in list.
func (s *MatchService) Match(ctx context.Context, intention string) novena.MatchResult {
	catalog := novena.FallbackCatalog()
	if s.catalog != nil {
		catalog = s.catalog.Refresh(ctx)
	}
	return s.MatchWithCatalog(ctx, intention, catalog)
}

// MatchWithCatalog matches an intention against a caller-supplied catalog.
// Total over all inputs: an empty catalog short-circuits to the fixed
// default, and the trailing default tier covers everything else.
func (s *MatchService) MatchWithCatalog(ctx context.Context, intention string, catalog novena.Catalog) novena.MatchResult {
	start := time.Now()
	requestID := uuid.NewString()

	ctx, span := otel.Tracer("matcher").Start(ctx, "match.intention")
	defer span.End()
	span.SetAttributes(attribute.Int("catalog.size", len(catalog)))

	if len(catalog) == 0 {
		result := s.defaultResult()
		s.metrics.RecordMatch("empty-catalog", time.Since(start))
		s.logger.Info("matched against empty catalog",
			zap.String("requestID", requestID),
			zap.String("slug", result.Entry.Slug),
		)
		return result
	}

	s.mu.RLock()
	strategies := s.strategies
	s.mu.RUnlock()

	for _, strategy := range strategies {
		result := strategy.Attempt(ctx, intention, catalog)
		if result == nil || !result.IsValid() {
			continue
		}
		span.SetAttributes(
			attribute.String("match.stage", strategy.Name()),
			attribute.String("novena.slug", result.Entry.Slug),
		)
		s.metrics.RecordMatch(strategy.Name(), time.Since(start))
		s.logger.Info("intention matched",
			zap.String("requestID", requestID),
			zap.String("stage", strategy.Name()),
			zap.String("saint", result.PatronSaint),
			zap.String("slug", result.Entry.Slug),
			zap.Duration("duration", time.Since(start)),
		)
		return *result
	}

	// The default tier answers for every non-empty catalog, so this is
	// unreachable; the fixed default keeps the totality contract anyway.
	result := s.defaultResult()
	s.metrics.RecordMatch("guaranteed-default", time.Since(start))
	return result
}

// defaultResult is the fixed well-known pair returned when nothing else can
// answer.
func (s *MatchService) defaultResult() novena.MatchResult {
	return novena.MatchResult{
		Entry:       novena.DefaultEntry(),
		PatronSaint: novena.DefaultPatronSaint,
		MatchReason: s.reasons.ReasonOrDefault(novena.DefaultPatronSaint),
	}
}
