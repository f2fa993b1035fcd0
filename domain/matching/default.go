package matching

import (
	"context"

	"novena-backend/domain/novena"
)

// DefaultStrategy is the terminal tier. It prefers the well-known "general
// guidance" novenas, then settles for the catalog's first entry with a
// derived name and reason. It only declines when the catalog is empty, which
// the orchestrator guards against before any strategy runs.
type DefaultStrategy struct {
	reasons *ReasonCache
}

// NewDefaultStrategy builds the terminal strategy over the shared reason cache.
func NewDefaultStrategy(reasons *ReasonCache) *DefaultStrategy {
	return &DefaultStrategy{reasons: reasons}
}

// Name implements Strategy.
func (s *DefaultStrategy) Name() string { return "default" }

// Attempt implements Strategy.
func (s *DefaultStrategy) Attempt(_ context.Context, _ string, catalog novena.Catalog) *novena.MatchResult {
	entry, ok := catalog.FirstPresent(novena.GenericFallbackSlugs())
	if !ok {
		if len(catalog) == 0 {
			return nil
		}
		entry = catalog[0]
	}

	saint := novena.ResolveSaintName(entry)
	return &novena.MatchResult{
		Entry:       entry,
		PatronSaint: saint,
		MatchReason: s.reasons.ReasonOrDefault(saint),
	}
}
