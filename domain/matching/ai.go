package matching

import (
	"context"

	"go.uber.org/zap"

	"novena-backend/domain/novena"
)

// AIClient is the remote LLM-backed matching collaborator. Implementations
// return (nil, error) on any transport, auth, or response-shape failure and
// never a partially populated result.
type AIClient interface {
	MatchIntention(ctx context.Context, intention string) (*novena.MatchResult, error)
}

// AIStrategy delegates saint selection to the remote matching service. Used
// only after the local rule tiers decline, because the remote call costs
// money and latency. Any client failure degrades to a decline.
type AIStrategy struct {
	client AIClient
	logger *zap.Logger
}

// NewAIStrategy builds the strategy over an AI client. A nil client (remote
// backend not configured) yields a strategy that always declines.
func NewAIStrategy(client AIClient, logger *zap.Logger) *AIStrategy {
	return &AIStrategy{client: client, logger: logger}
}

// Name implements Strategy.
func (s *AIStrategy) Name() string { return "ai" }

// Attempt implements Strategy.
func (s *AIStrategy) Attempt(ctx context.Context, intention string, catalog novena.Catalog) *novena.MatchResult {
	if s.client == nil {
		return nil
	}
	if NormalizeIntention(intention) == "" {
		return nil
	}

	result, err := s.client.MatchIntention(ctx, intention)
	if err != nil {
		s.logger.Debug("ai match declined",
			zap.String("intention", intention),
			zap.Error(err),
		)
		return nil
	}
	if !result.IsValid() {
		return nil
	}

	// Prefer the catalog's copy of the entry when the slug is known; the
	// remote service does not report categories.
	if canonical, ok := catalog.BySlug(result.Entry.Slug); ok {
		result.Entry = canonical
	}
	return result
}
