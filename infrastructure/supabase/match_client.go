package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"novena-backend/domain/matching"
	"novena-backend/domain/novena"
	pkgcache "novena-backend/pkg/cache"
	pkgerrors "novena-backend/pkg/errors"
	"novena-backend/pkg/observability"
)

// memoTTL bounds the in-process memoization of AI matches. The remote side
// caches by normalized intention as well; this layer only saves the round
// trip within a session.
const memoTTL = 12 * time.Hour

// matchRequest is the AI match endpoint request body.
type matchRequest struct {
	Intention string `json:"intention"`
}

// matchResponse is the AI match endpoint response body. PatronSaint,
// NovenaSlug, and NovenaTitle are required; a response missing any of them
// is discarded whole, never partially consumed.
type matchResponse struct {
	PatronSaint string `json:"patronSaint"`
	SaintBio    string `json:"saintBio"`
	MatchReason string `json:"matchReason"`
	NovenaSlug  string `json:"novenaSlug"`
	NovenaTitle string `json:"novenaTitle"`
}

// MatchClient calls the LLM-backed matching endpoint. It implements
// matching.AIClient: a well-formed result or an error, nothing in between.
// Successful matches enrich the shared reason cache so later local fallbacks
// can explain the same saint.
type MatchClient struct {
	baseURL string
	path    string
	apiKey  string
	session SessionProvider
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	memo    *pkgcache.InMemoryCache
	reasons *matching.ReasonCache
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewMatchClient builds the AI match client.
func NewMatchClient(
	baseURL, path, apiKey string,
	session SessionProvider,
	timeout time.Duration,
	reasons *matching.ReasonCache,
	metrics *observability.Collector,
	logger *zap.Logger,
) *MatchClient {
	return &MatchClient{
		baseURL: baseURL,
		path:    path,
		apiKey:  apiKey,
		session: session,
		http:    &http.Client{Timeout: timeout},
		breaker: newBreaker("ai-match", logger),
		memo:    pkgcache.NewInMemoryCache(),
		reasons: reasons,
		metrics: metrics,
		logger:  logger,
	}
}

// MatchIntention implements matching.AIClient.
func (c *MatchClient) MatchIntention(ctx context.Context, intention string) (*novena.MatchResult, error) {
	if c.baseURL == "" {
		return nil, pkgerrors.NewUnavailableError("ai match endpoint")
	}

	token, err := c.session.Token()
	if err != nil {
		return nil, err
	}

	key := matching.NormalizeIntention(intention)
	if cached, ok := c.memo.Get(key); ok {
		c.metrics.RecordAICacheHit()
		result := cached.(novena.MatchResult)
		return &result, nil
	}
	c.metrics.RecordAICacheMiss()

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.match(ctx, token, intention)
	})
	if err != nil {
		return nil, err
	}

	result := raw.(*novena.MatchResult)
	c.memo.Set(key, *result, memoTTL)
	return result, nil
}

func (c *MatchClient) match(ctx context.Context, token, intention string) (*novena.MatchResult, error) {
	body, err := json.Marshal(matchRequest{Intention: intention})
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode match request").WithCause(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.NewNetworkError("failed to build match request", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.NewNetworkError("ai match failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.NewExternalError("ai match endpoint", fmt.Errorf("status %d", resp.StatusCode))
	}

	var parsed matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, pkgerrors.NewExternalError("ai match endpoint", fmt.Errorf("malformed body: %w", err))
	}
	if parsed.PatronSaint == "" || parsed.NovenaSlug == "" || parsed.NovenaTitle == "" {
		return nil, pkgerrors.NewExternalError("ai match endpoint", fmt.Errorf("incomplete response"))
	}

	reason := parsed.MatchReason
	if reason == "" {
		reason = c.reasons.ReasonOrDefault(parsed.PatronSaint)
	} else {
		// Enrich the cache for later local fallbacks. The result keeps the
		// tailored reason even when the saint is already cached.
		c.reasons.Put(parsed.PatronSaint, reason)
	}

	c.logger.Info("ai match resolved",
		zap.String("saint", parsed.PatronSaint),
		zap.String("slug", parsed.NovenaSlug),
	)

	return &novena.MatchResult{
		Entry: novena.Entry{
			Slug:     parsed.NovenaSlug,
			Title:    parsed.NovenaTitle,
			Category: novena.CategoryOther,
		},
		PatronSaint: parsed.PatronSaint,
		MatchReason: reason,
	}, nil
}
