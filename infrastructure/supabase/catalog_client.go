package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"novena-backend/domain/novena"
	pkgerrors "novena-backend/pkg/errors"
)

// CatalogClient fetches the novena catalog from the remote endpoint.
// Any non-2xx status or malformed body is total failure; the caller falls
// back to its cache or the compiled-in list.
type CatalogClient struct {
	baseURL string
	path    string
	apiKey  string
	session SessionProvider
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// NewCatalogClient builds the catalog client. baseURL empty means the remote
// backend is not configured; Fetch then always fails fast.
func NewCatalogClient(baseURL, path, apiKey string, session SessionProvider, timeout time.Duration, logger *zap.Logger) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		path:    path,
		apiKey:  apiKey,
		session: session,
		http:    &http.Client{Timeout: timeout},
		breaker: newBreaker("catalog-fetch", logger),
		logger:  logger,
	}
}

// Fetch retrieves the catalog. Entries with empty slug or title are dropped;
// a body yielding no valid entries counts as failure.
func (c *CatalogClient) Fetch(ctx context.Context) (novena.Catalog, error) {
	if c.baseURL == "" {
		return nil, pkgerrors.NewUnavailableError("catalog endpoint")
	}

	token, err := c.session.Token()
	if err != nil {
		return nil, err
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, token)
	})
	if err != nil {
		return nil, err
	}
	return result.(novena.Catalog), nil
}

func (c *CatalogClient) fetch(ctx context.Context, token string) (novena.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.path, nil)
	if err != nil {
		return nil, pkgerrors.NewNetworkError("failed to build catalog request", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, pkgerrors.NewTimeoutError("catalog fetch")
		}
		return nil, pkgerrors.NewNetworkError("catalog fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, pkgerrors.NewExternalError("catalog endpoint", fmt.Errorf("status %d", resp.StatusCode))
	}

	var raw []novena.Entry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, pkgerrors.NewExternalError("catalog endpoint", fmt.Errorf("malformed body: %w", err))
	}

	catalog := make(novena.Catalog, 0, len(raw))
	for i := range raw {
		entry := raw[i]
		if err := entry.Validate(); err != nil {
			c.logger.Debug("dropping invalid catalog entry",
				zap.String("slug", entry.Slug),
				zap.Error(err),
			)
			continue
		}
		catalog = append(catalog, entry)
	}
	if len(catalog) == 0 {
		return nil, pkgerrors.NewExternalError("catalog endpoint", fmt.Errorf("no valid entries in response"))
	}

	return catalog, nil
}
