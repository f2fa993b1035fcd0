// Package observability holds the Prometheus metrics for the matching service.
package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application. A nil
// Collector is valid and records nothing, so metrics can be disabled
// without branching at every call site.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Matching metrics
	Matches       *prometheus.CounterVec
	MatchDuration prometheus.Histogram

	// Catalog metrics
	CatalogFetches *prometheus.CounterVec

	// AI memoization metrics
	AICacheHits   prometheus.Counter
	AICacheMisses prometheus.Counter
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Singleton avoids duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	matches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Total number of intention matches by winning stage",
		},
		[]string{"stage"},
	)

	matchDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_duration_seconds",
			Help:      "Intention match duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	catalogFetches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetches_total",
			Help:      "Total number of catalog loads by source",
		},
		[]string{"source"},
	)

	aiCacheHits := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_cache_hits_total",
			Help:      "AI match memoization hits",
		},
	)

	aiCacheMisses := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_cache_misses_total",
			Help:      "AI match memoization misses",
		},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		matches,
		matchDuration,
		catalogFetches,
		aiCacheHits,
		aiCacheMisses,
	)

	globalCollector = &Collector{
		registry:       registry,
		HTTPRequests:   httpRequests,
		HTTPDuration:   httpDuration,
		Matches:        matches,
		MatchDuration:  matchDuration,
		CatalogFetches: catalogFetches,
		AICacheHits:    aiCacheHits,
		AICacheMisses:  aiCacheMisses,
	}
	return globalCollector
}

// Registry exposes the collector's registry for the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// RecordMatch records a finished match and the stage that won.
func (c *Collector) RecordMatch(stage string, duration time.Duration) {
	if c == nil {
		return
	}
	c.Matches.WithLabelValues(stage).Inc()
	c.MatchDuration.Observe(duration.Seconds())
}

// RecordCatalogLoad records where a catalog load was served from
// (remote, cache, or fallback).
func (c *Collector) RecordCatalogLoad(source string) {
	if c == nil {
		return
	}
	c.CatalogFetches.WithLabelValues(source).Inc()
}

// RecordAICacheHit counts an AI memoization hit.
func (c *Collector) RecordAICacheHit() {
	if c == nil {
		return
	}
	c.AICacheHits.Inc()
}

// RecordAICacheMiss counts an AI memoization miss.
func (c *Collector) RecordAICacheMiss() {
	if c == nil {
		return
	}
	c.AICacheMisses.Inc()
}

// RecordHTTPRequest records one handled HTTP request.
func (c *Collector) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
