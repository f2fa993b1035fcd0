package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"novena-backend/domain/matching"
)

func newTestMatchClient(url string, reasons *matching.ReasonCache) *MatchClient {
	return NewMatchClient(url, "/functions/v1/match-intention", "anon-key",
		NewServiceSession("service-key"), 2*time.Second, reasons, nil, zap.NewNop())
}

func TestMatchClient_MatchIntention_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req matchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "praying for my sister", req.Intention)

		w.Write([]byte(`{
			"patronSaint": "St. Expeditus",
			"matchReason": "St. Expeditus is invoked for urgent causes.",
			"novenaSlug": "st-expeditus-novena",
			"novenaTitle": "St. Expeditus Novena"
		}`))
	}))
	defer srv.Close()

	reasons := matching.NewReasonCache()
	result, err := newTestMatchClient(srv.URL, reasons).MatchIntention(context.Background(), "praying for my sister")

	require.NoError(t, err)
	assert.Equal(t, "st-expeditus-novena", result.Entry.Slug)
	assert.Equal(t, "St. Expeditus", result.PatronSaint)
	assert.Equal(t, "St. Expeditus is invoked for urgent causes.", result.MatchReason)

	// The discovered reason lands in the shared cache.
	cached, ok := reasons.Get("St. Expeditus")
	require.True(t, ok)
	assert.Equal(t, "St. Expeditus is invoked for urgent causes.", cached)
}

func TestMatchClient_MatchIntention_KeepsTailoredReasonForKnownSaint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"patronSaint": "St. Jude",
			"matchReason": "St. Jude walks with you through this job loss.",
			"novenaSlug": "st-jude-novena",
			"novenaTitle": "St. Jude Novena"
		}`))
	}))
	defer srv.Close()

	reasons := matching.NewReasonCache()
	result, err := newTestMatchClient(srv.URL, reasons).
		MatchIntention(context.Background(), "I just lost my job")

	require.NoError(t, err)
	assert.Equal(t, "St. Jude walks with you through this job loss.", result.MatchReason)

	// The cache keeps its seeded text; only the result is tailored.
	cached, ok := reasons.Get("St. Jude")
	require.True(t, ok)
	assert.Equal(t, "St. Jude is the patron saint of hope and impossible causes.", cached)
}

func TestMatchClient_MatchIntention_MemoizesByNormalizedText(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.Write([]byte(`{
			"patronSaint": "St. Jude",
			"novenaSlug": "st-jude-novena",
			"novenaTitle": "St. Jude Novena"
		}`))
	}))
	defer srv.Close()

	client := newTestMatchClient(srv.URL, matching.NewReasonCache())

	first, err := client.MatchIntention(context.Background(), "Help Me Please")
	require.NoError(t, err)
	second, err := client.MatchIntention(context.Background(), "  help me please  ")
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(&hits))
	assert.Equal(t, first.Entry.Slug, second.Entry.Slug)
}

func TestMatchClient_MatchIntention_IncompleteResponseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"patronSaint": "St. Jude", "novenaSlug": ""}`))
	}))
	defer srv.Close()

	_, err := newTestMatchClient(srv.URL, matching.NewReasonCache()).
		MatchIntention(context.Background(), "help me")

	assert.Error(t, err)
}

func TestMatchClient_MatchIntention_MissingReasonUsesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"patronSaint": "St. Jude",
			"novenaSlug": "st-jude-novena",
			"novenaTitle": "St. Jude Novena"
		}`))
	}))
	defer srv.Close()

	result, err := newTestMatchClient(srv.URL, matching.NewReasonCache()).
		MatchIntention(context.Background(), "help me")

	require.NoError(t, err)
	assert.Equal(t, "St. Jude is the patron saint of hope and impossible causes.", result.MatchReason)
}

func TestMatchClient_MatchIntention_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestMatchClient(srv.URL, matching.NewReasonCache()).
		MatchIntention(context.Background(), "help me")

	assert.Error(t, err)
}

func TestMatchClient_MatchIntention_UnconfiguredFailsFast(t *testing.T) {
	_, err := newTestMatchClient("", matching.NewReasonCache()).
		MatchIntention(context.Background(), "help me")

	assert.Error(t, err)
}
