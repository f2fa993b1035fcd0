package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalogClient(url string) *CatalogClient {
	return NewCatalogClient(url, "/rest/v1/novenas", "anon-key",
		NewServiceSession("service-key"), 2*time.Second, zap.NewNop())
}

func TestCatalogClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"slug":"st-jude-novena","title":"St. Jude Novena","category":"saints"},
			{"slug":"novena-for-healing","title":"Novena for Healing","category":"intentions"}
		]`))
	}))
	defer srv.Close()

	catalog, err := newTestCatalogClient(srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "st-jude-novena", catalog[0].Slug)
}

func TestCatalogClient_Fetch_DropsInvalidEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"slug":"","title":"No Slug","category":"saints"},
			{"slug":"st-rita-novena","title":"St. Rita Novena","category":"seasonal"}
		]`))
	}))
	defer srv.Close()

	catalog, err := newTestCatalogClient(srv.URL).Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "st-rita-novena", catalog[0].Slug)
	// Unknown category normalized, not dropped.
	assert.Equal(t, "other", string(catalog[0].Category))
}

func TestCatalogClient_Fetch_AllInvalidIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"slug":"","title":""}]`))
	}))
	defer srv.Close()

	_, err := newTestCatalogClient(srv.URL).Fetch(context.Background())

	assert.Error(t, err)
}

func TestCatalogClient_Fetch_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestCatalogClient(srv.URL).Fetch(context.Background())

	assert.Error(t, err)
}

func TestCatalogClient_Fetch_UnconfiguredFailsFast(t *testing.T) {
	_, err := newTestCatalogClient("").Fetch(context.Background())

	assert.Error(t, err)
}

func TestCatalogClient_Fetch_MissingSessionIsFailure(t *testing.T) {
	client := NewCatalogClient("http://localhost:1", "/rest/v1/novenas", "anon-key",
		NewServiceSession(""), time.Second, zap.NewNop())

	_, err := client.Fetch(context.Background())

	assert.ErrorIs(t, err, ErrNoSession)
}
