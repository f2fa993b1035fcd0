package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCache_SetAndGet(t *testing.T) {
	cache := NewInMemoryCache()

	cache.Set("key", "value", time.Minute)

	got, ok := cache.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestInMemoryCache_MissingKey(t *testing.T) {
	cache := NewInMemoryCache()

	_, ok := cache.Get("absent")

	assert.False(t, ok)
}

func TestInMemoryCache_ExpiredEntryNotServed(t *testing.T) {
	cache := NewInMemoryCache()

	cache.Set("key", "value", -time.Second)

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestInMemoryCache_Delete(t *testing.T) {
	cache := NewInMemoryCache()

	cache.Set("key", "value", time.Minute)
	cache.Delete("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
	assert.Zero(t, cache.Len())
}
