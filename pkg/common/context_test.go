package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_UserAndRequestID(t *testing.T) {
	ctx := WithUserID(context.Background(), "user-123")
	ctx = WithRequestID(ctx, "req-456")

	userID, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-123", userID)

	requestID, ok := GetRequestID(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-456", requestID)

	_, ok = GetUserID(context.Background())
	assert.False(t, ok)
}

func TestGetElapsedTime(t *testing.T) {
	ctx := WithStartTime(context.Background(), time.Now().Add(-time.Second))

	assert.GreaterOrEqual(t, GetElapsedTime(ctx), time.Second)
	assert.Zero(t, GetElapsedTime(context.Background()))
}
