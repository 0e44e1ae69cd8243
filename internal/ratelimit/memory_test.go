package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_EnforcesLimitPerKey(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute)
	ctx := context.Background()

	require.NoError(t, limiter.Allow(ctx, "1.2.3.4"))
	require.NoError(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.ErrorIs(t, limiter.Allow(ctx, "1.2.3.4"), ErrLimitExceeded)

	// other clients are unaffected
	assert.NoError(t, limiter.Allow(ctx, "5.6.7.8"))
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	limiter := NewMemoryLimiter(1, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, limiter.Allow(ctx, "1.2.3.4"))
	require.ErrorIs(t, limiter.Allow(ctx, "1.2.3.4"), ErrLimitExceeded)

	time.Sleep(15 * time.Millisecond)
	assert.NoError(t, limiter.Allow(ctx, "1.2.3.4"))
}
