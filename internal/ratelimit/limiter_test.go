package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowWithinBurst(t *testing.T) {
	limiter := New("test", 2)

	assert.Equal(t, "test", limiter.Name())
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	// Burst exhausted, third request must wait.
	assert.False(t, limiter.Allow())
}

func TestWaitCancelled(t *testing.T) {
	limiter := NewWithBurst("slow", 1, 1)
	require.True(t, limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait for slow")
}

func TestWaitProceeds(t *testing.T) {
	limiter := New("fast", 100)
	require.NoError(t, limiter.Wait(context.Background()))
}
