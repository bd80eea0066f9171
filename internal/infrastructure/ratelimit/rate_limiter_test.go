package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowExhaustsBurst(t *testing.T) {
	rl := NewRateLimiter(6) // burst 2

	ok, _ := rl.Allow("u1", "create_request")
	assert.True(t, ok)
	ok, _ = rl.Allow("u1", "create_request")
	assert.True(t, ok)

	ok, wait := rl.Allow("u1", "create_request")
	assert.False(t, ok)
	assert.Greater(t, wait, time.Duration(0))

	ok, _ = rl.Allow("u1", "feedback")
	assert.True(t, ok, "actions have separate buckets")
	ok, _ = rl.Allow("u2", "create_request")
	assert.True(t, ok, "keys have separate buckets")
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(60)
	rl.Allow("u1", "x")

	rl.Cleanup(time.Hour)
	assert.Len(t, rl.buckets, 1)

	rl.buckets["u1:x"].lastSeen = time.Now().Add(-2 * time.Hour)
	rl.Cleanup(time.Hour)
	assert.Empty(t, rl.buckets)
}
