package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/recommendations", Method: "POST", Limit: 5, Window: time.Minute, Burst: 2},
			{Path: "/users/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		},
	}
}

func TestLimiter_BurstThenLimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Burst capacity of 2 allows two immediate requests
	allowed, info := limiter.Allow("1.2.3.4", "/recommendations", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 5, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/recommendations", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("1.2.3.4", "/recommendations", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/recommendations", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("1.1.1.1", "/recommendations", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = limiter.Allow("2.2.2.2", "/recommendations", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/recommendations", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/recommendations", "POST")
		require.True(t, allowed)
	}

	allowed, _ := limiter.Allow("10.0.0.2", "/health", "GET")
	assert.False(t, allowed)
}

func TestLimiter_DefaultLimitForUnmatchedEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 3
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/somewhere", "GET")
		require.True(t, allowed, fmt.Sprintf("request %d", i))
		assert.Equal(t, 3, info.Limit)
	}
	allowed, _ := limiter.Allow("1.2.3.4", "/somewhere", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/recommendations", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, 60, match.Limit)

	// Prefix match picks up per-user routes
	match = MatchEndpoint("/users/123/preferences", "PUT", configs)
	require.NotNil(t, match)
	assert.Equal(t, "/users/", match.Path)

	match = MatchEndpoint("/users/123/closet", "POST", configs)
	require.NotNil(t, match)
	assert.Equal(t, "/users/", match.Path)

	// Health and metrics are unlimited
	match = MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Limit)

	match = MatchEndpoint("/metrics", "GET", configs)
	require.NotNil(t, match)
	assert.Equal(t, 0, match.Limit)

	// Unmatched routes fall through to the default
	assert.Nil(t, MatchEndpoint("/users/123/profile", "GET", configs))
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens/second so the refill is observable in a short test
	bucket := newTokenBucket(1, 100)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow())
}
