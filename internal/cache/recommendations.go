package cache

import (
	"context"
	"log"
	"time"

	"github.com/elara/elara-outfits/internal/types"
)

// Recommendations adapts a Store to the recommendation engine's cache
// contract: read failures behave as misses and write failures are logged
// and dropped, so the engine never sees a cache error.
type Recommendations struct {
	store *Store
}

// NewRecommendations wraps a store for recommendation result caching.
func NewRecommendations(store *Store) *Recommendations {
	return &Recommendations{store: store}
}

// Get returns the cached result for key, or (nil, false) on miss or error.
func (r *Recommendations) Get(_ context.Context, key string) (*types.RecommendationResult, bool) {
	var result types.RecommendationResult
	found, err := r.store.Get(key, &result)
	if err != nil {
		log.Printf("[cache] read error treated as miss: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &result, true
}

// SetWithTTL stores a result, ignoring write failures.
func (r *Recommendations) SetWithTTL(_ context.Context, key string, result *types.RecommendationResult, ttl time.Duration) {
	if err := r.store.SetWithTTL(key, result, ttl); err != nil {
		log.Printf("[cache] write error ignored: %v", err)
	}
}
