// Package metrics exposes Prometheus counters for the recommendation service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecommendationsTotal counts recommendation results computed from scratch.
	RecommendationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfits_recommendations_generated_total",
		Help: "Number of recommendation results computed (cache misses).",
	})

	// CacheHitsTotal counts recommendation requests served from the result cache.
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfits_recommendation_cache_hits_total",
		Help: "Number of recommendation requests served from cache.",
	})

	// CacheMissesTotal counts recommendation requests that missed the result cache.
	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfits_recommendation_cache_misses_total",
		Help: "Number of recommendation requests that missed the cache.",
	})

	// WeatherFallbacksTotal counts forecasts served from synthetic data after
	// an upstream failure.
	WeatherFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "outfits_weather_mock_fallbacks_total",
		Help: "Number of forecasts substituted with mock data.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
