package recommend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elara/elara-outfits/internal/metrics"
	"github.com/elara/elara-outfits/internal/types"
)

const (
	// maxOutfits is how many outfits a result carries after ranking.
	maxOutfits = 5

	// resultTTL is how long a computed result stays cached.
	resultTTL = time.Hour
)

// ProfileProvider resolves the aggregated recommendation profile for a user.
// Implementations absorb their own failures: an unknown user or a storage
// error yields the default empty profile, never an error.
type ProfileProvider interface {
	RecommendationProfile(ctx context.Context, userID uuid.UUID) *types.RecommendationProfile
}

// ForecastProvider returns the weather for a location and date.
// Implementations always return a structurally valid forecast, substituting
// synthetic data on upstream failure.
type ForecastProvider interface {
	Forecast(ctx context.Context, loc types.Location, date time.Time) *types.WeatherForecast
}

// ProductProvider returns catalog products already filtered for stock,
// shipping feasibility and location availability. Failures surface as an
// empty slice.
type ProductProvider interface {
	AvailableProducts(ctx context.Context, city string, deliveryDate time.Time) []types.Product
}

// ResultCache stores computed results keyed by request fingerprint. A read
// failure behaves as a miss and a write failure is silently dropped, so the
// engine treats the cache purely as an optimization.
type ResultCache interface {
	Get(ctx context.Context, key string) (*types.RecommendationResult, bool)
	SetWithTTL(ctx context.Context, key string, result *types.RecommendationResult, ttl time.Duration)
}

// Engine sequences profile resolution, vibe inference, weather lookup,
// product scoring and outfit composition for one recommendation request.
// All per-request state is local; a single Engine serves concurrent requests.
type Engine struct {
	profiles ProfileProvider
	weather  ForecastProvider
	catalog  ProductProvider
	cache    ResultCache
}

// NewEngine creates an Engine. A nil cache disables result caching.
func NewEngine(profiles ProfileProvider, weather ForecastProvider, catalog ProductProvider, cache ResultCache) *Engine {
	if cache == nil {
		cache = nopCache{}
	}
	return &Engine{
		profiles: profiles,
		weather:  weather,
		catalog:  catalog,
		cache:    cache,
	}
}

// Generate computes ranked outfit recommendations for the event context.
// It never fails: collaborator degradation arrives as data (default profile,
// mock forecast, empty product list) and the worst case is a result with an
// empty outfit list.
func (e *Engine) Generate(ctx context.Context, ec *types.EventContext) *types.RecommendationResult {
	key := cacheKey(ec)
	if cached, ok := e.cache.Get(ctx, key); ok {
		metrics.CacheHitsTotal.Inc()
		return cached
	}
	metrics.CacheMissesTotal.Inc()

	// The three collaborator fetches are independent of each other, so they
	// run concurrently. None of them can fail; degradation arrives as data.
	var (
		profile  *types.RecommendationProfile
		forecast *types.WeatherForecast
		products []types.Product
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		profile = e.profiles.RecommendationProfile(ctx, ec.UserID)
	}()
	go func() {
		defer wg.Done()
		forecast = e.weather.Forecast(ctx, ec.Location, ec.EventDate)
	}()
	go func() {
		defer wg.Done()
		products = e.catalog.AvailableProducts(ctx, ec.Location.City, ec.EventDate)
	}()
	vibe := InferVibe(ec.EventType, ec.Venue)
	wg.Wait()

	bucket := CategorizeTemperature(forecast.Temperature)

	scored := ScoreProducts(products, ScoringContext{
		Profile:     profile,
		Vibe:        vibe,
		Weather:     forecast,
		TempBucket:  bucket,
		EventType:   ec.EventType,
		Preferences: ec.Preferences,
	})

	outfits := ComposeOutfits(scored, ComposeContext{
		Vibe:      vibe,
		Weather:   forecast,
		EventType: ec.EventType,
		Profile:   profile,
	})
	if len(outfits) > maxOutfits {
		outfits = outfits[:maxOutfits]
	}

	result := &types.RecommendationResult{
		Vibe: vibe,
		Weather: types.WeatherSummary{
			Temperature:   forecast.Temperature,
			Condition:     forecast.Condition,
			Precipitation: forecast.Precipitation,
		},
		Outfits: outfits,
	}

	e.cache.SetWithTTL(ctx, key, result, resultTTL)
	metrics.RecommendationsTotal.Inc()

	return result
}

// cacheKey is the deterministic request fingerprint. Two requests for the
// same user, event type, date and city share a cache entry.
func cacheKey(ec *types.EventContext) string {
	return fmt.Sprintf("recommendations:%s:%s:%s:%s",
		ec.UserID, ec.EventType, ec.EventDate.Format("2006-01-02"), ec.Location.City)
}

// nopCache is the no-op cache used when caching is disabled.
type nopCache struct{}

func (nopCache) Get(context.Context, string) (*types.RecommendationResult, bool) { return nil, false }

func (nopCache) SetWithTTL(context.Context, string, *types.RecommendationResult, time.Duration) {}
