package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elara/elara-outfits/internal/types"
)

type stubProfiles struct {
	profile *types.RecommendationProfile
}

func (s *stubProfiles) RecommendationProfile(_ context.Context, userID uuid.UUID) *types.RecommendationProfile {
	if s.profile != nil {
		return s.profile
	}
	return types.DefaultRecommendationProfile(userID)
}

type stubWeather struct {
	forecast types.WeatherForecast
}

func (s *stubWeather) Forecast(context.Context, types.Location, time.Time) *types.WeatherForecast {
	f := s.forecast
	return &f
}

type stubCatalog struct {
	products []types.Product
	calls    int
}

func (s *stubCatalog) AvailableProducts(context.Context, string, time.Time) []types.Product {
	s.calls++
	return s.products
}

type memoryCache struct {
	entries map[string]*types.RecommendationResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*types.RecommendationResult)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*types.RecommendationResult, bool) {
	result, ok := c.entries[key]
	return result, ok
}

func (c *memoryCache) SetWithTTL(_ context.Context, key string, result *types.RecommendationResult, _ time.Duration) {
	c.entries[key] = result
}

func warmProducts() []types.Product {
	return []types.Product{
		{ID: "t1", Category: "top", Color: "black", Tags: []string{"light"}, Occasions: []string{"dinner"}},
		{ID: "b1", Category: "bottom", Color: "black", Tags: []string{"transitional"}},
		{ID: "s1", Category: "shoes", Color: "white", IsTrending: true},
		{ID: "d1", Category: "dress", Color: "red", Occasions: []string{"smart-casual"}},
		{ID: "a1", Category: "accessory", Color: "gold"},
		{ID: "j1", Category: "jeans", Color: "blue"},
		{ID: "sn1", Category: "sneakers", Color: "white"},
	}
}

func testEventContext() *types.EventContext {
	return &types.EventContext{
		UserID:    uuid.MustParse("00000000-0000-0000-0000-000000000042"),
		EventType: "dinner",
		EventDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:  types.Location{City: "Paris"},
	}
}

func TestEngineGenerate_FullFlow(t *testing.T) {
	catalog := &stubCatalog{products: warmProducts()}
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 20, Condition: types.ConditionSunny, Precipitation: 10}},
		catalog,
		newMemoryCache(),
	)

	result := engine.Generate(context.Background(), testEventContext())
	require.NotNil(t, result)

	assert.Equal(t, types.VibeSmartCasual, result.Vibe)
	assert.Equal(t, 20.0, result.Weather.Temperature)
	assert.Equal(t, types.ConditionSunny, result.Weather.Condition)
	assert.Equal(t, 10.0, result.Weather.Precipitation)
	assert.NotEmpty(t, result.Outfits)
	assert.LessOrEqual(t, len(result.Outfits), 5)
}

func TestEngineGenerate_CacheHitReturnsStoredResultVerbatim(t *testing.T) {
	catalog := &stubCatalog{products: warmProducts()}
	cache := newMemoryCache()
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 20, Condition: types.ConditionSunny}},
		catalog,
		cache,
	)

	ec := testEventContext()
	first := engine.Generate(context.Background(), ec)
	require.NotEmpty(t, first.Outfits)

	// The catalog changes between calls; the cached result must win anyway.
	catalog.products = nil
	second := engine.Generate(context.Background(), ec)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, catalog.calls)
}

func TestEngineGenerate_DistinctFingerprintsDoNotShareCache(t *testing.T) {
	catalog := &stubCatalog{products: warmProducts()}
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 20, Condition: types.ConditionSunny}},
		catalog,
		newMemoryCache(),
	)

	ec := testEventContext()
	_ = engine.Generate(context.Background(), ec)

	other := testEventContext()
	other.Location.City = "Lyon"
	_ = engine.Generate(context.Background(), other)

	assert.Equal(t, 2, catalog.calls)
}

func TestEngineGenerate_EmptyCatalogYieldsEmptyOutfits(t *testing.T) {
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 20, Condition: types.ConditionSunny}},
		&stubCatalog{},
		nil,
	)

	result := engine.Generate(context.Background(), testEventContext())
	require.NotNil(t, result)
	assert.Empty(t, result.Outfits)
}

func TestEngineGenerate_MockForecastHandledLikeLive(t *testing.T) {
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 8, Condition: types.ConditionCloudy, IsMock: true}},
		&stubCatalog{products: warmProducts()},
		nil,
	)

	result := engine.Generate(context.Background(), testEventContext())
	require.NotNil(t, result)
	assert.Equal(t, 8.0, result.Weather.Temperature)
}

func TestEngineGenerate_TruncatesToTopFive(t *testing.T) {
	// A party vibe has three structures; casual has three. Build a catalog
	// where every casual structure fills, then verify the slice cap holds
	// even when composition returns fewer than the cap.
	engine := NewEngine(
		&stubProfiles{},
		&stubWeather{forecast: types.WeatherForecast{Temperature: 20, Condition: types.ConditionSunny}},
		&stubCatalog{products: warmProducts()},
		nil,
	)

	ec := testEventContext()
	ec.EventType = "picnic" // no keyword: casual vibe
	result := engine.Generate(context.Background(), ec)

	assert.LessOrEqual(t, len(result.Outfits), 5)
}

func TestCacheKey_Deterministic(t *testing.T) {
	ec := testEventContext()
	assert.Equal(t,
		"recommendations:00000000-0000-0000-0000-000000000042:dinner:2024-06-01:Paris",
		cacheKey(ec))
	assert.Equal(t, cacheKey(ec), cacheKey(testEventContext()))
}
