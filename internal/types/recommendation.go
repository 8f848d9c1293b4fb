// Package types provides type definitions for structured data used throughout the outfit recommendation system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Vibe is the style register inferred for an event. The set is closed;
// the classifier never produces a value outside these constants.
type Vibe string

// Known vibes, from most relaxed to most dressed up.
const (
	VibeCasual         Vibe = "casual"
	VibeCasualChic     Vibe = "casual-chic"
	VibeSmartCasual    Vibe = "smart-casual"
	VibeFormal         Vibe = "formal"
	VibeBusinessFormal Vibe = "business-formal"
	VibeTrendy         Vibe = "trendy"
	VibeParty          Vibe = "party"
)

// TemperatureBucket is a style-relevant temperature range.
type TemperatureBucket string

// Temperature buckets, warmest first. Boundary temperatures resolve to the
// warmer bucket (25.0 is hot, 4.999 is cold).
const (
	BucketHot  TemperatureBucket = "hot"
	BucketWarm TemperatureBucket = "warm"
	BucketMild TemperatureBucket = "mild"
	BucketCool TemperatureBucket = "cool"
	BucketCold TemperatureBucket = "cold"
)

// WeatherCondition is the simplified sky condition used by the scorer's reason strings.
type WeatherCondition string

// Weather conditions supported by the forecast provider.
const (
	ConditionSunny  WeatherCondition = "sunny"
	ConditionCloudy WeatherCondition = "cloudy"
	ConditionRainy  WeatherCondition = "rainy"
	ConditionSnowy  WeatherCondition = "snowy"
	ConditionStormy WeatherCondition = "stormy"
)

// ForecastSource records where a forecast came from.
type ForecastSource string

// Forecast provenance values.
const (
	ForecastLive ForecastSource = "live"
	ForecastMock ForecastSource = "mock"
)

// WeatherForecast is an external fact about the event day. The engine treats
// it as opaque input and never inspects IsMock.
type WeatherForecast struct {
	Temperature   float64          `json:"temperature"` // °C
	Condition     WeatherCondition `json:"condition"`
	Description   string           `json:"description,omitempty"`
	Precipitation float64          `json:"precipitation"` // chance of rain, 0-100
	Humidity      float64          `json:"humidity"`
	WindSpeed     float64          `json:"wind_speed"`
	IsMock        bool             `json:"is_mock"`
}

// Source returns the provenance of the forecast.
func (f *WeatherForecast) Source() ForecastSource {
	if f.IsMock {
		return ForecastMock
	}
	return ForecastLive
}

// Location identifies where an event takes place.
type Location struct {
	City string `json:"city" validate:"required"`
}

// EventContext is the immutable input to one recommendation request.
type EventContext struct {
	UserID      uuid.UUID         `json:"user_id"`
	EventType   string            `json:"event_type" validate:"required"`
	EventDate   time.Time         `json:"event_date" validate:"required"`
	Location    Location          `json:"location" validate:"required"`
	Venue       string            `json:"venue,omitempty"`
	Preferences *StylePreferences `json:"preferences,omitempty"` // request-level overrides, optional
}

// StylePreferences groups a user's declared taste.
type StylePreferences struct {
	Colors    []string `json:"colors"`
	Styles    []string `json:"styles"`
	Fabrics   []string `json:"fabrics"`
	Occasions []string `json:"occasions"`
}

// ClosetSummary aggregates what the user already owns.
type ClosetSummary struct {
	TotalItems int            `json:"total_items"`
	Categories map[string]int `json:"categories"`
	Colors     []string       `json:"colors"`
	Brands     []string       `json:"brands"`
}

// SizeInfo holds the user's size preferences.
type SizeInfo struct {
	Top    string `json:"top_size,omitempty"`
	Bottom string `json:"bottom_size,omitempty"`
	Shoe   string `json:"shoe_size,omitempty"`
}

// ProfileSource records whether a recommendation profile was loaded or defaulted.
type ProfileSource string

// Profile provenance values.
const (
	ProfileFound   ProfileSource = "found"
	ProfileDefault ProfileSource = "default"
)

// RecommendationProfile is the aggregated user view the engine scores against.
// It is derived from persisted data and read-only to the engine.
type RecommendationProfile struct {
	UserID        uuid.UUID        `json:"user_id"`
	Source        ProfileSource    `json:"source"`
	Preferences   StylePreferences `json:"preferences"`
	ClosetSummary ClosetSummary    `json:"closet_summary"`
	BodyType      string           `json:"body_type,omitempty"`
	Sizes         SizeInfo         `json:"size_preferences"`
}

// DefaultRecommendationProfile returns the well-defined empty profile served
// for unknown users. All preference sets are empty and the closet is zeroed,
// so the engine scores against it without branching.
func DefaultRecommendationProfile(userID uuid.UUID) *RecommendationProfile {
	return &RecommendationProfile{
		UserID: userID,
		Source: ProfileDefault,
		Preferences: StylePreferences{
			Colors:    []string{},
			Styles:    []string{},
			Fabrics:   []string{},
			Occasions: []string{},
		},
		ClosetSummary: ClosetSummary{
			Categories: map[string]int{},
			Colors:     []string{},
			Brands:     []string{},
		},
	}
}

// Product is an immutable catalog record. The engine only annotates copies,
// never the catalog itself.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name,omitempty"`
	Category           string   `json:"category"`
	Color              string   `json:"color"`
	Fabric             string   `json:"fabric,omitempty"`
	Tags               []string `json:"tags"`
	Occasions          []string `json:"occasions"`
	IsTrending         bool     `json:"is_trending"`
	ShippingDays       int      `json:"shipping_days"`
	AvailableLocations []string `json:"available_locations,omitempty"`
	InStock            bool     `json:"in_stock"`
}

// ScoredProduct is a product annotated with its relevance score and the
// reasons each scoring signal fired. Score is the sum of independent weighted
// contributions and stays within [0,100].
type ScoredProduct struct {
	Product
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Outfit is a complete, fully filled combination of scored products.
// len(Items) == len(Structure) always holds; a combination with an unfilled
// slot is never constructed.
type Outfit struct {
	Items       []ScoredProduct `json:"items"`
	Structure   []string        `json:"structure"`
	TotalScore  float64         `json:"total_score"`
	Explanation string          `json:"explanation"`
}

// WeatherSummary is the trimmed weather block included in results.
type WeatherSummary struct {
	Temperature   float64          `json:"temperature"`
	Condition     WeatherCondition `json:"condition"`
	Precipitation float64          `json:"precipitation"`
}

// RecommendationResult is what the engine produces for one event context.
type RecommendationResult struct {
	Vibe    Vibe           `json:"vibe"`
	Weather WeatherSummary `json:"weather"`
	Outfits []Outfit       `json:"outfits"`
}
