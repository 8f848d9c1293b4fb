package weather

import (
	"hash/fnv"
	"time"

	"github.com/elara/elara-outfits/internal/types"
)

// season groups the baseline conditions mock forecasts are built from.
type season struct {
	temp         float64
	condition    types.WeatherCondition
	description  string
	maxPrecipPct uint32
}

var seasons = map[string]season{
	"winter": {8, types.ConditionCloudy, "overcast clouds", 20},
	"spring": {18, types.ConditionSunny, "clear sky", 20},
	"summer": {28, types.ConditionSunny, "sunny", 20},
	"fall":   {15, types.ConditionRainy, "light rain", 60},
}

// MockForecast builds a synthetic seasonal forecast for a city and date.
// The jitter is derived from a hash of (city, date) rather than a random
// source, so repeated calls for the same request are identical.
func MockForecast(loc types.Location, date time.Time) *types.WeatherForecast {
	s := seasons[seasonFor(date.Month())]

	h := fnv.New32a()
	_, _ = h.Write([]byte(loc.City))
	_, _ = h.Write([]byte(date.Format("2006-01-02")))
	sum := h.Sum32()

	return &types.WeatherForecast{
		Temperature:   s.temp + float64(sum%5) - 2, // ±2°C around the seasonal baseline
		Condition:     s.condition,
		Description:   s.description,
		Precipitation: float64((sum >> 8) % s.maxPrecipPct),
		Humidity:      50 + float64((sum>>16)%30),
		WindSpeed:     5 + float64((sum>>24)%10),
		IsMock:        true,
	}
}

func seasonFor(month time.Month) string {
	switch {
	case month < time.April || month > time.November:
		return "winter"
	case month < time.July:
		return "spring"
	case month < time.October:
		return "summer"
	default:
		return "fall"
	}
}
