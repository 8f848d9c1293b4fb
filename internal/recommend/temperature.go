package recommend

import "github.com/elara/elara-outfits/internal/types"

// temperatureRange couples a bucket's lower bound (°C, inclusive) with the
// style tags appropriate for it. Ranges are evaluated warmest first; the
// first bound at or below the temperature wins, so boundary values resolve
// to the warmer bucket. The final entry has no bound and catches everything
// else, making the categorizer total over the real line.
type temperatureRange struct {
	min    float64
	bucket types.TemperatureBucket
	styles []string
}

var temperatureRanges = []temperatureRange{
	{25, types.BucketHot, []string{"light", "breathable", "summer"}},
	{18, types.BucketWarm, []string{"light", "transitional"}},
	{12, types.BucketMild, []string{"layered", "transitional"}},
	{5, types.BucketCool, []string{"layered", "warm"}},
}

var coldStyles = []string{"winter", "warm", "insulated"}

// CategorizeTemperature maps a temperature in °C to its style bucket.
func CategorizeTemperature(tempC float64) types.TemperatureBucket {
	for _, r := range temperatureRanges {
		if tempC >= r.min {
			return r.bucket
		}
	}
	return types.BucketCold
}

// StyleTags returns the product style tags considered weather-appropriate
// for the given bucket.
func StyleTags(bucket types.TemperatureBucket) []string {
	for _, r := range temperatureRanges {
		if r.bucket == bucket {
			return r.styles
		}
	}
	return coldStyles
}
