package recommend

import (
	"fmt"
	"sort"

	"github.com/elara/elara-outfits/internal/types"
)

// Point weights for the five scoring signals. Each signal fires at most once
// per product and evaluates independently of the others; the maximum
// attainable score is the sum, 100.
const (
	colorMatchPoints    = 30
	occasionMatchPoints = 25
	weatherMatchPoints  = 25
	fabricMatchPoints   = 10
	trendingPoints      = 10
)

// ScoringContext carries everything a product is scored against.
type ScoringContext struct {
	Profile     *types.RecommendationProfile
	Vibe        types.Vibe
	Weather     *types.WeatherForecast
	TempBucket  types.TemperatureBucket
	EventType   string
	Preferences *types.StylePreferences // request-level overrides, passed through from the event context
}

// ScoreProducts assigns each product a relevance score out of 100 plus a
// reason string per signal that fired, and returns the annotated copies
// stable-sorted by score descending. Equal-scored products keep their
// catalog order. The input slice is never mutated.
func ScoreProducts(products []types.Product, sctx ScoringContext) []types.ScoredProduct {
	weatherTags := StyleTags(sctx.TempBucket)

	scored := make([]types.ScoredProduct, 0, len(products))
	for _, p := range products {
		sp := types.ScoredProduct{Product: p, Reasons: []string{}}

		if containsString(sctx.Profile.Preferences.Colors, p.Color) {
			sp.Score += colorMatchPoints
			sp.Reasons = append(sp.Reasons, fmt.Sprintf("Matches your color preference: %s", p.Color))
		}

		if containsString(p.Occasions, string(sctx.Vibe)) || containsString(p.Occasions, sctx.EventType) {
			sp.Score += occasionMatchPoints
			sp.Reasons = append(sp.Reasons, fmt.Sprintf("Perfect for %s %s", sctx.Vibe, sctx.EventType))
		}

		if anyCommon(p.Tags, weatherTags) {
			sp.Score += weatherMatchPoints
			sp.Reasons = append(sp.Reasons,
				fmt.Sprintf("Suitable for %s weather (%g°C)", sctx.Weather.Condition, sctx.Weather.Temperature))
		}

		if containsString(sctx.Profile.Preferences.Fabrics, p.Fabric) {
			sp.Score += fabricMatchPoints
			sp.Reasons = append(sp.Reasons, fmt.Sprintf("Your preferred fabric: %s", p.Fabric))
		}

		if p.IsTrending {
			sp.Score += trendingPoints
			sp.Reasons = append(sp.Reasons, "Currently trending")
		}

		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// anyCommon reports whether the two slices share at least one element.
func anyCommon(a, b []string) bool {
	for _, s := range a {
		if containsString(b, s) {
			return true
		}
	}
	return false
}
