package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elara/elara-outfits/internal/types"
)

func TestCategorizeTemperature_Buckets(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  types.TemperatureBucket
	}{
		{"heat wave", 35, types.BucketHot},
		{"hot boundary", 25.0, types.BucketHot},
		{"just under hot", 24.999, types.BucketWarm},
		{"warm boundary", 18.0, types.BucketWarm},
		{"mild boundary", 12.0, types.BucketMild},
		{"cool boundary", 5.0, types.BucketCool},
		{"just under cool", 4.999, types.BucketCold},
		{"freezing", -10, types.BucketCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeTemperature(tt.tempC))
		})
	}
}

func TestCategorizeTemperature_TotalOverRange(t *testing.T) {
	known := map[types.TemperatureBucket]bool{
		types.BucketHot:  true,
		types.BucketWarm: true,
		types.BucketMild: true,
		types.BucketCool: true,
		types.BucketCold: true,
	}

	for tempC := -60.0; tempC <= 60.0; tempC += 0.25 {
		bucket := CategorizeTemperature(tempC)
		assert.True(t, known[bucket], "temperature %v produced unknown bucket %q", tempC, bucket)
	}
}

func TestStyleTags_PerBucket(t *testing.T) {
	assert.Equal(t, []string{"light", "breathable", "summer"}, StyleTags(types.BucketHot))
	assert.Equal(t, []string{"light", "transitional"}, StyleTags(types.BucketWarm))
	assert.Equal(t, []string{"layered", "transitional"}, StyleTags(types.BucketMild))
	assert.Equal(t, []string{"layered", "warm"}, StyleTags(types.BucketCool))
	assert.Equal(t, []string{"winter", "warm", "insulated"}, StyleTags(types.BucketCold))
}
