package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elara/elara-outfits/internal/types"
)

func TestInferVibe_KeywordMatches(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		venue     string
		want      types.Vibe
	}{
		{"cafe venue", "meetup", "Café Central", types.VibeCasual},
		{"office event type", "office party planning", "", types.VibeFormal},
		{"wedding", "wedding", "", types.VibeFormal},
		{"club venue", "night out", "Club Neon", types.VibeParty},
		{"brunch", "brunch", "", types.VibeCasualChic},
		{"restaurant venue", "date", "Luigi's Restaurant", types.VibeSmartCasual},
		{"conference", "conference", "", types.VibeBusinessFormal},
		{"dinner event", "dinner", "", types.VibeSmartCasual},
		{"party event", "party", "", types.VibeParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferVibe(tt.eventType, tt.venue))
		})
	}
}

func TestInferVibe_VenueTakesPrecedenceOverEventType(t *testing.T) {
	// The venue names a casual place even though the event type says dinner.
	assert.Equal(t, types.VibeCasual, InferVibe("dinner", "Riverside Park"))
}

func TestInferVibe_RooftopBarMatchesRooftopFirst(t *testing.T) {
	// "Rooftop Bar" contains both "rooftop" and "bar"; the table order makes
	// "rooftop" win. Both map to trendy today, so this test pins the order
	// against a future divergence of the two entries.
	assert.Equal(t, types.VibeTrendy, InferVibe("dinner", "Rooftop Bar"))
}

func TestInferVibe_TableOrderIsDeclarative(t *testing.T) {
	// "Office Park Café" contains "office", "park" and "café". The earliest
	// table entry wins: café precedes office and park, so the match is casual.
	assert.Equal(t, types.VibeCasual, InferVibe("meeting", "Office Park Café"))
}

func TestInferVibe_CaseInsensitive(t *testing.T) {
	assert.Equal(t, types.VibeParty, InferVibe("", "CLUB HALCYON"))
}

func TestInferVibe_NoMatchDefaultsToCasual(t *testing.T) {
	assert.Equal(t, types.VibeCasual, InferVibe("quiet evening at home", ""))
	assert.Equal(t, types.VibeCasual, InferVibe("dinner", "Chez Unpronounceable"))
}
