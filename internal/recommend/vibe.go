// Package recommend implements the outfit recommendation engine: vibe
// inference, temperature bucketing, product scoring and outfit composition.
package recommend

import (
	"strings"

	"github.com/elara/elara-outfits/internal/types"
)

// vibeKeyword associates a venue/event keyword with the vibe it implies.
type vibeKeyword struct {
	keyword string
	vibe    types.Vibe
}

// vibeKeywords is scanned in declared order and the first substring match
// wins, so "rooftop bar" resolves via "rooftop" to trendy before "bar" is
// ever considered. Keep the order intact when adding entries.
var vibeKeywords = []vibeKeyword{
	{"café", types.VibeCasual},
	{"coffee shop", types.VibeCasual},
	{"park", types.VibeCasual},
	{"brunch", types.VibeCasualChic},
	{"restaurant", types.VibeSmartCasual},
	{"office", types.VibeFormal},
	{"conference", types.VibeBusinessFormal},
	{"rooftop", types.VibeTrendy},
	{"bar", types.VibeTrendy},
	{"club", types.VibeParty},
	{"wedding", types.VibeFormal},
	{"dinner", types.VibeSmartCasual},
	{"party", types.VibeParty},
}

// InferVibe maps an event type and optional venue to a vibe. The venue, when
// present, takes precedence over the event type as the search string. Events
// matching no keyword default to casual.
func InferVibe(eventType, venue string) types.Vibe {
	search := venue
	if search == "" {
		search = eventType
	}
	search = strings.ToLower(search)

	for _, entry := range vibeKeywords {
		if strings.Contains(search, entry.keyword) {
			return entry.vibe
		}
	}

	return types.VibeCasual
}
