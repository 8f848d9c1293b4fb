package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elara/elara-outfits/internal/types"
)

const (
	// colorCoordinationBonus is added to an outfit's mean item score when the
	// outfit uses at most maxCoordinatedColors distinct colors.
	colorCoordinationBonus = 10
	maxCoordinatedColors   = 3

	// maxExplanationReasons caps how many item reasons the explanation quotes.
	maxExplanationReasons = 3
)

// vibeStructures lists the category templates tried for one vibe, in the
// order they are attempted. Ties on total score preserve this order.
type vibeStructures struct {
	vibe       types.Vibe
	structures [][]string
}

// outfitStructures is an ordered table, not a map: template order is part of
// the contract. Vibes without an entry borrow casual's structures.
var outfitStructures = []vibeStructures{
	{types.VibeCasual, [][]string{
		{"top", "bottom", "shoes"},
		{"dress", "shoes", "accessory"},
		{"top", "jeans", "sneakers"},
	}},
	{types.VibeCasualChic, [][]string{
		{"blouse", "trousers", "heels"},
		{"dress", "jacket", "shoes"},
		{"top", "skirt", "boots"},
	}},
	{types.VibeSmartCasual, [][]string{
		{"shirt", "chinos", "loafers"},
		{"blouse", "skirt", "heels"},
		{"blazer", "jeans", "shoes"},
	}},
	{types.VibeFormal, [][]string{
		{"suit", "dress-shirt", "dress-shoes"},
		{"dress", "heels", "clutch"},
		{"blazer", "trousers", "dress-shoes"},
	}},
	{types.VibeBusinessFormal, [][]string{
		{"suit", "dress-shirt", "tie", "dress-shoes"},
		{"blazer", "skirt", "blouse", "heels"},
	}},
	{types.VibeTrendy, [][]string{
		{"statement-top", "jeans", "heels"},
		{"dress", "jacket", "boots"},
		{"crop-top", "skirt", "sneakers"},
	}},
	{types.VibeParty, [][]string{
		{"party-dress", "heels", "clutch"},
		{"sequin-top", "leather-pants", "heels"},
		{"jumpsuit", "heels", "statement-earrings"},
	}},
}

// structuresFor returns the outfit templates for a vibe, falling back to the
// casual templates for vibes absent from the table.
func structuresFor(vibe types.Vibe) [][]string {
	var casual [][]string
	for _, entry := range outfitStructures {
		if entry.vibe == vibe {
			return entry.structures
		}
		if entry.vibe == types.VibeCasual {
			casual = entry.structures
		}
	}
	return casual
}

// ComposeContext carries the request facts an outfit explanation refers to.
type ComposeContext struct {
	Vibe      types.Vibe
	Weather   *types.WeatherForecast
	EventType string
	Profile   *types.RecommendationProfile
}

// ComposeOutfits assembles the vibe's category templates into complete
// outfits from the scored products, greedily taking the top-scored product
// per category. Templates with an empty category slot yield no outfit.
// Results are stable-sorted by total score descending.
func ComposeOutfits(scored []types.ScoredProduct, cctx ComposeContext) []types.Outfit {
	byCategory := make(map[string][]types.ScoredProduct)
	for _, sp := range scored {
		byCategory[sp.Category] = append(byCategory[sp.Category], sp)
	}

	var outfits []types.Outfit
	for _, structure := range structuresFor(cctx.Vibe) {
		outfit, ok := buildOutfit(structure, byCategory)
		if !ok {
			continue
		}
		outfit.TotalScore = outfitScore(outfit.Items)
		outfit.Explanation = explain(outfit.Items, cctx)
		outfits = append(outfits, outfit)
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].TotalScore > outfits[j].TotalScore
	})

	return outfits
}

// buildOutfit fills every slot of a structure with the best product in that
// category. A single empty category abandons the whole structure.
func buildOutfit(structure []string, byCategory map[string][]types.ScoredProduct) (types.Outfit, bool) {
	items := make([]types.ScoredProduct, 0, len(structure))
	for _, category := range structure {
		available := byCategory[category]
		if len(available) == 0 {
			return types.Outfit{}, false
		}
		items = append(items, available[0])
	}
	return types.Outfit{Items: items, Structure: structure}, true
}

// outfitScore is the mean item score plus the color-coordination bonus when
// the outfit stays within the coordinated color limit.
func outfitScore(items []types.ScoredProduct) float64 {
	sum := 0
	colors := make(map[string]struct{}, len(items))
	for _, item := range items {
		sum += item.Score
		colors[item.Color] = struct{}{}
	}

	score := float64(sum) / float64(len(items))
	if len(colors) <= maxCoordinatedColors {
		score += colorCoordinationBonus
	}
	return score
}

// explain concatenates the first few distinct item reasons into a sentence.
// Deduplication keeps the order of first appearance.
func explain(items []types.ScoredProduct, cctx ComposeContext) string {
	seen := make(map[string]struct{})
	var reasons []string
	for _, item := range items {
		for _, reason := range item.Reasons {
			if _, dup := seen[reason]; dup {
				continue
			}
			seen[reason] = struct{}{}
			reasons = append(reasons, reason)
		}
	}
	if len(reasons) > maxExplanationReasons {
		reasons = reasons[:maxExplanationReasons]
	}

	return fmt.Sprintf("This outfit is perfect for your %s %s. %s.",
		cctx.Vibe, cctx.EventType, strings.Join(reasons, ". "))
}
