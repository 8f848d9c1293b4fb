// Package profile aggregates stored style preferences and closet contents
// into the recommendation profile consumed by the engine.
package profile

import (
	"context"
	"fmt"
	"log"

	"github.com/elara/elara-outfits/internal/db"
	"github.com/elara/elara-outfits/internal/types"
	"github.com/google/uuid"
)

// Store is the subset of database operations the profile service needs
type Store interface {
	GetStylePreferences(ctx context.Context, userID uuid.UUID) (*db.StylePreferences, error)
	ListClosetItems(ctx context.Context, userID uuid.UUID) ([]db.ClosetItem, error)
}

// Service builds recommendation profiles from stored user data
type Service struct {
	store Store
}

// NewService creates a profile service backed by the given store
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Build aggregates a user's preferences and closet into a recommendation
// profile. Users with no saved preferences and an empty closet get the
// default profile.
func (s *Service) Build(ctx context.Context, userID uuid.UUID) (*types.RecommendationProfile, error) {
	prefs, err := s.store.GetStylePreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load style preferences: %w", err)
	}

	items, err := s.store.ListClosetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load closet items: %w", err)
	}

	if prefs == nil && len(items) == 0 {
		return types.DefaultRecommendationProfile(userID), nil
	}

	p := types.DefaultRecommendationProfile(userID)
	p.Source = types.ProfileFound

	if prefs != nil {
		p.Preferences = types.StylePreferences{
			Colors:    orEmpty(prefs.Colors),
			Styles:    orEmpty(prefs.Styles),
			Fabrics:   orEmpty(prefs.Fabrics),
			Occasions: orEmpty(prefs.Occasions),
		}
		p.BodyType = prefs.BodyType
		p.Sizes = types.SizeInfo{
			Top:    prefs.TopSize,
			Bottom: prefs.BottomSize,
			Shoe:   prefs.ShoeSize,
		}
	}

	p.ClosetSummary = summarizeCloset(items)
	return p, nil
}

// RecommendationProfile implements the engine's profile provider. Lookup
// failures degrade to the default profile so a recommendation is always
// produced.
func (s *Service) RecommendationProfile(ctx context.Context, userID uuid.UUID) *types.RecommendationProfile {
	p, err := s.Build(ctx, userID)
	if err != nil {
		log.Printf("[profile] falling back to default profile for %s: %v", userID, err)
		return types.DefaultRecommendationProfile(userID)
	}
	return p
}

func summarizeCloset(items []db.ClosetItem) types.ClosetSummary {
	summary := types.ClosetSummary{
		TotalItems: len(items),
		Categories: make(map[string]int),
		Colors:     []string{},
		Brands:     []string{},
	}

	seenColors := make(map[string]bool)
	seenBrands := make(map[string]bool)
	for _, item := range items {
		cat := item.Category
		if cat == "" {
			cat = "other"
		}
		summary.Categories[cat]++

		if item.Color != "" && !seenColors[item.Color] {
			seenColors[item.Color] = true
			summary.Colors = append(summary.Colors, item.Color)
		}
		if item.Brand != "" && !seenBrands[item.Brand] {
			seenBrands[item.Brand] = true
			summary.Brands = append(summary.Brands, item.Brand)
		}
	}
	return summary
}

func orEmpty(a db.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return a
}
