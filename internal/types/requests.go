package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RecommendRequest is the payload for POST /recommendations. The user comes
// from the auth token, not from the body.
type RecommendRequest struct {
	EventType   string            `json:"event_type" validate:"required"`
	EventDate   time.Time         `json:"event_date" validate:"required"`
	Location    *Location         `json:"location" validate:"required"`
	Venue       string            `json:"venue,omitempty"`
	Preferences *StylePreferences `json:"preferences,omitempty"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdatePreferencesRequest updates a user's stored style preferences.
// Nil slices leave the stored value untouched; empty slices clear it.
type UpdatePreferencesRequest struct {
	Colors    []string `json:"colors,omitempty"`
	Styles    []string `json:"styles,omitempty"`
	Fabrics   []string `json:"fabrics,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
}

// AddClosetItemRequest adds an item to the user's closet.
type AddClosetItemRequest struct {
	Category    string `json:"category" validate:"required"`
	Subcategory string `json:"subcategory,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Color       string `json:"color,omitempty"`
	Size        string `json:"size,omitempty"`
	IsFavorite  bool   `json:"is_favorite,omitempty"`
}

// Validate validates the AddClosetItemRequest using the validator.
func (r *AddClosetItemRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// RecommendationResponse is the public result shape returned to API callers.
type RecommendationResponse struct {
	EventContext EventContextSummary `json:"event_context"`
	Weather      WeatherSummary      `json:"weather"`
	Outfits      []Outfit            `json:"outfits"`
	GeneratedAt  time.Time           `json:"generated_at"`
}

// EventContextSummary is the echo of the request included in responses.
type EventContextSummary struct {
	Type     string    `json:"type"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Vibe     Vibe      `json:"vibe"`
}
