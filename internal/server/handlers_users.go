package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/elara/elara-outfits/internal/db"
	"github.com/elara/elara-outfits/internal/server/middleware"
	"github.com/elara/elara-outfits/internal/types"
	"github.com/google/uuid"
)

// ProfileStore is the subset of database operations the profile endpoints
// need. Satisfied by *db.DB.
type ProfileStore interface {
	GetStylePreferences(ctx context.Context, userID uuid.UUID) (*db.StylePreferences, error)
	UpsertStylePreferences(ctx context.Context, prefs *db.StylePreferences) error
	AddClosetItem(ctx context.Context, item *db.ClosetItem) (*db.ClosetItem, error)
	ListClosetItems(ctx context.Context, userID uuid.UUID) ([]db.ClosetItem, error)
}

// pathUserID parses the {id} path segment and checks it against the
// authenticated user. Users may only touch their own data.
func (s *Server) pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authedID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	if id != authedID {
		err := &ErrForbidden{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// handleGetProfile returns the user's stored preferences and closet contents.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	prefs, err := s.profileStore.GetStylePreferences(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	items, err := s.profileStore.ListClosetItems(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if items == nil {
		items = []db.ClosetItem{}
	}

	s.successResponse(w, http.StatusOK, map[string]any{
		"user_id":      userID,
		"preferences":  prefs,
		"closet_items": items,
	})
}

// handleUpdatePreferences merges the request into the stored preferences.
// Absent fields stay as they are; empty arrays clear the stored value.
func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	var req types.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	prefs, err := s.profileStore.GetStylePreferences(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load preferences")
		return
	}
	if prefs == nil {
		prefs = &db.StylePreferences{UserID: userID}
	}

	if req.Colors != nil {
		prefs.Colors = req.Colors
	}
	if req.Styles != nil {
		prefs.Styles = req.Styles
	}
	if req.Fabrics != nil {
		prefs.Fabrics = req.Fabrics
	}
	if req.Occasions != nil {
		prefs.Occasions = req.Occasions
	}

	if err := s.profileStore.UpsertStylePreferences(r.Context(), prefs); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	s.successResponse(w, http.StatusOK, prefs)
}

// handleAddClosetItem adds a garment to the user's closet.
func (s *Server) handleAddClosetItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	var req types.AddClosetItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	item, err := s.profileStore.AddClosetItem(r.Context(), &db.ClosetItem{
		UserID:      userID,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Brand:       req.Brand,
		Color:       req.Color,
		Size:        req.Size,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add closet item")
		return
	}

	s.successResponse(w, http.StatusCreated, item)
}

// handleRecommendationProfile returns the aggregated profile the engine sees.
func (s *Server) handleRecommendationProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}

	p, err := s.profiles.Build(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build recommendation profile")
		return
	}

	s.successResponse(w, http.StatusOK, p)
}
