package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/elara/elara-outfits/internal/server/middleware"
	"github.com/elara/elara-outfits/internal/types"
)

// handleRecommend generates outfit recommendations for the authenticated user.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Reject incomplete requests before the engine runs
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	ec := &types.EventContext{
		UserID:      userID,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Location:    *req.Location,
		Venue:       req.Venue,
		Preferences: req.Preferences,
	}

	result := s.engine.Generate(r.Context(), ec)

	s.successResponse(w, http.StatusOK, types.RecommendationResponse{
		EventContext: types.EventContextSummary{
			Type:     req.EventType,
			Date:     req.EventDate,
			Location: req.Location.City,
			Vibe:     result.Vibe,
		},
		Weather:     result.Weather,
		Outfits:     result.Outfits,
		GeneratedAt: time.Now().UTC(),
	})
}
