package handlers

import (
	"encoding/json"
	"net/http"

	"namematch-backend/internal/middleware"
	"namematch-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// SwipeHandler handles swipe HTTP requests
type SwipeHandler struct {
	swipeService *services.SwipeService
}

// NewSwipeHandler creates a new swipe handler
func NewSwipeHandler(swipeService *services.SwipeService) *SwipeHandler {
	return &SwipeHandler{
		swipeService: swipeService,
	}
}

// SwipeRequest represents the request body for recording a swipe
type SwipeRequest struct {
	NameID string `json:"name_id"`
	IsLike bool   `json:"is_like"`
}

// Record handles POST /api/v1/swipes
func (h *SwipeHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.NameID == "" {
		respondError(w, "name_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.swipeService.RecordSwipe(ctx, userID, req.NameID, req.IsLike)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("name_id", req.NameID).
			Msg("Failed to record swipe")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SwipedNameIDs handles GET /api/v1/swipes/name-ids
func (h *SwipeHandler) SwipedNameIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	ids, err := h.swipeService.SwipedNameIDs(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	respondJSON(w, http.StatusOK, map[string][]string{"name_ids": ids})
}
