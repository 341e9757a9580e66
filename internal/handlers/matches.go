package handlers

import (
	"encoding/json"
	"net/http"

	"namematch-backend/internal/middleware"
	"namematch-backend/internal/models"
	"namematch-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MatchHandler handles match HTTP requests
type MatchHandler struct {
	matchService *services.MatchService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
	}
}

// UpdateNotesRequest represents the request body for updating match notes
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	matches, err := h.matchService.ListByUser(ctx, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if matches == nil {
		matches = []*models.Match{}
	}

	respondJSON(w, http.StatusOK, matches)
}

// UpdateNotes handles PATCH /api/v1/matches/{match_id}
func (h *MatchHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	matchID := chi.URLParam(r, "match_id")

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	match, err := h.matchService.UpdateNotes(ctx, matchID, userID, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, match)
}

// Remove handles DELETE /api/v1/matches/{match_id}
func (h *MatchHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	matchID := chi.URLParam(r, "match_id")

	if err := h.matchService.Remove(ctx, matchID, userID); err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("match_id", matchID).
		Msg("Match removed")

	w.WriteHeader(http.StatusNoContent)
}
