package handlers

import (
	"encoding/json"
	"net/http"

	"namematch-backend/internal/middleware"
	"namematch-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// InviteHandler handles partner-invite HTTP requests
type InviteHandler struct {
	inviteService *services.InviteService
}

// NewInviteHandler creates a new invite handler
func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{
		inviteService: inviteService,
	}
}

// AcceptInviteRequest represents the request body for accepting an invite
type AcceptInviteRequest struct {
	InviteCode string `json:"invite_code"`
}

// Create handles POST /api/v1/invites
func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	invite, err := h.inviteService.CreateInvite(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create invite")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, invite)
}

// Accept handles POST /api/v1/invites/accept
func (h *InviteHandler) Accept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req AcceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.InviteCode) != 6 {
		respondError(w, "invite_code must be 6 characters", http.StatusBadRequest)
		return
	}

	user, err := h.inviteService.AcceptInvite(ctx, req.InviteCode, userID)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Msg("Failed to accept invite")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
