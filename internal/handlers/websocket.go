package handlers

import (
	"encoding/json"
	"net/http"

	"namematch-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for MVP
	},
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub         *services.WSHub
	authService *services.AuthService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.WSHub, authService *services.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
	}
}

// HandleWebSocket handles GET /ws?token=
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	userID, err := h.authService.ValidateJWT(token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	h.hub.Register(userID, conn)

	ctx := r.Context()

	// Resolve the partner once at connect time; status events go to whoever
	// that is now. A link established mid-connection is announced separately
	// via partner_linked.
	var partnerID string
	if user, err := h.authService.GetProfile(ctx, userID); err == nil && user.PartnerID != nil {
		partnerID = *user.PartnerID
	}

	defer func() {
		h.hub.Unregister(userID)
		if partnerID != "" {
			h.hub.NotifyPartnerStatus(partnerID, false)
		}
	}()

	if partnerID != "" {
		h.hub.NotifyPartnerStatus(partnerID, true)
	}

	// Tell the client where it stands.
	online := partnerID != "" && h.hub.IsOnline(partnerID)
	statusMsg := services.WSMessage{
		Type: "session_status",
		Data: map[string]interface{}{
			"has_partner":    partnerID != "",
			"partner_online": online,
		},
	}
	if err := h.hub.SendToUser(userID, statusMsg); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Msg("Failed to send session_status message")
	}

	log.Info().Str("user_id", userID).Msg("WebSocket connection established")

	// The stream is push-only; the read loop exists to observe closure and
	// answer pings.
	for {
		_, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("user_id", userID).Msg("WebSocket error")
			}
			break
		}

		var msg services.WSMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to parse WebSocket message")
			h.sendError(conn, "Invalid message format")
			continue
		}

		switch msg.Type {
		case "ping":
			if err := h.hub.SendToUser(userID, services.WSMessage{Type: "pong"}); err != nil {
				log.Error().Err(err).Str("user_id", userID).Msg("Failed to send pong")
			}
		default:
			h.sendError(conn, "Unknown message type")
		}
	}
}

// sendError sends an error message to the WebSocket connection
func (h *WebSocketHandler) sendError(conn *websocket.Conn, message string) {
	msg := services.WSMessage{
		Type:    "error",
		Message: message,
	}
	data, _ := json.Marshal(msg)
	conn.WriteMessage(websocket.TextMessage, data)
}
