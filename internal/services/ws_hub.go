package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"namematch-backend/internal/models"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Online  *bool       `json:"online,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// wsClient is one registered connection plus the match ids already delivered
// on it. Match creation can be observed twice for the same user (own swipe
// response and partner-side event); the set keeps delivery once per match.
type wsClient struct {
	conn      *websocket.Conn
	delivered map[string]struct{}
}

// WSHub manages WebSocket connections
type WSHub struct {
	mu      sync.RWMutex
	clients map[string]*wsClient
}

// NewWSHub creates a new WebSocket hub
func NewWSHub() *WSHub {
	return &WSHub{
		clients: make(map[string]*wsClient),
	}
}

// Register registers a new WebSocket connection for a user
func (h *WSHub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Close existing connection if any
	if existing, exists := h.clients[userID]; exists {
		existing.conn.Close()
	}

	h.clients[userID] = &wsClient{
		conn:      conn,
		delivered: make(map[string]struct{}),
	}

	log.Info().Str("user_id", userID).Msg("WebSocket connection registered")
}

// Unregister removes a WebSocket connection for a user
func (h *WSHub) Unregister(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, exists := h.clients[userID]; exists {
		client.conn.Close()
		delete(h.clients, userID)
		log.Info().Str("user_id", userID).Msg("WebSocket connection unregistered")
	}
}

// SendToUser sends a message to a specific user
func (h *WSHub) SendToUser(userID string, message WSMessage) error {
	h.mu.RLock()
	client, exists := h.clients[userID]
	h.mu.RUnlock()

	if !exists {
		return fmt.Errorf("user %s is not connected", userID)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.Unregister(userID)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// IsOnline checks if a user is online
func (h *WSHub) IsOnline(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.clients[userID]
	return exists
}

// NotifyPartnerStatus notifies partner about online/offline status
func (h *WSHub) NotifyPartnerStatus(partnerID string, online bool) {
	if partnerID == "" {
		return
	}

	message := WSMessage{
		Type:   "partner_status",
		Online: &online,
	}

	if err := h.SendToUser(partnerID, message); err != nil {
		log.Debug().
			Err(err).
			Str("user_id", partnerID).
			Msg("Partner not reachable for status update")
	}
}

// NotifyMatchCreated pushes a match to one user, at most once per match and
// connection. Reports whether the event was actually written.
func (h *WSHub) NotifyMatchCreated(userID string, match *models.Match) bool {
	h.mu.Lock()
	client, exists := h.clients[userID]
	if exists {
		if _, seen := client.delivered[match.ID]; seen {
			h.mu.Unlock()
			return true
		}
		client.delivered[match.ID] = struct{}{}
	}
	h.mu.Unlock()

	if !exists {
		return false
	}

	message := WSMessage{
		Type: "match_created",
		Data: match,
	}
	if err := h.SendToUser(userID, message); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("match_id", match.ID).
			Msg("Failed to deliver match event")
		return false
	}
	return true
}

// NotifyPartnerLinked notifies a user that the partner link was established
func (h *WSHub) NotifyPartnerLinked(userID, partnerID string) {
	message := WSMessage{
		Type: "partner_linked",
		Data: map[string]interface{}{
			"partner_id": partnerID,
		},
	}
	if err := h.SendToUser(userID, message); err != nil {
		log.Debug().
			Err(err).
			Str("user_id", userID).
			Msg("Partner not reachable for link event")
	}
}
