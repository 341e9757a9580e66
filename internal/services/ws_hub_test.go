package services

import (
	"testing"

	"namematch-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWSHubOffline(t *testing.T) {
	hub := NewWSHub()

	assert.False(t, hub.IsOnline("alice"))

	err := hub.SendToUser("alice", WSMessage{Type: "match_created"})
	assert.Error(t, err)

	// Delivery to a disconnected user reports false so the caller can fall
	// back to push.
	delivered := hub.NotifyMatchCreated("alice", &models.Match{ID: "m1"})
	assert.False(t, delivered)

	// Status and link notifications to offline users are silently dropped.
	hub.NotifyPartnerStatus("alice", true)
	hub.NotifyPartnerLinked("alice", "bob")

	// Unregistering an unknown user is a no-op.
	hub.Unregister("alice")
}
