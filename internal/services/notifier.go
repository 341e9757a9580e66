package services

import (
	"context"

	"namematch-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// Notifier fans match and link events out to both partners: WebSocket when
// the user is connected, APNs otherwise. Best-effort on both paths.
type Notifier struct {
	hub   *WSHub
	push  *PushService
	users UserStore
}

// NewNotifier creates a notifier. push may be nil when APNs is not configured.
func NewNotifier(hub *WSHub, push *PushService, users UserStore) *Notifier {
	return &Notifier{
		hub:   hub,
		push:  push,
		users: users,
	}
}

// MatchCreated notifies both matched users
func (n *Notifier) MatchCreated(ctx context.Context, match *models.Match) {
	n.notifyMatch(ctx, match.User1ID, match)
	n.notifyMatch(ctx, match.User2ID, match)
}

func (n *Notifier) notifyMatch(ctx context.Context, userID string, match *models.Match) {
	if n.hub.NotifyMatchCreated(userID, match) {
		return
	}
	if n.push == nil {
		return
	}

	user, err := n.users.GetByID(ctx, userID)
	if err != nil || user.PushToken == nil {
		return
	}
	if err := n.push.MatchAlert(ctx, *user.PushToken, match); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("match_id", match.ID).
			Msg("Failed to send match push notification")
	}
}

// PartnerLinked notifies both users that they are now partners
func (n *Notifier) PartnerLinked(ctx context.Context, inviterID, accepterID string) {
	n.hub.NotifyPartnerLinked(inviterID, accepterID)
	n.hub.NotifyPartnerLinked(accepterID, inviterID)
}
