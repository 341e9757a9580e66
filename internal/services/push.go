package services

import (
	"context"
	"fmt"

	"namematch-backend/internal/config"
	"namematch-backend/internal/models"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
)

// PushService sends APNs alerts to devices that registered a push token.
type PushService struct {
	client *apns2.Client
	topic  string
}

// NewPushService creates a push service from config. Returns nil when no
// signing key is configured; callers treat a nil service as push disabled.
func NewPushService(cfg config.APNSConfig) (*PushService, error) {
	if cfg.KeyPath == "" {
		return nil, nil
	}

	authKey, err := token.AuthKeyFromFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs key: %w", err)
	}

	client := apns2.NewTokenClient(&token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	})
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &PushService{client: client, topic: cfg.Topic}, nil
}

// MatchAlert sends the "it's a match" alert for one device
func (s *PushService) MatchAlert(ctx context.Context, deviceToken string, match *models.Match) error {
	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       s.topic,
		Payload: payload.NewPayload().
			AlertTitle("It's a match!").
			AlertBody(fmt.Sprintf("You both like %s", match.Name.Name)).
			Sound("default").
			Custom("match_id", match.ID),
	}

	res, err := s.client.PushWithContext(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	if !res.Sent() {
		return fmt.Errorf("push rejected: %s", res.Reason)
	}
	return nil
}
