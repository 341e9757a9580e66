package services

import (
	"context"
	"time"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const inviteTTL = 7 * 24 * time.Hour

// InviteStore is the storage surface for partner invites.
type InviteStore interface {
	Create(ctx context.Context, invite *models.PartnerInvite) error
	GetActiveByCode(ctx context.Context, code string, now time.Time) (*models.PartnerInvite, error)
	AcceptAndLink(ctx context.Context, inviteID, inviterID, accepterID string) error
}

// PartnerLinkNotifier delivers the linked event to both partners.
type PartnerLinkNotifier interface {
	PartnerLinked(ctx context.Context, inviterID, accepterID string)
}

// InviteService handles the partner-invite lifecycle
type InviteService struct {
	invites  InviteStore
	users    UserStore
	notifier PartnerLinkNotifier
	now      func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(invites InviteStore, users UserStore, notifier PartnerLinkNotifier) *InviteService {
	return &InviteService{
		invites:  invites,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateInvite issues a single-use code that expires in seven days.
// Codes are not checked against other active invites; the keyspace makes
// collisions of live codes unlikely and acceptance picks the unused row.
func (s *InviteService) CreateInvite(ctx context.Context, userID string) (*models.PartnerInvite, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.PartnerID != nil {
		return nil, apperr.New(apperr.KindConflict, "user is already partnered")
	}

	now := s.now()
	invite := &models.PartnerInvite{
		ID:           uuid.New().String(),
		InviteCode:   GenerateCode(),
		InviterID:    user.ID,
		InviterEmail: user.Email,
		InviterName:  user.Name,
		Used:         false,
		CreatedAt:    now,
		ExpiresAt:    now.Add(inviteTTL),
	}

	if err := s.invites.Create(ctx, invite); err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID).
		Str("invite_id", invite.ID).
		Time("expires_at", invite.ExpiresAt).
		Msg("Partner invite created")

	return invite, nil
}

// AcceptInvite consumes the invite and links both partners. The link and the
// used flag land in one transaction; a failure leaves both users untouched.
func (s *InviteService) AcceptInvite(ctx context.Context, code, userID string) (*models.User, error) {
	invite, err := s.invites.GetActiveByCode(ctx, code, s.now())
	if err != nil {
		return nil, err
	}

	if invite.InviterID == userID {
		return nil, apperr.New(apperr.KindConflict, "cannot accept your own invite")
	}

	accepter, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if accepter.PartnerID != nil {
		return nil, apperr.New(apperr.KindConflict, "user is already partnered")
	}

	if err := s.invites.AcceptAndLink(ctx, invite.ID, invite.InviterID, userID); err != nil {
		return nil, err
	}

	log.Info().
		Str("invite_id", invite.ID).
		Str("inviter_id", invite.InviterID).
		Str("accepter_id", userID).
		Msg("Partners linked")

	if s.notifier != nil {
		s.notifier.PartnerLinked(ctx, invite.InviterID, userID)
	}

	return s.users.GetByID(ctx, userID)
}
