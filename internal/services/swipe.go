package services

import (
	"context"
	"time"

	"namematch-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SwipeStore is the storage surface for swipe rows.
type SwipeStore interface {
	Insert(ctx context.Context, swipe *models.Swipe) error
	NameIDsByUser(ctx context.Context, userID string) ([]string, error)
	HasLiked(ctx context.Context, userID, nameID string) (bool, error)
}

// MatchStore is the storage surface for match rows.
type MatchStore interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	FindByPairAndName(ctx context.Context, userAID, userBID, nameID string) (*models.Match, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Match, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	Delete(ctx context.Context, id string) error
}

// PartnerDirectory resolves a user's current partner.
type PartnerDirectory interface {
	PartnerID(ctx context.Context, userID string) (*string, error)
}

// MatchNotifier delivers match events to both partners.
// Delivery failures must not fail the swipe.
type MatchNotifier interface {
	MatchCreated(ctx context.Context, match *models.Match)
}

// SwipeService handles swipe recording and match reconciliation
type SwipeService struct {
	swipes   SwipeStore
	matches  MatchStore
	partners PartnerDirectory
	notifier MatchNotifier
}

// NewSwipeService creates a new swipe service
func NewSwipeService(swipes SwipeStore, matches MatchStore, partners PartnerDirectory, notifier MatchNotifier) *SwipeService {
	return &SwipeService{
		swipes:   swipes,
		matches:  matches,
		partners: partners,
		notifier: notifier,
	}
}

// SwipeResult reports whether a swipe produced a match
type SwipeResult struct {
	IsMatch bool          `json:"is_match"`
	Match   *models.Match `json:"match,omitempty"`
}

// RecordSwipe records the swipe and, for likes, checks whether the partner
// already liked the same name. Swipe rows are written even when the match
// check later fails; only the insert itself is an error to the caller.
func (s *SwipeService) RecordSwipe(ctx context.Context, userID, nameID string, isLike bool) (*SwipeResult, error) {
	swipe := &models.Swipe{
		ID:       uuid.New().String(),
		UserID:   userID,
		NameID:   nameID,
		IsLike:   isLike,
		SwipedAt: time.Now(),
	}
	if err := s.swipes.Insert(ctx, swipe); err != nil {
		return nil, err
	}

	if !isLike {
		return &SwipeResult{IsMatch: false}, nil
	}

	// No partner, or the lookup failed: nothing to match against.
	partnerID, err := s.partners.PartnerID(ctx, userID)
	if err != nil || partnerID == nil {
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Partner lookup failed during swipe")
		}
		return &SwipeResult{IsMatch: false}, nil
	}

	liked, err := s.swipes.HasLiked(ctx, *partnerID, nameID)
	if err != nil || !liked {
		if err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("Partner swipe lookup failed")
		}
		return &SwipeResult{IsMatch: false}, nil
	}

	// Both partners liked the name. Reuse an existing match if one was
	// already created for this pair and name, so a repeat swipe or the
	// partner swiping in the same window cannot duplicate it.
	if existing, err := s.matches.FindByPairAndName(ctx, userID, *partnerID, nameID); err == nil {
		return &SwipeResult{IsMatch: true, Match: existing}, nil
	}

	match := &models.Match{
		ID:        uuid.New().String(),
		NameID:    nameID,
		User1ID:   userID,
		User2ID:   *partnerID,
		CreatedAt: time.Now(),
	}
	if err := s.matches.Create(ctx, match); err != nil {
		return nil, err
	}

	// Re-fetch to pick up the denormalized name.
	created, err := s.matches.GetByID(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("match_id", created.ID).
		Str("name_id", nameID).
		Str("user1_id", created.User1ID).
		Str("user2_id", created.User2ID).
		Msg("Match created")

	if s.notifier != nil {
		s.notifier.MatchCreated(ctx, created)
	}

	return &SwipeResult{IsMatch: true, Match: created}, nil
}

// SwipedNameIDs returns the ids of every name the user has already swiped on.
// Fetched once at session start; the client extends the set locally.
func (s *SwipeService) SwipedNameIDs(ctx context.Context, userID string) ([]string, error) {
	return s.swipes.NameIDsByUser(ctx, userID)
}
