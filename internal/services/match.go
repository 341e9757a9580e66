package services

import (
	"context"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"
)

// MatchService handles the matches list and its management
type MatchService struct {
	matches MatchStore
}

// NewMatchService creates a new match service
func NewMatchService(matches MatchStore) *MatchService {
	return &MatchService{matches: matches}
}

// ListByUser retrieves every match for a user, newest first
func (s *MatchService) ListByUser(ctx context.Context, userID string) ([]*models.Match, error) {
	return s.matches.ListByUser(ctx, userID)
}

// UpdateNotes sets the notes on a match the user is part of
func (s *MatchService) UpdateNotes(ctx context.Context, matchID, userID, notes string) (*models.Match, error) {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(userID) {
		return nil, apperr.New(apperr.KindNotFound, "match not found")
	}

	if err := s.matches.UpdateNotes(ctx, matchID, notes); err != nil {
		return nil, err
	}
	return s.matches.GetByID(ctx, matchID)
}

// Remove deletes a match the user is part of
func (s *MatchService) Remove(ctx context.Context, matchID, userID string) error {
	match, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.Involves(userID) {
		return apperr.New(apperr.KindNotFound, "match not found")
	}
	return s.matches.Delete(ctx, matchID)
}
