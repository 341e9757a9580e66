package repository

import (
	"context"
	"errors"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchSelect = `
	SELECT m.id, m.name_id, m.user1_id, m.user2_id, m.notes, m.created_at, m.updated_at,
	       n.id, n.name, n.gender, n.origin, n.meaning, n.popularity, n.created_at
	FROM matches m
	JOIN baby_names n ON n.id = m.name_id
`

func scanMatch(row pgx.Row) (*models.Match, error) {
	var m models.Match
	err := row.Scan(
		&m.ID, &m.NameID, &m.User1ID, &m.User2ID, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		&m.Name.ID, &m.Name.Name, &m.Name.Gender, &m.Name.Origin, &m.Name.Meaning,
		&m.Name.Popularity, &m.Name.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "match not found", err)
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get match", err)
	}
	return &m, nil
}

// Create creates a new match
func (r *MatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, name_id, user1_id, user2_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		match.ID, match.NameID, match.User1ID, match.User2ID, match.Notes,
		match.CreatedAt, match.UpdatedAt,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to create match", err)
	}
	return nil
}

// GetByID retrieves a match with its name joined in
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := matchSelect + ` WHERE m.id = $1`
	return scanMatch(r.db.QueryRow(ctx, query, id))
}

// FindByPairAndName retrieves the match for an unordered user pair and name,
// or a not-found error when none exists
func (r *MatchRepository) FindByPairAndName(ctx context.Context, userAID, userBID, nameID string) (*models.Match, error) {
	query := matchSelect + `
		WHERE m.name_id = $3
		  AND ((m.user1_id = $1 AND m.user2_id = $2) OR (m.user1_id = $2 AND m.user2_id = $1))
		LIMIT 1
	`
	return scanMatch(r.db.QueryRow(ctx, query, userAID, userBID, nameID))
}

// ListByUser retrieves every match involving the user, newest first
func (r *MatchRepository) ListByUser(ctx context.Context, userID string) ([]*models.Match, error) {
	query := matchSelect + `
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to list matches", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "error iterating matches", err)
	}
	return matches, nil
}

// UpdateNotes sets the notes on a match and bumps updated_at
func (r *MatchRepository) UpdateNotes(ctx context.Context, id, notes string) error {
	query := `UPDATE matches SET notes = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, notes, id)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to update match notes", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "match not found")
	}
	return nil
}

// Delete deletes a match by ID
func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to delete match", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "match not found")
	}
	return nil
}
