package repository

import (
	"context"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SwipeRepository handles database operations for swipes
type SwipeRepository struct {
	db *pgxpool.Pool
}

// NewSwipeRepository creates a new swipe repository
func NewSwipeRepository(db *pgxpool.Pool) *SwipeRepository {
	return &SwipeRepository{db: db}
}

// Insert records a swipe. Rows are append-only; repeat swipes on the same
// name produce additional rows.
func (r *SwipeRepository) Insert(ctx context.Context, swipe *models.Swipe) error {
	query := `
		INSERT INTO user_swipes (id, user_id, name_id, is_like, swiped_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, swipe.ID, swipe.UserID, swipe.NameID, swipe.IsLike, swipe.SwipedAt)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to record swipe", err)
	}
	return nil
}

// NameIDsByUser retrieves the ids of every name the user has already swiped on
func (r *SwipeRepository) NameIDsByUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT name_id FROM user_swipes WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get swiped name ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Wrap(apperr.KindUnavailable, "failed to scan name id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "error iterating swipes", err)
	}
	return ids, nil
}

// HasLiked checks whether the user has an is_like swipe on the given name
func (r *SwipeRepository) HasLiked(ctx context.Context, userID, nameID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM user_swipes WHERE user_id = $1 AND name_id = $2 AND is_like = true)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, nameID).Scan(&exists); err != nil {
		return false, apperr.Wrap(apperr.KindUnavailable, "failed to check partner swipe", err)
	}
	return exists, nil
}
