package repository

import (
	"context"
	"errors"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NameRepository handles database operations for the baby-name catalog
type NameRepository struct {
	db *pgxpool.Pool
}

// NewNameRepository creates a new name repository
func NewNameRepository(db *pgxpool.Pool) *NameRepository {
	return &NameRepository{db: db}
}

const nameColumns = `id, name, gender, origin, meaning, popularity, created_at`

func scanNames(rows pgx.Rows) ([]*models.BabyName, error) {
	defer rows.Close()

	var names []*models.BabyName
	for rows.Next() {
		var n models.BabyName
		err := rows.Scan(&n.ID, &n.Name, &n.Gender, &n.Origin, &n.Meaning, &n.Popularity, &n.CreatedAt)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindUnavailable, "failed to scan name", err)
		}
		names = append(names, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "error iterating names", err)
	}
	return names, nil
}

// List retrieves names ordered by descending popularity, optionally filtered
// by gender and excluding the given ids. NULL popularity sorts last.
func (r *NameRepository) List(ctx context.Context, offset, limit int, gender models.Gender, excludeIDs []string) ([]*models.BabyName, error) {
	query := `
		SELECT ` + nameColumns + `
		FROM baby_names
		WHERE ($1 = '' OR gender = $1)
		  AND NOT (id = ANY($2))
		ORDER BY popularity DESC NULLS LAST, name ASC
		LIMIT $3 OFFSET $4
	`
	if excludeIDs == nil {
		excludeIDs = []string{}
	}
	rows, err := r.db.Query(ctx, query, string(gender), excludeIDs, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to list names", err)
	}
	return scanNames(rows)
}

// Search retrieves names whose name matches the query, case-insensitively
func (r *NameRepository) Search(ctx context.Context, q string, gender models.Gender, limit int) ([]*models.BabyName, error) {
	query := `
		SELECT ` + nameColumns + `
		FROM baby_names
		WHERE name ILIKE '%' || $1 || '%'
		  AND ($2 = '' OR gender = $2)
		ORDER BY popularity DESC NULLS LAST, name ASC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, q, string(gender), limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to search names", err)
	}
	return scanNames(rows)
}

// GetByID retrieves a name by ID
func (r *NameRepository) GetByID(ctx context.Context, id string) (*models.BabyName, error) {
	query := `SELECT ` + nameColumns + ` FROM baby_names WHERE id = $1`
	var n models.BabyName
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Name, &n.Gender, &n.Origin, &n.Meaning, &n.Popularity, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "name not found", err)
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get name", err)
	}
	return &n, nil
}

// Insert adds a catalog entry, skipping duplicates on (name, gender).
// Used by the seed command only.
func (r *NameRepository) Insert(ctx context.Context, n *models.BabyName) error {
	query := `
		INSERT INTO baby_names (id, name, gender, origin, meaning, popularity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (name, gender) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.Name, n.Gender, n.Origin, n.Meaning, n.Popularity, n.CreatedAt)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to insert name", err)
	}
	return nil
}
