package repository

import (
	"context"
	"errors"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, name, partner_id, partner_code, password_hash, push_token, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PartnerID, &user.PartnerCode,
		&user.PasswordHash, &user.PushToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "user not found", err)
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get user", err)
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, name, partner_id, partner_code, password_hash, push_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Email, user.Name, user.PartnerID, user.PartnerCode,
		user.PasswordHash, user.PushToken, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to create user", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, apperr.Wrap(apperr.KindUnavailable, "failed to check email existence", err)
	}
	return exists, nil
}

// PartnerCodeExists checks if a partner code already exists
func (r *UserRepository) PartnerCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE partner_code = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, apperr.Wrap(apperr.KindUnavailable, "failed to check code existence", err)
	}
	return exists, nil
}

// PartnerID retrieves just the partner_id column for a user.
// Returns nil without error when the user has no partner.
func (r *UserRepository) PartnerID(ctx context.Context, userID string) (*string, error) {
	query := `SELECT partner_id FROM users WHERE id = $1`
	var partnerID *string
	err := r.db.QueryRow(ctx, query, userID).Scan(&partnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindNotFound, "user not found", err)
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get partner id", err)
	}
	return partnerID, nil
}

// UpdatePushToken updates the push token for a user
func (r *UserRepository) UpdatePushToken(ctx context.Context, userID string, pushToken *string) error {
	query := `UPDATE users SET push_token = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, pushToken, userID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to update push token", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}
