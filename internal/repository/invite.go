package repository

import (
	"context"
	"errors"
	"time"

	"namematch-backend/internal/apperr"
	"namematch-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InviteRepository handles database operations for partner invites
type InviteRepository struct {
	db *pgxpool.Pool
}

// NewInviteRepository creates a new invite repository
func NewInviteRepository(db *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{db: db}
}

const inviteColumns = `id, invite_code, inviter_id, inviter_email, inviter_name, used, created_at, expires_at`

// Create creates a new partner invite
func (r *InviteRepository) Create(ctx context.Context, invite *models.PartnerInvite) error {
	query := `
		INSERT INTO partner_invites (` + inviteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		invite.ID, invite.InviteCode, invite.InviterID, invite.InviterEmail,
		invite.InviterName, invite.Used, invite.CreatedAt, invite.ExpiresAt,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to create invite", err)
	}
	return nil
}

// GetActiveByCode retrieves the invite matching code that is unused and not
// yet expired at the given time. A typo and a genuine expiry both report the
// same expired error.
func (r *InviteRepository) GetActiveByCode(ctx context.Context, code string, now time.Time) (*models.PartnerInvite, error) {
	query := `
		SELECT ` + inviteColumns + `
		FROM partner_invites
		WHERE invite_code = $1 AND used = false AND expires_at > $2
	`
	var inv models.PartnerInvite
	err := r.db.QueryRow(ctx, query, code, now).Scan(
		&inv.ID, &inv.InviteCode, &inv.InviterID, &inv.InviterEmail,
		&inv.InviterName, &inv.Used, &inv.CreatedAt, &inv.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Wrap(apperr.KindExpired, "invalid or expired invite code", err)
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to get invite", err)
	}
	return &inv, nil
}

// AcceptAndLink links both partners and consumes the invite in one
// transaction. Either all three writes land or none do.
func (r *InviteRepository) AcceptAndLink(ctx context.Context, inviteID, inviterID, accepterID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	link := `UPDATE users SET partner_id = $1, updated_at = now() WHERE id = $2 AND partner_id IS NULL`

	result, err := tx.Exec(ctx, link, accepterID, inviterID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to connect partners", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindConflict, "inviter is already partnered")
	}

	result, err = tx.Exec(ctx, link, inviterID, accepterID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to connect partners", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindConflict, "user is already partnered")
	}

	result, err = tx.Exec(ctx,
		`UPDATE partner_invites SET used = true WHERE id = $1 AND used = false`, inviteID)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to consume invite", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.New(apperr.KindExpired, "invalid or expired invite code")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "failed to connect partners", err)
	}
	return nil
}
