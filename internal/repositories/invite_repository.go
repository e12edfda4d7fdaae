package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lionlease/internal/models"
)

type InviteRepository struct {
	DB *sql.DB
}

func (r *InviteRepository) CreateInvite(ctx context.Context, groupID int, inviterID, invitedEmail, inviteCode string) (models.GroupInvite, error) {
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO group_invites (group_id, inviter_id, invited_email, invite_code, accepted, created_at)
		VALUES (?, ?, ?, ?, 0, NOW())`,
		groupID, inviterID, invitedEmail, inviteCode)
	if err != nil {
		return models.GroupInvite{}, fmt.Errorf("insert invite: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.GroupInvite{}, err
	}
	return r.getInvite(ctx, `WHERE id = ?`, id)
}

func (r *InviteRepository) GetByCode(ctx context.Context, inviteCode string) (models.GroupInvite, error) {
	return r.getInvite(ctx, `WHERE invite_code = ?`, inviteCode)
}

func (r *InviteRepository) getInvite(ctx context.Context, where string, arg interface{}) (models.GroupInvite, error) {
	var inv models.GroupInvite
	query := `SELECT id, group_id, inviter_id, invited_email, invite_code, accepted, created_at FROM group_invites ` + where
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&inv.ID, &inv.GroupID, &inv.InviterID, &inv.InvitedEmail, &inv.InviteCode, &inv.Accepted, &inv.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.GroupInvite{}, models.ErrInviteNotFound
	}
	if err != nil {
		return models.GroupInvite{}, fmt.Errorf("get invite: %w", err)
	}
	return inv, nil
}

// MarkAccepted flips the invite exactly once; a replayed accept returns
// ErrInviteAccepted.
func (r *InviteRepository) MarkAccepted(ctx context.Context, inviteCode string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE group_invites SET accepted = 1 WHERE invite_code = ? AND accepted = 0`,
		inviteCode)
	if err != nil {
		return fmt.Errorf("mark invite accepted: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetByCode(ctx, inviteCode); err != nil {
			return err
		}
		return models.ErrInviteAccepted
	}
	return nil
}
