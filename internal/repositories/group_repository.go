package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lionlease/internal/models"
)

type GroupRepository struct {
	DB *sql.DB
}

// CreateGroup inserts the group and its owner membership in one
// transaction so a failed member insert never leaves an empty group.
func (r *GroupRepository) CreateGroup(ctx context.Context, ownerID, ownerName, name string) (models.Group, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Group{}, fmt.Errorf("begin create group tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO housing_groups (owner_id, name, created_at) VALUES (?, ?, NOW())`,
		ownerID, name)
	if err != nil {
		return models.Group{}, fmt.Errorf("insert group: %w", err)
	}
	groupID, err := result.LastInsertId()
	if err != nil {
		return models.Group{}, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, name, status, joined_at) VALUES (?, ?, ?, 'owner', NOW())`,
		groupID, ownerID, ownerName)
	if err != nil {
		return models.Group{}, fmt.Errorf("insert owner member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Group{}, fmt.Errorf("commit create group tx: %w", err)
	}

	return r.GetGroupByID(ctx, int(groupID))
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, groupID int) (models.Group, error) {
	var g models.Group
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, owner_id, name, created_at FROM housing_groups WHERE id = ?`,
		groupID).Scan(&g.ID, &g.OwnerID, &g.Name, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Group{}, models.ErrGroupNotFound
	}
	if err != nil {
		return models.Group{}, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

// GetGroupByUser returns the first group the user belongs to. Membership
// is single-group in practice; the ORDER BY keeps the result stable if
// historical data disagrees.
func (r *GroupRepository) GetGroupByUser(ctx context.Context, userID string) (models.Group, error) {
	var g models.Group
	err := r.DB.QueryRowContext(ctx, `
		SELECT g.id, g.owner_id, g.name, g.created_at
		  FROM housing_groups g
		  JOIN group_members m ON m.group_id = g.id
		 WHERE m.user_id = ?
		 ORDER BY m.joined_at ASC
		 LIMIT 1`,
		userID).Scan(&g.ID, &g.OwnerID, &g.Name, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Group{}, models.ErrGroupNotFound
	}
	if err != nil {
		return models.Group{}, fmt.Errorf("get group by user: %w", err)
	}
	return g, nil
}

func (r *GroupRepository) ListMembers(ctx context.Context, groupID int) ([]models.GroupMember, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, group_id, user_id, name, status, joined_at FROM group_members WHERE group_id = ? ORDER BY joined_at ASC`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Name, &m.Status, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("group members rows error: %w", err)
	}
	return members, nil
}

func (r *GroupRepository) IsMember(ctx context.Context, groupID int, userID string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM group_members WHERE group_id = ? AND user_id = ?`,
		groupID, userID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return n > 0, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID int, userID, name string) error {
	member, err := r.IsMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member {
		return models.ErrAlreadyInGroup
	}
	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id, name, status, joined_at) VALUES (?, ?, ?, 'member', NOW())`,
		groupID, userID, name)
	if err != nil {
		if isDuplicateEntry(err) {
			return models.ErrAlreadyInGroup
		}
		return fmt.Errorf("add group member: %w", err)
	}
	return nil
}

// SaveForGroup shares a listing with the group; saving an already shared
// listing is a no-op.
func (r *GroupRepository) SaveForGroup(ctx context.Context, groupID int, listingID, savedBy string) (models.GroupSavedListing, error) {
	query := `
		INSERT INTO group_saved_listings (group_id, listing_id, saved_by, saved_at)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE group_id = group_id
	`
	if _, err := r.DB.ExecContext(ctx, query, groupID, listingID, savedBy); err != nil {
		return models.GroupSavedListing{}, fmt.Errorf("save for group: %w", err)
	}

	var s models.GroupSavedListing
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, group_id, listing_id, saved_by, saved_at FROM group_saved_listings WHERE group_id = ? AND listing_id = ?`,
		groupID, listingID).Scan(&s.ID, &s.GroupID, &s.ListingID, &s.SavedBy, &s.SavedAt)
	if err != nil {
		return models.GroupSavedListing{}, fmt.Errorf("read group saved row: %w", err)
	}
	return s, nil
}

func (r *GroupRepository) DeleteGroupSaved(ctx context.Context, groupID int, listingID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM group_saved_listings WHERE group_id = ? AND listing_id = ?`,
		groupID, listingID)
	if err != nil {
		return fmt.Errorf("delete group saved: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrSavedNotFound
	}
	return nil
}

func (r *GroupRepository) ListGroupSaved(ctx context.Context, groupID int) ([]models.GroupSavedListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, group_id, listing_id, saved_by, saved_at FROM group_saved_listings WHERE group_id = ? ORDER BY saved_at DESC`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("list group saved: %w", err)
	}
	defer rows.Close()

	var saved []models.GroupSavedListing
	for rows.Next() {
		var s models.GroupSavedListing
		if err := rows.Scan(&s.ID, &s.GroupID, &s.ListingID, &s.SavedBy, &s.SavedAt); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("group saved rows error: %w", err)
	}
	return saved, nil
}
