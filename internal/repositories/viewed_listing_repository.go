package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"lionlease/internal/models"
)

type ViewedListingRepository struct {
	DB *sql.DB
}

// MarkViewed upserts the view record; a repeat view only refreshes the
// timestamp.
func (r *ViewedListingRepository) MarkViewed(ctx context.Context, userID, listingID string) (models.ViewedListing, error) {
	query := `
		INSERT INTO viewed_listings (user_id, listing_id, viewed_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE viewed_at = NOW()
	`
	if _, err := r.DB.ExecContext(ctx, query, userID, listingID); err != nil {
		return models.ViewedListing{}, fmt.Errorf("mark viewed: %w", err)
	}

	var v models.ViewedListing
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, listing_id, viewed_at FROM viewed_listings WHERE user_id = ? AND listing_id = ?`,
		userID, listingID).Scan(&v.ID, &v.UserID, &v.ListingID, &v.ViewedAt)
	if err != nil {
		return models.ViewedListing{}, fmt.Errorf("read viewed row: %w", err)
	}
	return v, nil
}

func (r *ViewedListingRepository) ListByUser(ctx context.Context, userID string) ([]models.ViewedListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, listing_id, viewed_at FROM viewed_listings WHERE user_id = ? ORDER BY viewed_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list viewed listings: %w", err)
	}
	defer rows.Close()

	var viewed []models.ViewedListing
	for rows.Next() {
		var v models.ViewedListing
		if err := rows.Scan(&v.ID, &v.UserID, &v.ListingID, &v.ViewedAt); err != nil {
			return nil, err
		}
		viewed = append(viewed, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("viewed listings rows error: %w", err)
	}
	return viewed, nil
}
