package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"lionlease/internal/models"
)

type SavedListingRepository struct {
	DB *sql.DB
}

// Save is an upsert: saving an already-saved listing is a no-op rather
// than a duplicate or an error.
func (r *SavedListingRepository) Save(ctx context.Context, userID, listingID string) error {
	query := `
		INSERT INTO saved_listings (user_id, listing_id, saved_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE user_id = user_id
	`
	_, err := r.DB.ExecContext(ctx, query, userID, listingID)
	if err != nil {
		return fmt.Errorf("save listing: %w", err)
	}
	return nil
}

func (r *SavedListingRepository) Delete(ctx context.Context, userID, listingID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_listings WHERE user_id = ? AND listing_id = ?`, userID, listingID)
	if err != nil {
		return fmt.Errorf("unsave listing: %w", err)
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

func (r *SavedListingRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedListing, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, listing_id, saved_at FROM saved_listings WHERE user_id = ? ORDER BY saved_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list saved listings: %w", err)
	}
	defer rows.Close()

	var saved []models.SavedListing
	for rows.Next() {
		var s models.SavedListing
		if err := rows.Scan(&s.ID, &s.UserID, &s.ListingID, &s.SavedAt); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("saved listings rows error: %w", err)
	}
	return saved, nil
}
