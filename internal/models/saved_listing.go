package models

import (
	"time"
)

// SavedListing is one bookmark. UserID is the identity provider's opaque
// user identifier; ListingID refers to the in-memory catalog.
type SavedListing struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	SavedAt   time.Time `json:"saved_at"`
}

// ViewedListing records that a user opened a listing; repeated views only
// refresh ViewedAt.
type ViewedListing struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	ViewedAt  time.Time `json:"viewed_at"`
}
