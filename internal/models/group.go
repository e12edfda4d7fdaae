package models

import (
	"time"
)

// Group is a small apartment-hunting party sharing saved listings.
type Group struct {
	ID        int       `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMember struct {
	ID       int       `json:"id"`
	GroupID  int       `json:"group_id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joined_at"`
}

// GroupSavedListing is a bookmark shared with the whole group; SavedBy
// records which member added it.
type GroupSavedListing struct {
	ID        int       `json:"id"`
	GroupID   int       `json:"group_id"`
	ListingID string    `json:"listing_id"`
	SavedBy   string    `json:"saved_by"`
	SavedAt   time.Time `json:"saved_at"`
}
