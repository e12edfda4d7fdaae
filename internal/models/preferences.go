package models

import (
	"time"
)

// UserPreferences is the persisted search state for one user. Pointer
// fields distinguish "not sent" from explicit values so a partial update
// only touches the fields the client provided.
type UserPreferences struct {
	UserID        string    `json:"user_id"`
	MinBudget     *float64  `json:"min_budget"`
	MaxBudget     *float64  `json:"max_budget"`
	Bedrooms      *string   `json:"bedrooms"`
	Bathrooms     *string   `json:"bathrooms"`
	MaxDistance   *float64  `json:"max_distance"`
	LionScores    []string  `json:"lion_scores"`
	MaxComplaints *int      `json:"max_complaints"`
	OnlyNoFee     *bool     `json:"only_no_fee"`
	OnlyFeatured  *bool     `json:"only_featured"`
	Areas         []string  `json:"areas"`
	SortOption    *string   `json:"sort_option"`
	UpdatedAt     time.Time `json:"updated_at"`
}
