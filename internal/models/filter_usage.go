package models

import (
	"time"
)

// Smart-filter usage actions recorded by the analytics endpoints.
const (
	UsageActionAdded    = "added"
	UsageActionRemoved  = "removed"
	UsageActionSearched = "searched"
)

// SmartFilterUsage is one analytics event. UserID may be an anonymous
// client-generated identifier; logged-in users carry the identity
// provider's UUID.
type SmartFilterUsage struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Feature   string    `json:"feature"`
	Action    string    `json:"action"`
	Context   *string   `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FeatureCount is one row of the top-features leaderboard.
type FeatureCount struct {
	Feature string `json:"feature"`
	Count   int    `json:"count"`
}

// ActionCount aggregates events per action type.
type ActionCount struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}

// UsageAnalytics is the admin insights payload.
type UsageAnalytics struct {
	TopFeatures    []FeatureCount     `json:"top_features"`
	ActionStats    []ActionCount      `json:"action_stats"`
	RecentSearches []SmartFilterUsage `json:"recent_searches"`
	UserStats      UsageUserStats     `json:"user_stats"`
}

type UsageUserStats struct {
	AnonymousUsers int `json:"anonymous_users"`
	LoggedInUsers  int `json:"logged_in_users"`
	TotalUsers     int `json:"total_users"`
}
