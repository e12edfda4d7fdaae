package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

const (
	defaultAnalyticsDays  = 30
	defaultTopFeatures    = 10
	defaultRecentSearches = 20
	defaultUserHistory    = 50
)

// FilterUsageService records smart-filter analytics events. Feature-add
// counts are mirrored into a Redis leaderboard; the SQL table remains the
// source of truth and serves reads whenever Redis misbehaves.
type FilterUsageService struct {
	UsageRepo *repositories.FilterUsageRepository
	Cache     *repositories.UsageCache
	ErrorLog  *log.Logger
}

func (s *FilterUsageService) Track(ctx context.Context, usage models.SmartFilterUsage) (models.SmartFilterUsage, error) {
	saved, err := s.UsageRepo.Record(ctx, usage)
	if err != nil {
		return models.SmartFilterUsage{}, err
	}

	if usage.Action == models.UsageActionAdded && s.Cache != nil {
		if err := s.Cache.BumpFeature(ctx, usage.Feature); err != nil {
			s.ErrorLog.Printf("feature leaderboard bump for %q failed: %v", usage.Feature, err)
		}
	}
	return saved, nil
}

func (s *FilterUsageService) Analytics(ctx context.Context, days, limit int) (models.UsageAnalytics, error) {
	if days <= 0 {
		days = defaultAnalyticsDays
	}
	if limit <= 0 {
		limit = defaultTopFeatures
	}

	top, err := s.topFeatures(ctx, days, limit)
	if err != nil {
		return models.UsageAnalytics{}, err
	}
	actions, err := s.UsageRepo.ActionStats(ctx, days)
	if err != nil {
		return models.UsageAnalytics{}, err
	}
	recent, err := s.UsageRepo.RecentSearches(ctx, days, defaultRecentSearches)
	if err != nil {
		return models.UsageAnalytics{}, err
	}
	userStats, err := s.userStats(ctx, days)
	if err != nil {
		return models.UsageAnalytics{}, err
	}

	return models.UsageAnalytics{
		TopFeatures:    top,
		ActionStats:    actions,
		RecentSearches: recent,
		UserStats:      userStats,
	}, nil
}

// topFeatures prefers the Redis leaderboard (all-time counts, cheap to
// read) and falls back to the windowed SQL aggregate when the cache is
// empty or unavailable.
func (s *FilterUsageService) topFeatures(ctx context.Context, days, limit int) ([]models.FeatureCount, error) {
	if s.Cache != nil {
		top, err := s.Cache.TopFeatures(ctx, limit)
		if err == nil && len(top) > 0 {
			return top, nil
		}
		if err != nil {
			s.ErrorLog.Printf("feature leaderboard read failed, falling back to sql: %v", err)
		}
	}
	return s.UsageRepo.TopFeatures(ctx, days, limit)
}

// userStats splits distinct user ids into logged-in and anonymous.
// Logged-in identities are the provider's UUIDs; anything that does not
// parse as a UUID is a client-generated anonymous id.
func (s *FilterUsageService) userStats(ctx context.Context, days int) (models.UsageUserStats, error) {
	users, err := s.UsageRepo.DistinctUsers(ctx, days)
	if err != nil {
		return models.UsageUserStats{}, err
	}

	var stats models.UsageUserStats
	stats.TotalUsers = len(users)
	for _, id := range users {
		if _, err := uuid.Parse(id); err == nil {
			stats.LoggedInUsers++
		} else {
			stats.AnonymousUsers++
		}
	}
	return stats, nil
}

func (s *FilterUsageService) UserHistory(ctx context.Context, userID string, limit int) ([]models.SmartFilterUsage, error) {
	if limit <= 0 {
		limit = defaultUserHistory
	}
	return s.UsageRepo.UserHistory(ctx, userID, limit)
}
