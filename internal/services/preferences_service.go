package services

import (
	"context"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

type PreferencesService struct {
	PreferencesRepo *repositories.PreferencesRepository
}

func (s *PreferencesService) GetPreferences(ctx context.Context, userID string) (models.UserPreferences, error) {
	return s.PreferencesRepo.GetByUserID(ctx, userID)
}

// SavePreferences upserts the provided fields and returns the merged
// stored record.
func (s *PreferencesService) SavePreferences(ctx context.Context, prefs models.UserPreferences) (models.UserPreferences, error) {
	if err := s.PreferencesRepo.Upsert(ctx, prefs); err != nil {
		return models.UserPreferences{}, err
	}
	return s.PreferencesRepo.GetByUserID(ctx, prefs.UserID)
}

func (s *PreferencesService) DeletePreferences(ctx context.Context, userID string) error {
	return s.PreferencesRepo.Delete(ctx, userID)
}
