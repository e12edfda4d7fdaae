package services

import (
	"context"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

type SavedListingService struct {
	SavedRepo *repositories.SavedListingRepository
}

func (s *SavedListingService) SaveListing(ctx context.Context, userID, listingID string) error {
	return s.SavedRepo.Save(ctx, userID, listingID)
}

func (s *SavedListingService) UnsaveListing(ctx context.Context, userID, listingID string) error {
	return s.SavedRepo.Delete(ctx, userID, listingID)
}

func (s *SavedListingService) ListSaved(ctx context.Context, userID string) ([]models.SavedListing, error) {
	return s.SavedRepo.ListByUser(ctx, userID)
}
