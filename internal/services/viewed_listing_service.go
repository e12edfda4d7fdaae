package services

import (
	"context"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

type ViewedListingService struct {
	ViewedRepo *repositories.ViewedListingRepository
}

func (s *ViewedListingService) MarkViewed(ctx context.Context, userID, listingID string) (models.ViewedListing, error) {
	return s.ViewedRepo.MarkViewed(ctx, userID, listingID)
}

func (s *ViewedListingService) ListViewed(ctx context.Context, userID string) ([]models.ViewedListing, error) {
	return s.ViewedRepo.ListByUser(ctx, userID)
}
