package services

import (
	"context"
	"errors"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

type GroupService struct {
	GroupRepo *repositories.GroupRepository
}

// Membership is the "my group" answer: the group plus its roster, or
// InGroup=false with both left null.
type Membership struct {
	InGroup bool                 `json:"in_group"`
	Group   *models.Group        `json:"group"`
	Members []models.GroupMember `json:"members"`
}

func (s *GroupService) GetMembership(ctx context.Context, userID string) (Membership, error) {
	group, err := s.GroupRepo.GetGroupByUser(ctx, userID)
	if errors.Is(err, models.ErrGroupNotFound) {
		return Membership{InGroup: false}, nil
	}
	if err != nil {
		return Membership{}, err
	}

	members, err := s.GroupRepo.ListMembers(ctx, group.ID)
	if err != nil {
		return Membership{}, err
	}
	return Membership{InGroup: true, Group: &group, Members: members}, nil
}

// CreateGroup rejects creation when the user already belongs to a group.
func (s *GroupService) CreateGroup(ctx context.Context, ownerID, ownerName, name string) (models.Group, error) {
	_, err := s.GroupRepo.GetGroupByUser(ctx, ownerID)
	if err == nil {
		return models.Group{}, models.ErrAlreadyInGroup
	}
	if !errors.Is(err, models.ErrGroupNotFound) {
		return models.Group{}, err
	}
	return s.GroupRepo.CreateGroup(ctx, ownerID, ownerName, name)
}

func (s *GroupService) SaveForGroup(ctx context.Context, groupID int, listingID, savedBy string) (models.GroupSavedListing, error) {
	if _, err := s.GroupRepo.GetGroupByID(ctx, groupID); err != nil {
		return models.GroupSavedListing{}, err
	}
	return s.GroupRepo.SaveForGroup(ctx, groupID, listingID, savedBy)
}

func (s *GroupService) DeleteGroupSaved(ctx context.Context, groupID int, listingID string) error {
	return s.GroupRepo.DeleteGroupSaved(ctx, groupID, listingID)
}

func (s *GroupService) ListGroupSaved(ctx context.Context, groupID int) ([]models.GroupSavedListing, error) {
	if _, err := s.GroupRepo.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.GroupRepo.ListGroupSaved(ctx, groupID)
}
