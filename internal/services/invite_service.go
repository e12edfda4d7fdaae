package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lionlease/internal/models"
	"lionlease/internal/repositories"
)

// EmailSender delivers one transactional email. Delivery is best effort:
// the invite flow logs failures instead of surfacing them.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

type InviteService struct {
	InviteRepo  *repositories.InviteRepository
	GroupRepo   *repositories.GroupRepository
	Email       EmailSender
	FrontendURL string
	ErrorLog    *log.Logger
}

// CreateInvite stores the invite and fires the email off asynchronously;
// the response never waits on the email provider.
func (s *InviteService) CreateInvite(ctx context.Context, groupID int, inviterID, invitedEmail string) (models.GroupInvite, error) {
	group, err := s.GroupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return models.GroupInvite{}, err
	}

	code := uuid.NewString()
	invite, err := s.InviteRepo.CreateInvite(ctx, groupID, inviterID, strings.ToLower(strings.TrimSpace(invitedEmail)), code)
	if err != nil {
		return models.GroupInvite{}, err
	}

	if s.Email != nil {
		go s.sendInviteEmail(group, invite)
	}
	return invite, nil
}

func (s *InviteService) sendInviteEmail(group models.Group, invite models.GroupInvite) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	joinLink := strings.TrimRight(s.FrontendURL, "/") + "/join/" + invite.InviteCode
	subject := fmt.Sprintf("You're invited to join %s on Lion Lease", group.Name)
	html := fmt.Sprintf(
		`<p>You've been invited to join the apartment-hunting group <strong>%s</strong>.</p>`+
			`<p><a href="%s">Accept your invite</a></p>`,
		group.Name, joinLink)

	if err := s.Email.Send(ctx, invite.InvitedEmail, subject, html); err != nil {
		s.ErrorLog.Printf("invite email to %s failed: %v", invite.InvitedEmail, err)
	}
}

func (s *InviteService) GetInvite(ctx context.Context, inviteCode string) (models.GroupInvite, error) {
	return s.InviteRepo.GetByCode(ctx, inviteCode)
}

// AcceptInvite validates the code and the invitee's email, joins the
// group, and returns the updated roster.
func (s *InviteService) AcceptInvite(ctx context.Context, inviteCode, userID, email, name string) ([]models.GroupMember, error) {
	invite, err := s.InviteRepo.GetByCode(ctx, inviteCode)
	if err != nil {
		return nil, err
	}
	if invite.Accepted {
		return nil, models.ErrInviteAccepted
	}
	if !strings.EqualFold(strings.TrimSpace(email), invite.InvitedEmail) {
		return nil, models.ErrInviteEmailMismatch
	}

	if err := s.GroupRepo.AddMember(ctx, invite.GroupID, userID, name); err != nil {
		return nil, err
	}
	if err := s.InviteRepo.MarkAccepted(ctx, inviteCode); err != nil {
		return nil, err
	}
	return s.GroupRepo.ListMembers(ctx, invite.GroupID)
}
