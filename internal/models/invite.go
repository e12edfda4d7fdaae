package models

import (
	"time"
)

// GroupInvite is an email invitation into a group, addressed by a
// uuid invite code embedded in the emailed join link.
type GroupInvite struct {
	ID           int       `json:"id"`
	GroupID      int       `json:"group_id"`
	InviterID    string    `json:"inviter_id"`
	InvitedEmail string    `json:"invited_email"`
	InviteCode   string    `json:"invite_code"`
	Accepted     bool      `json:"accepted"`
	CreatedAt    time.Time `json:"created_at"`
}
