package models

import (
	"errors"
)

var (
	ErrListingNotFound     = errors.New("models: listing not found")
	ErrPreferencesNotFound = errors.New("models: preferences not found")
	ErrSavedNotFound       = errors.New("models: saved listing not found")
	ErrGroupNotFound       = errors.New("models: group not found")
	ErrAlreadyInGroup      = errors.New("models: user already belongs to a group")
	ErrInviteNotFound      = errors.New("models: invite not found")
	ErrInviteAccepted      = errors.New("models: invite already accepted")
	ErrInviteEmailMismatch = errors.New("models: invite is for a different email address")
)
