package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"lionlease/internal/models"
	"lionlease/internal/services"
)

type InviteHandler struct {
	Service *services.InviteService
}

type createInviteRequest struct {
	GroupID      int    `json:"group_id"`
	InviterID    string `json:"inviter_id"`
	InvitedEmail string `json:"invited_email"`
}

func (h *InviteHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GroupID == 0 || strings.TrimSpace(req.InviterID) == "" || strings.TrimSpace(req.InvitedEmail) == "" {
		writeError(w, http.StatusBadRequest, "group_id, inviter_id and invited_email are required")
		return
	}

	invite, err := h.Service.CreateInvite(r.Context(), req.GroupID, req.InviterID, req.InvitedEmail)
	if errors.Is(err, models.ErrGroupNotFound) {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	if err != nil {
		log.Printf("CreateInvite error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create invite")
		return
	}
	writeJSON(w, http.StatusCreated, invite)
}

func (h *InviteHandler) GetInvite(w http.ResponseWriter, r *http.Request) {
	code := getParam(r, "invite_code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "invite_code is required")
		return
	}

	invite, err := h.Service.GetInvite(r.Context(), code)
	if errors.Is(err, models.ErrInviteNotFound) {
		writeError(w, http.StatusNotFound, "invite not found")
		return
	}
	if err != nil {
		log.Printf("GetInvite error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get invite")
		return
	}
	writeJSON(w, http.StatusOK, invite)
}

type acceptInviteRequest struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
}

func (h *InviteHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	code := getParam(r, "invite_code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "invite_code is required")
		return
	}

	var req acceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "user_id and email are required")
		return
	}

	members, err := h.Service.AcceptInvite(r.Context(), code, req.UserID, req.Email, req.UserName)
	switch {
	case errors.Is(err, models.ErrInviteNotFound):
		writeError(w, http.StatusBadRequest, "invalid invite code")
	case errors.Is(err, models.ErrInviteAccepted):
		writeError(w, http.StatusBadRequest, "invite already accepted")
	case errors.Is(err, models.ErrInviteEmailMismatch):
		writeError(w, http.StatusForbidden, "invite was sent to a different email")
	case errors.Is(err, models.ErrAlreadyInGroup):
		writeError(w, http.StatusBadRequest, "user already belongs to this group")
	case err != nil:
		log.Printf("AcceptInvite error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to accept invite")
	default:
		writeJSON(w, http.StatusOK, map[string]any{"members": members})
	}
}
