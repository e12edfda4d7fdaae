package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"lionlease/internal/models"
	"lionlease/internal/services"
)

type GroupHandler struct {
	Service *services.GroupService
}

func (h *GroupHandler) GetMyGroup(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	membership, err := h.Service.GetMembership(r.Context(), userID)
	if err != nil {
		log.Printf("GetMyGroup error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get group")
		return
	}
	writeJSON(w, http.StatusOK, membership)
}

type createGroupRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Name     string `json:"name"`
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "user_id and name are required")
		return
	}

	group, err := h.Service.CreateGroup(r.Context(), req.UserID, req.UserName, req.Name)
	if errors.Is(err, models.ErrAlreadyInGroup) {
		writeError(w, http.StatusBadRequest, "user already belongs to a group")
		return
	}
	if err != nil {
		log.Printf("CreateGroup error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create group")
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

type groupSaveRequest struct {
	GroupID   int    `json:"group_id"`
	ListingID string `json:"listing_id"`
	SavedBy   string `json:"saved_by"`
}

func (h *GroupHandler) SaveForGroup(w http.ResponseWriter, r *http.Request) {
	var req groupSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GroupID == 0 || strings.TrimSpace(req.ListingID) == "" || strings.TrimSpace(req.SavedBy) == "" {
		writeError(w, http.StatusBadRequest, "group_id, listing_id and saved_by are required")
		return
	}

	saved, err := h.Service.SaveForGroup(r.Context(), req.GroupID, req.ListingID, req.SavedBy)
	if errors.Is(err, models.ErrGroupNotFound) {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	if err != nil {
		log.Printf("SaveForGroup error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save listing for group")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *GroupHandler) DeleteGroupSaved(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(getParam(r, "group_id"))
	if err != nil || groupID == 0 {
		writeError(w, http.StatusBadRequest, "invalid group_id")
		return
	}
	listingID := getParam(r, "listing_id")
	if listingID == "" {
		writeError(w, http.StatusBadRequest, "listing_id is required")
		return
	}

	err = h.Service.DeleteGroupSaved(r.Context(), groupID, listingID)
	if errors.Is(err, models.ErrSavedNotFound) {
		writeError(w, http.StatusNotFound, "group saved listing not found")
		return
	}
	if err != nil {
		log.Printf("DeleteGroupSaved error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete group saved listing")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *GroupHandler) ListGroupSaved(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.Atoi(getParam(r, "group_id"))
	if err != nil || groupID == 0 {
		writeError(w, http.StatusBadRequest, "invalid group_id")
		return
	}

	saved, err := h.Service.ListGroupSaved(r.Context(), groupID)
	if errors.Is(err, models.ErrGroupNotFound) {
		writeError(w, http.StatusNotFound, "group not found")
		return
	}
	if err != nil {
		log.Printf("ListGroupSaved error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list group saved listings")
		return
	}
	if saved == nil {
		saved = []models.GroupSavedListing{}
	}
	writeJSON(w, http.StatusOK, saved)
}
