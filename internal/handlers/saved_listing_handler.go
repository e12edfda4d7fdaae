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

type SavedListingHandler struct {
	Service *services.SavedListingService
}

type saveListingRequest struct {
	UserID    string `json:"user_id"`
	ListingID string `json:"listing_id"`
}

func (h *SavedListingHandler) SaveListing(w http.ResponseWriter, r *http.Request) {
	var req saveListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.ListingID) == "" {
		writeError(w, http.StatusBadRequest, "user_id and listing_id are required")
		return
	}

	if err := h.Service.SaveListing(r.Context(), req.UserID, req.ListingID); err != nil {
		log.Printf("SaveListing error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save listing")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *SavedListingHandler) UnsaveListing(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	listingID := getParam(r, "listing_id")
	if userID == "" || listingID == "" {
		writeError(w, http.StatusBadRequest, "user_id and listing_id are required")
		return
	}

	err := h.Service.UnsaveListing(r.Context(), userID, listingID)
	if errors.Is(err, models.ErrSavedNotFound) {
		writeError(w, http.StatusNotFound, "saved listing not found")
		return
	}
	if err != nil {
		log.Printf("UnsaveListing error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to unsave listing")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *SavedListingHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	saved, err := h.Service.ListSaved(r.Context(), userID)
	if err != nil {
		log.Printf("ListSaved error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list saved listings")
		return
	}
	if saved == nil {
		saved = []models.SavedListing{}
	}
	writeJSON(w, http.StatusOK, saved)
}
