package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"lionlease/internal/models"
	"lionlease/internal/services"
)

type ViewedListingHandler struct {
	Service *services.ViewedListingService
}

type markViewedRequest struct {
	UserID    string `json:"user_id"`
	ListingID string `json:"listing_id"`
}

func (h *ViewedListingHandler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	var req markViewedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.ListingID) == "" {
		writeError(w, http.StatusBadRequest, "user_id and listing_id are required")
		return
	}

	viewed, err := h.Service.MarkViewed(r.Context(), req.UserID, req.ListingID)
	if err != nil {
		log.Printf("MarkViewed error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to record view")
		return
	}
	writeJSON(w, http.StatusCreated, viewed)
}

func (h *ViewedListingHandler) ListViewed(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	viewed, err := h.Service.ListViewed(r.Context(), userID)
	if err != nil {
		log.Printf("ListViewed error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list viewed listings")
		return
	}
	if viewed == nil {
		viewed = []models.ViewedListing{}
	}
	writeJSON(w, http.StatusOK, viewed)
}
