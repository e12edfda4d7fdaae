package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"lionlease/internal/models"
	"lionlease/internal/services"
)

type FilterUsageHandler struct {
	Service *services.FilterUsageService
}

type trackUsageRequest struct {
	UserID  string  `json:"user_id"`
	Feature string  `json:"feature"`
	Action  string  `json:"action"`
	Context *string `json:"context"`
}

func (h *FilterUsageHandler) TrackUsage(w http.ResponseWriter, r *http.Request) {
	var req trackUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Feature) == "" {
		writeError(w, http.StatusBadRequest, "user_id and feature are required")
		return
	}
	switch req.Action {
	case models.UsageActionAdded, models.UsageActionRemoved, models.UsageActionSearched:
	default:
		writeError(w, http.StatusBadRequest, "invalid action")
		return
	}

	saved, err := h.Service.Track(r.Context(), models.SmartFilterUsage{
		UserID:  req.UserID,
		Feature: req.Feature,
		Action:  req.Action,
		Context: req.Context,
	})
	if err != nil {
		log.Printf("TrackUsage error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to track usage")
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (h *FilterUsageHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	days := getIntParam(r, "days", 0)
	limit := getIntParam(r, "limit", 0)

	analytics, err := h.Service.Analytics(r.Context(), days, limit)
	if err != nil {
		log.Printf("GetAnalytics error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get analytics")
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

func (h *FilterUsageHandler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	limit := getIntParam(r, "limit", 0)

	history, err := h.Service.UserHistory(r.Context(), userID, limit)
	if err != nil {
		log.Printf("GetUserHistory error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get usage history")
		return
	}
	if history == nil {
		history = []models.SmartFilterUsage{}
	}
	writeJSON(w, http.StatusOK, history)
}
