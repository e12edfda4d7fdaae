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

type AssistantHandler struct {
	Service *services.AssistantService
}

type askRequest struct {
	Question  string `json:"question"`
	ListingID string `json:"listing_id"`
}

func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.ListingID) == "" {
		writeError(w, http.StatusBadRequest, "question and listing_id are required")
		return
	}

	answer, err := h.Service.Ask(r.Context(), req.Question, req.ListingID)
	if errors.Is(err, models.ErrListingNotFound) {
		writeError(w, http.StatusNotFound, "listing not found")
		return
	}
	if err != nil {
		log.Printf("Ask error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate answer")
		return
	}
	writeJSON(w, http.StatusOK, answer)
}
