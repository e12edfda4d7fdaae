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

type PreferencesHandler struct {
	Service *services.PreferencesService
}

// GetPreferences returns the stored filter state, or an empty object for
// a user who has never saved any.
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	prefs, err := h.Service.GetPreferences(r.Context(), userID)
	if errors.Is(err, models.ErrPreferencesNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	if err != nil {
		log.Printf("GetPreferences error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (h *PreferencesHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(prefs.UserID) == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	saved, err := h.Service.SavePreferences(r.Context(), prefs)
	if err != nil {
		log.Printf("SavePreferences error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *PreferencesHandler) DeletePreferences(w http.ResponseWriter, r *http.Request) {
	userID := getParam(r, "user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	err := h.Service.DeletePreferences(r.Context(), userID)
	if errors.Is(err, models.ErrPreferencesNotFound) {
		writeError(w, http.StatusNotFound, "preferences not found")
		return
	}
	if err != nil {
		log.Printf("DeletePreferences error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete preferences")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
