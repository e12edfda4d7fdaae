package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"lionlease/internal/models"
	"lionlease/internal/services"
)

type ListingHandler struct {
	Service *services.ListingService
}

type listingQueryRequest struct {
	models.FilterSpec
	Page int `json:"page"`
}

// QueryListings runs the full pipeline for a client-supplied filter spec.
// Absent fields keep the identity-filter defaults, so a partial body is a
// narrower query, never a broken one.
func (h *ListingHandler) QueryListings(w http.ResponseWriter, r *http.Request) {
	req := listingQueryRequest{FilterSpec: models.DefaultFilterSpec(), Page: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.Service.Query(req.FilterSpec, req.Page))
}

// ListListings serves the unfiltered collection a page at a time.
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)
	writeJSON(w, http.StatusOK, h.Service.Query(models.DefaultFilterSpec(), page))
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	listing, err := h.Service.GetByID(id)
	if errors.Is(err, models.ErrListingNotFound) {
		writeError(w, http.StatusNotFound, "listing not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get listing")
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets := h.Service.Facets()
	writeJSON(w, http.StatusOK, map[string]any{
		"areas":        facets.Areas,
		"marketplaces": facets.Marketplaces,
		"quality_labels": []string{
			models.ScoreStealDeal,
			models.ScoreReasonable,
			models.ScoreOverpriced,
			models.ScoreTooCheap,
		},
	})
}

// SuggestFeatures answers the tag-autocomplete box. `selected` is a
// comma-separated list of tags already chosen, which are excluded from
// the suggestions.
func (h *ListingHandler) SuggestFeatures(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	var selected []string
	if raw := r.URL.Query().Get("selected"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				selected = append(selected, tag)
			}
		}
	}

	suggestions := h.Service.SuggestFeatures(query, selected)
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
