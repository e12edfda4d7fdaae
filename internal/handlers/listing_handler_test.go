package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lionlease/internal/catalog"
	"lionlease/internal/models"
	"lionlease/internal/services"
)

func fptr(v float64) *float64 { return &v }

func handlerFixture(t *testing.T) *ListingHandler {
	t.Helper()
	listings := []models.Listing{
		{ID: "a", Price: fptr(1800), Bedrooms: fptr(1), AreaName: "harlem", Marketplace: models.MarketplaceList{"StreetEasy"}},
		{ID: "b", Price: fptr(2600), Bedrooms: fptr(2), AreaName: "harlem", Marketplace: models.MarketplaceList{"Zillow"}},
		{ID: "c", Price: fptr(3200), Bedrooms: fptr(3), AreaName: "upper west side", Marketplace: models.MarketplaceList{"StreetEasy"}},
	}
	cat := catalog.New(listings, 1)
	return &ListingHandler{Service: &services.ListingService{Catalog: cat}}
}

func TestQueryListingsFiltersByPrice(t *testing.T) {
	h := handlerFixture(t)

	body := strings.NewReader(`{"max_price": 2000, "page": 1}`)
	r := httptest.NewRequest(http.MethodPost, "/api/listings/query", body)
	w := httptest.NewRecorder()
	h.QueryListings(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Listings   []models.Listing `json:"listings"`
		TotalItems int              `json:"total_items"`
		Facets     catalog.Facets   `json:"facets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalItems != 1 {
		t.Fatalf("total_items = %d, want 1", resp.TotalItems)
	}
	if resp.Listings[0].ID != "a" {
		t.Errorf("listing id = %q, want %q", resp.Listings[0].ID, "a")
	}
	if len(resp.Facets.Areas) != 2 {
		t.Errorf("facet areas = %v", resp.Facets.Areas)
	}
}

func TestQueryListingsRejectsBadBody(t *testing.T) {
	h := handlerFixture(t)

	r := httptest.NewRequest(http.MethodPost, "/api/listings/query", strings.NewReader(`{"bedrooms": {}}`))
	w := httptest.NewRecorder()
	h.QueryListings(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected an error body")
	}
}

func TestGetListing(t *testing.T) {
	h := handlerFixture(t)

	t.Run("known id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/listings/b?id=b", nil)
		w := httptest.NewRecorder()
		h.GetListing(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var listing models.Listing
		if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if listing.ID != "b" {
			t.Errorf("id = %q, want %q", listing.ID, "b")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/listings/zzz?id=zzz", nil)
		w := httptest.NewRecorder()
		h.GetListing(w, r)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}

func TestGetFacets(t *testing.T) {
	h := handlerFixture(t)

	r := httptest.NewRequest(http.MethodGet, "/api/listings/facets", nil)
	w := httptest.NewRecorder()
	h.GetFacets(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Areas         []string `json:"areas"`
		Marketplaces  []string `json:"marketplaces"`
		QualityLabels []string `json:"quality_labels"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Areas) != 2 || resp.Areas[0] != "Harlem" {
		t.Errorf("areas = %v", resp.Areas)
	}
	if len(resp.Marketplaces) != 2 {
		t.Errorf("marketplaces = %v", resp.Marketplaces)
	}
	if len(resp.QualityLabels) != 4 {
		t.Errorf("quality_labels = %v", resp.QualityLabels)
	}
}

func TestSuggestFeatures(t *testing.T) {
	h := handlerFixture(t)

	r := httptest.NewRequest(http.MethodGet, "/api/features/suggest?q=gym", nil)
	w := httptest.NewRecorder()
	h.SuggestFeatures(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Suggestions []catalog.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Suggestions) == 0 {
		t.Fatal("expected suggestions for \"gym\"")
	}
	if resp.Suggestions[0].Canonical != "gym" {
		t.Errorf("top suggestion = %q, want %q", resp.Suggestions[0].Canonical, "gym")
	}

	// already-selected tags never come back
	r = httptest.NewRequest(http.MethodGet, "/api/features/suggest?q=gym&selected=gym", nil)
	w = httptest.NewRecorder()
	h.SuggestFeatures(w, r)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, s := range resp.Suggestions {
		if s.Canonical == "gym" {
			t.Errorf("selected tag %q still suggested", s.Canonical)
		}
	}
}

func TestListListingsPaging(t *testing.T) {
	h := handlerFixture(t)

	r := httptest.NewRequest(http.MethodGet, "/api/listings?page=1", nil)
	w := httptest.NewRecorder()
	h.ListListings(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp catalog.QueryResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalItems != 3 || resp.CurrentPage != 1 || resp.HasNextPage {
		t.Errorf("unexpected page metadata: %+v", resp.Page)
	}
}
