package services

import (
	"lionlease/internal/catalog"
	"lionlease/internal/models"
)

// ListingService fronts the in-memory catalog. Everything here is pure
// and session-static, so no context plumbing is needed.
type ListingService struct {
	Catalog *catalog.Catalog
}

func (s *ListingService) Query(spec models.FilterSpec, page int) catalog.QueryResult {
	return s.Catalog.Query(spec, page)
}

func (s *ListingService) GetByID(id string) (models.Listing, error) {
	return s.Catalog.ByID(id)
}

func (s *ListingService) Facets() catalog.Facets {
	return s.Catalog.Facets()
}

func (s *ListingService) SuggestFeatures(query string, selected []string) []catalog.Suggestion {
	return s.Catalog.Matcher().Suggest(query, selected)
}
