package catalog

import (
	"sort"

	"lionlease/internal/models"
)

// SortListings returns a new slice ordered by the given key. The input is
// never mutated and all orderings are stable, so ties keep the relative
// order filtering produced. "Original" returns the sequence as-is — the
// load-time shuffle is the original order for the whole session.
func SortListings(listings []models.Listing, order models.SortOrder) []models.Listing {
	sorted := make([]models.Listing, len(listings))
	copy(sorted, listings)

	switch order {
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() < sorted[j].EffectivePrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EffectivePrice() > sorted[j].EffectivePrice()
		})
	case models.SortDistanceAsc:
		sortByDistance(sorted, true)
	case models.SortDistanceDesc:
		sortByDistance(sorted, false)
	case models.SortOriginal:
	}

	return sorted
}

// campusDistance returns the listing's distance from the campus reference
// point, or nil when the listing has no resolved coordinates.
func campusDistance(l *models.Listing) *float64 {
	if !l.HasCoordinates() {
		return nil
	}
	d := DistanceMiles(Coordinate{Lat: *l.Latitude, Lon: *l.Longitude}, Campus)
	return &d
}

// Listings without coordinates sort last regardless of direction, keeping
// the order total without ever computing a distance for them.
func sortByDistance(listings []models.Listing, asc bool) {
	sort.SliceStable(listings, func(i, j int) bool {
		di := campusDistance(&listings[i])
		dj := campusDistance(&listings[j])
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		if asc {
			return *di < *dj
		}
		return *di > *dj
	})
}
