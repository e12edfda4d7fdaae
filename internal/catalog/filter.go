package catalog

import (
	"strings"

	"lionlease/internal/models"
)

// Filter evaluates one FilterSpec against listings. The allowed-sets are
// normalized once at construction so the per-listing check is a map lookup.
type Filter struct {
	spec    models.FilterSpec
	scores  map[string]struct{}
	markets map[string]struct{}
	areas   map[string]struct{}
	matcher *FeatureMatcher
}

// NewFilter compiles a filter specification. The matcher is only consulted
// when the spec requires feature tags; it may be nil otherwise.
func NewFilter(spec models.FilterSpec, matcher *FeatureMatcher) *Filter {
	return &Filter{
		spec:    spec,
		scores:  toSet(spec.LionScores, false),
		markets: toSet(spec.Marketplaces, true),
		areas:   toSet(spec.Areas, true),
		matcher: matcher,
	}
}

func toSet(values []string, normalize bool) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if normalize {
			v = NormalizeLabel(v)
		}
		set[v] = struct{}{}
	}
	return set
}

// Apply returns the listings the spec admits, preserving input order.
func (f *Filter) Apply(listings []models.Listing) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if f.Matches(&listings[i]) {
			filtered = append(filtered, listings[i])
		}
	}
	return filtered
}

// Matches is a logical AND across the sub-predicates. A missing optional
// field on the listing always degrades to the permissive default; filters
// never reject a listing for data the dataset simply does not have, except
// where the selector explicitly demands a value (specific bedroom counts).
func (f *Filter) Matches(l *models.Listing) bool {
	spec := f.spec

	price := l.EffectivePrice()
	if spec.MinPrice != nil && price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && price > *spec.MaxPrice {
		return false
	}

	if !f.matchesBedrooms(l) {
		return false
	}

	if !spec.Bathrooms.Any {
		baths := 0.0
		if l.Bathrooms != nil {
			baths = *l.Bathrooms
		}
		if baths < spec.Bathrooms.Min {
			return false
		}
	}

	if f.scores != nil {
		if _, ok := f.scores[l.LionScore]; !ok {
			return false
		}
	}

	if f.markets != nil && !f.matchesMarketplace(l) {
		return false
	}

	if spec.MaxComplaints != nil && l.TotalComplaints() > *spec.MaxComplaints {
		return false
	}

	if spec.OnlyNoFee && !l.NoFee {
		return false
	}
	if spec.OnlyFeatured && !l.IsFeatured {
		return false
	}

	if f.areas != nil {
		if _, ok := f.areas[NormalizeLabel(l.RawArea())]; !ok {
			return false
		}
	}

	if len(spec.Features) > 0 {
		if f.matcher == nil {
			return false
		}
		for _, tag := range spec.Features {
			if !f.matcher.ListingHasFeature(l, tag) {
				return false
			}
		}
	}

	return true
}

// DerivedBedrooms returns the bedroom count used by the bedroom selector:
// the listed count, 0.5 for listings whose room description says studio,
// or nil when nothing can be derived.
func DerivedBedrooms(l *models.Listing) *float64 {
	if l.Bedrooms != nil {
		return l.Bedrooms
	}
	if strings.Contains(strings.ToLower(l.RoomsDescription), "studio") {
		studio := 0.5
		return &studio
	}
	return nil
}

func (f *Filter) matchesBedrooms(l *models.Listing) bool {
	sel := f.spec.Bedrooms
	if sel.Kind == models.BedroomAny {
		return true
	}
	beds := DerivedBedrooms(l)
	if beds == nil {
		return false
	}
	switch sel.Kind {
	case models.BedroomStudio:
		return *beds == 0.5
	case models.BedroomFourPlus:
		return *beds >= 4
	case models.BedroomExact:
		return *beds == sel.Count
	}
	return true
}

func (f *Filter) matchesMarketplace(l *models.Listing) bool {
	for _, mp := range l.Marketplace {
		if _, ok := f.markets[NormalizeLabel(mp)]; ok {
			return true
		}
	}
	return false
}
