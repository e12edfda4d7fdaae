package catalog

import (
	"sort"
	"strings"

	"lionlease/internal/models"
)

// NormalizeLabel canonicalizes a raw area or marketplace label:
// "UPPER  WEST side" becomes "Upper West Side". Empty input stays empty.
func NormalizeLabel(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// Facets are the distinct-value sets the filter UI is populated from.
type Facets struct {
	Areas        []string `json:"areas"`
	Marketplaces []string `json:"marketplaces"`
}

// ExtractFacets derives the sorted distinct normalized area and marketplace
// sets from a listing collection. Total over any input; the empty
// collection yields empty sets.
func ExtractFacets(listings []models.Listing) Facets {
	areaSet := make(map[string]struct{})
	marketSet := make(map[string]struct{})

	for i := range listings {
		if raw := listings[i].RawArea(); raw != "" {
			areaSet[NormalizeLabel(raw)] = struct{}{}
		}
		for _, mp := range listings[i].Marketplace {
			if norm := NormalizeLabel(mp); norm != "" {
				marketSet[norm] = struct{}{}
			}
		}
	}

	return Facets{
		Areas:        sortedKeys(areaSet),
		Marketplaces: sortedKeys(marketSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
