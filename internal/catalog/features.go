package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"lionlease/internal/models"
)

// MaxSuggestions caps how many canonical tags a fuzzy lookup surfaces.
const MaxSuggestions = 8

// Suggestion is one ranked fuzzy-match candidate.
type Suggestion struct {
	Canonical string `json:"canonical"`
	Synonym   string `json:"synonym"`
	Score     int    `json:"score"`
}

type synonymEntry struct {
	canonical string
	synonym   string
}

// FeatureMatcher resolves free-text input to canonical feature tags and
// answers whether a listing exhibits a tag. The vocabulary and listing set
// are static for the session, so per-listing tag sets are computed once
// and cached.
type FeatureMatcher struct {
	vocabulary map[string][]string
	entries    []synonymEntry

	// MinScore is the similarity floor below which fuzzy candidates are
	// dropped. sahilm/fuzzy scores grow with match quality.
	MinScore int

	mu      sync.Mutex
	matched map[string]map[string]bool // listing ID -> canonical tag -> present
}

// NewFeatureMatcher builds a matcher over the curated vocabulary.
func NewFeatureMatcher() *FeatureMatcher {
	return NewFeatureMatcherWith(defaultVocabulary)
}

// NewFeatureMatcherWith builds a matcher over a custom vocabulary; tests
// use small ones.
func NewFeatureMatcherWith(vocabulary map[string][]string) *FeatureMatcher {
	m := &FeatureMatcher{
		vocabulary: vocabulary,
		matched:    make(map[string]map[string]bool),
	}
	canonicals := make([]string, 0, len(vocabulary))
	for canonical := range vocabulary {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)
	for _, canonical := range canonicals {
		for _, syn := range vocabulary[canonical] {
			m.entries = append(m.entries, synonymEntry{canonical: canonical, synonym: syn})
		}
	}
	return m
}

// Canonicals returns the sorted tag vocabulary.
func (m *FeatureMatcher) Canonicals() []string {
	canonicals := make([]string, 0, len(m.vocabulary))
	for canonical := range m.vocabulary {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)
	return canonicals
}

type entrySource []synonymEntry

func (s entrySource) String(i int) string { return s[i].synonym }
func (s entrySource) Len() int            { return len(s) }

// Suggest fuzzy-matches the query against every synonym phrase and returns
// ranked canonical tags, best synonym per tag, already-selected tags
// excluded, capped at MaxSuggestions. A blank query yields nothing.
func (m *FeatureMatcher) Suggest(query string, selected []string) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		selectedSet[s] = struct{}{}
	}

	matches := fuzzy.FindFrom(query, entrySource(m.entries))

	var suggestions []Suggestion
	seen := make(map[string]struct{})
	for _, match := range matches {
		if match.Score < m.MinScore {
			continue
		}
		entry := m.entries[match.Index]
		if _, dup := seen[entry.canonical]; dup {
			continue
		}
		if _, excluded := selectedSet[entry.canonical]; excluded {
			continue
		}
		seen[entry.canonical] = struct{}{}
		suggestions = append(suggestions, Suggestion{
			Canonical: entry.canonical,
			Synonym:   entry.synonym,
			Score:     match.Score,
		})
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}

// ListingHasFeature reports whether any synonym of the canonical tag
// appears, case-insensitively, in the listing's amenities or description.
// Results are cached per (listing, tag) for the session.
func (m *FeatureMatcher) ListingHasFeature(l *models.Listing, canonical string) bool {
	m.mu.Lock()
	byTag, ok := m.matched[l.ID]
	if !ok {
		byTag = make(map[string]bool)
		m.matched[l.ID] = byTag
	}
	if present, cached := byTag[canonical]; cached {
		m.mu.Unlock()
		return present
	}
	m.mu.Unlock()

	present := m.scanListing(l, canonical)

	m.mu.Lock()
	byTag[canonical] = present
	m.mu.Unlock()
	return present
}

func (m *FeatureMatcher) scanListing(l *models.Listing, canonical string) bool {
	synonyms, ok := m.vocabulary[canonical]
	if !ok {
		return false
	}

	description := strings.ToLower(l.Description)
	amenities := make([]string, len(l.Amenities))
	for i, a := range l.Amenities {
		amenities[i] = strings.ToLower(a)
	}

	for _, syn := range synonyms {
		syn = strings.ToLower(syn)
		if description != "" && strings.Contains(description, syn) {
			return true
		}
		for _, amenity := range amenities {
			if strings.Contains(amenity, syn) {
				return true
			}
		}
	}
	return false
}
