package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"lionlease/internal/models"
)

// Catalog holds the session's listing collection: loaded once, shuffled
// once, immutable afterwards. Facets and the feature matcher are derived
// at construction since the collection never changes.
type Catalog struct {
	listings []models.Listing
	byID     map[string]int
	facets   Facets
	matcher  *FeatureMatcher
}

// Load reads the aggregated listings JSON file and builds the catalog.
// Seed 0 shuffles from the clock, giving each session a fresh "original"
// order; any other seed is deterministic.
func Load(path string, seed int64) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listings file: %w", err)
	}
	var listings []models.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode listings file: %w", err)
	}
	return New(listings, seed), nil
}

// New builds a catalog from an in-memory collection. Listings without an
// identity get their position as a string ID before the shuffle, so IDs
// are stable across sessions even though the display order is not.
func New(listings []models.Listing, seed int64) *Catalog {
	for i := range listings {
		if listings[i].ID == "" {
			listings[i].ID = strconv.Itoa(i)
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(listings), func(i, j int) {
		listings[i], listings[j] = listings[j], listings[i]
	})

	byID := make(map[string]int, len(listings))
	for i := range listings {
		byID[listings[i].ID] = i
	}

	return &Catalog{
		listings: listings,
		byID:     byID,
		facets:   ExtractFacets(listings),
		matcher:  NewFeatureMatcher(),
	}
}

// Len returns the collection size.
func (c *Catalog) Len() int { return len(c.listings) }

// Listings returns the session-ordered collection. Callers must not
// mutate it.
func (c *Catalog) Listings() []models.Listing { return c.listings }

// ByID looks a listing up by its stable identity.
func (c *Catalog) ByID(id string) (models.Listing, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Listing{}, models.ErrListingNotFound
	}
	return c.listings[i], nil
}

// Facets returns the distinct-value sets derived at load time.
func (c *Catalog) Facets() Facets { return c.facets }

// Matcher returns the session's feature tag matcher.
func (c *Catalog) Matcher() *FeatureMatcher { return c.matcher }

// QueryResult is one evaluated page of the pipeline plus the facet sets
// the filter controls are populated from.
type QueryResult struct {
	Page
	Facets Facets `json:"facets"`
}

// Query runs the full pipeline: filter, sort, paginate. The requested page
// is interpreted against the new filtered set, so a filter change with
// page 1 can never leak a stale page from a previous, larger result.
func (c *Catalog) Query(spec models.FilterSpec, page int) QueryResult {
	filtered := NewFilter(spec, c.matcher).Apply(c.listings)
	sorted := SortListings(filtered, spec.Sort)
	return QueryResult{
		Page:   Paginate(sorted, page, PageSize),
		Facets: c.facets,
	}
}
