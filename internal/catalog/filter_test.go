package catalog

import (
	"testing"

	"lionlease/internal/models"
)

func intp(i int) *int { return &i }

func TestIdentityFilterMatchesEverything(t *testing.T) {
	listings := append(testListings(), models.Listing{ID: "bare"})
	f := NewFilter(models.DefaultFilterSpec(), nil)
	for i := range listings {
		if !f.Matches(&listings[i]) {
			t.Fatalf("expected identity filter to match listing %s", listings[i].ID)
		}
	}
}

func TestFilterIsDeterministic(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.MinPrice = fptr(1200)
	f := NewFilter(spec, nil)
	l := testListings()[0]
	if f.Matches(&l) != f.Matches(&l) {
		t.Fatalf("expected repeated evaluation to agree")
	}
}

func TestPriceBounds(t *testing.T) {
	listings := testListings()

	spec := models.DefaultFilterSpec()
	spec.MinPrice = fptr(1200)
	got := ids(NewFilter(spec, nil).Apply(listings))
	if !sameIDs(got, []string{"2", "3"}) {
		t.Fatalf("expected [2 3], got %v", got)
	}

	spec = models.DefaultFilterSpec()
	spec.MaxPrice = fptr(1500)
	got = ids(NewFilter(spec, nil).Apply(listings))
	if !sameIDs(got, []string{"1", "3"}) {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestNetEffectivePriceTakesPrecedence(t *testing.T) {
	l := models.Listing{ID: "x", Price: fptr(3000), NetEffectivePrice: fptr(2500)}
	spec := models.DefaultFilterSpec()
	spec.MaxPrice = fptr(2600)
	if !NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected net effective price to be used for the bound")
	}
}

func TestAreaFilter(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Areas = []string{"Harlem"}
	got := ids(NewFilter(spec, nil).Apply(testListings()))
	if !sameIDs(got, []string{"1", "2"}) {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestBedroomSelector(t *testing.T) {
	studioByDescription := models.Listing{ID: "s", RoomsDescription: "Cozy Studio Apt"}
	fourBed := models.Listing{ID: "4", Bedrooms: fptr(5)}
	unknown := models.Listing{ID: "u"}

	cases := []struct {
		name    string
		listing models.Listing
		sel     string
		want    bool
	}{
		{"studio derived from description", studioByDescription, "Studio", true},
		{"any passes unknown", unknown, "any", true},
		{"unknown fails specific", unknown, "2", false},
		{"unknown fails studio", unknown, "Studio", false},
		{"unknown fails four plus", unknown, "4+", false},
		{"four plus", fourBed, "4+", true},
		{"exact match", models.Listing{ID: "2", Bedrooms: fptr(2)}, "2", true},
		{"exact mismatch", fourBed, "2", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := models.ParseBedroomFilter(tc.sel)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			spec := models.DefaultFilterSpec()
			spec.Bedrooms = sel
			if got := NewFilter(spec, nil).Matches(&tc.listing); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestBathroomMinimumTreatsMissingAsZero(t *testing.T) {
	noBaths := models.Listing{ID: "n"}
	twoBaths := models.Listing{ID: "2", Bathrooms: fptr(2)}

	spec := models.DefaultFilterSpec()
	spec.Bathrooms = models.BathroomFilter{Min: 1}
	f := NewFilter(spec, nil)
	if f.Matches(&noBaths) {
		t.Fatalf("expected missing bathroom count to fail a numeric minimum")
	}
	if !f.Matches(&twoBaths) {
		t.Fatalf("expected 2 bathrooms to pass a minimum of 1")
	}

	spec.Bathrooms = models.AnyBathrooms()
	if !NewFilter(spec, nil).Matches(&noBaths) {
		t.Fatalf(`expected "any" to pass a missing bathroom count`)
	}
}

func TestMarketplaceNormalization(t *testing.T) {
	l := models.Listing{ID: "m", Marketplace: models.MarketplaceList{"streeteasy", "compass"}}
	spec := models.DefaultFilterSpec()
	spec.Marketplaces = []string{"StreetEasy"}
	if !NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected normalized marketplace labels to intersect")
	}

	spec.Marketplaces = []string{"Zillow"}
	if NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected non-intersecting marketplaces to exclude the listing")
	}
}

func TestLionScoreFilter(t *testing.T) {
	l := models.Listing{ID: "q", LionScore: models.ScoreStealDeal}
	spec := models.DefaultFilterSpec()
	spec.LionScores = []string{models.ScoreReasonable}
	if NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected listing outside the allowed label set to be excluded")
	}
	spec.LionScores = nil
	if !NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected the empty allowed-set to match everything")
	}
}

func TestComplaintsThreshold(t *testing.T) {
	l := models.Listing{ID: "c", BuildingComplaints: map[string]int{"noise": 3, "heat": 4}}
	spec := models.DefaultFilterSpec()
	spec.MaxComplaints = intp(6)
	if NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected 7 total complaints to exceed a threshold of 6")
	}
	spec.MaxComplaints = intp(7)
	if !NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected 7 total complaints to pass a threshold of 7")
	}

	none := models.Listing{ID: "z"}
	spec.MaxComplaints = intp(0)
	if !NewFilter(spec, nil).Matches(&none) {
		t.Fatalf("expected a missing complaints mapping to count as zero")
	}
}

func TestBooleanFlags(t *testing.T) {
	l := models.Listing{ID: "f"}
	spec := models.DefaultFilterSpec()
	spec.OnlyNoFee = true
	if NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected fee-charging listing to fail only-no-fee")
	}
	l.NoFee = true
	if !NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected no-fee listing to pass only-no-fee")
	}

	spec = models.DefaultFilterSpec()
	spec.OnlyFeatured = true
	if NewFilter(spec, nil).Matches(&l) {
		t.Fatalf("expected non-featured listing to fail only-featured")
	}
}

func TestFeatureTagPredicate(t *testing.T) {
	matcher := NewFeatureMatcherWith(map[string][]string{
		"elevator": {"elevator", "lift"},
	})
	with := models.Listing{ID: "a", Amenities: []string{"Elevator", "Gym"}}
	without := models.Listing{ID: "b", Description: "Charming walk up"}

	spec := models.DefaultFilterSpec()
	spec.Features = []string{"elevator"}
	f := NewFilter(spec, matcher)
	if !f.Matches(&with) {
		t.Fatalf("expected amenity match to satisfy the feature tag")
	}
	if f.Matches(&without) {
		t.Fatalf("expected listing without the feature to be excluded")
	}
}
