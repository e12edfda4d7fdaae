package models

import (
	"encoding/json"
	"testing"
)

func TestParseBedroomFilter(t *testing.T) {
	tests := []struct {
		in   string
		want BedroomFilter
		ok   bool
	}{
		{"any", BedroomFilter{Kind: BedroomAny}, true},
		{"", BedroomFilter{Kind: BedroomAny}, true},
		{"Studio", BedroomFilter{Kind: BedroomStudio}, true},
		{"studio", BedroomFilter{Kind: BedroomStudio}, true},
		{"4+", BedroomFilter{Kind: BedroomFourPlus}, true},
		{"2", BedroomFilter{Kind: BedroomExact, Count: 2}, true},
		{"1.5", BedroomFilter{Kind: BedroomExact, Count: 1.5}, true},
		{"lots", BedroomFilter{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBedroomFilter(tt.in)
			if tt.ok != (err == nil) {
				t.Fatalf("ParseBedroomFilter(%q) error = %v", tt.in, err)
			}
			if tt.ok && got != tt.want {
				t.Errorf("ParseBedroomFilter(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBedroomFilterJSON(t *testing.T) {
	var b BedroomFilter
	if err := json.Unmarshal([]byte(`3`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind != BedroomExact || b.Count != 3 {
		t.Errorf("numeric form = %+v", b)
	}

	if err := json.Unmarshal([]byte(`"4+"`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind != BedroomFourPlus {
		t.Errorf("string form = %+v", b)
	}

	out, err := json.Marshal(BedroomFilter{Kind: BedroomStudio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"Studio"` {
		t.Errorf("marshal = %s", out)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
		ok   bool
	}{
		{"", SortOriginal, true},
		{"original", SortOriginal, true},
		{"price-asc", SortPriceAsc, true},
		{"price-desc", SortPriceDesc, true},
		{"distance-asc", SortDistanceAsc, true},
		{"distance-desc", SortDistanceDesc, true},
		{"alphabetical", SortOriginal, false},
	}
	for _, tt := range tests {
		got, err := ParseSortOrder(tt.in)
		if tt.ok != (err == nil) {
			t.Fatalf("ParseSortOrder(%q) error = %v", tt.in, err)
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBathroomFilterJSON(t *testing.T) {
	var b BathroomFilter
	if err := json.Unmarshal([]byte(`"any"`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Any {
		t.Errorf("any form = %+v", b)
	}

	if err := json.Unmarshal([]byte(`1.5`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Any || b.Min != 1.5 {
		t.Errorf("numeric form = %+v", b)
	}
}

func TestDefaultFilterSpecIsIdentity(t *testing.T) {
	spec := DefaultFilterSpec()
	if spec.Bedrooms.Kind != BedroomAny {
		t.Errorf("bedrooms = %+v", spec.Bedrooms)
	}
	if !spec.Bathrooms.Any {
		t.Errorf("bathrooms = %+v", spec.Bathrooms)
	}
	if spec.Sort != SortOriginal {
		t.Errorf("sort = %v", spec.Sort)
	}
	if spec.MinPrice != nil || spec.MaxPrice != nil || spec.MaxComplaints != nil {
		t.Error("bounds should default to nil")
	}
	if len(spec.LionScores)+len(spec.Areas)+len(spec.Marketplaces)+len(spec.Features) != 0 {
		t.Error("allowed-sets should default to empty")
	}
}
