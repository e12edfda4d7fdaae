package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FilterSpec is the user-editable filter state that drives the listing
// query pipeline. Empty allowed-sets mean "no restriction" — that is the
// default state of the UI and must never be read as "match nothing".
type FilterSpec struct {
	MinPrice      *float64       `json:"min_price"`
	MaxPrice      *float64       `json:"max_price"`
	Bedrooms      BedroomFilter  `json:"bedrooms"`
	Bathrooms     BathroomFilter `json:"bathrooms"`
	LionScores    []string       `json:"lion_scores"`
	Marketplaces  []string       `json:"marketplaces"`
	MaxComplaints *int           `json:"max_complaints"`
	OnlyNoFee     bool           `json:"only_no_fee"`
	OnlyFeatured  bool           `json:"only_featured"`
	Areas         []string       `json:"areas"`
	Features      []string       `json:"features"`
	Sort          SortOrder      `json:"sort"`
}

// BedroomKind enumerates the bedroom selector variants.
type BedroomKind int

const (
	BedroomAny BedroomKind = iota
	BedroomStudio
	BedroomFourPlus
	BedroomExact
)

// BedroomFilter is the bedroom selector. Clients send "any", "Studio",
// "4+", or a number; the zero value is "any".
type BedroomFilter struct {
	Kind  BedroomKind
	Count float64 // set only for BedroomExact
}

func (b BedroomFilter) MarshalJSON() ([]byte, error) {
	switch b.Kind {
	case BedroomStudio:
		return json.Marshal("Studio")
	case BedroomFourPlus:
		return json.Marshal("4+")
	case BedroomExact:
		return json.Marshal(b.Count)
	default:
		return json.Marshal("any")
	}
}

func (b *BedroomFilter) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*b = BedroomFilter{Kind: BedroomExact, Count: num}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid bedrooms filter: %s", string(data))
	}
	parsed, err := ParseBedroomFilter(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBedroomFilter converts the client's string form of the selector.
func ParseBedroomFilter(s string) (BedroomFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return BedroomFilter{Kind: BedroomAny}, nil
	case "studio":
		return BedroomFilter{Kind: BedroomStudio}, nil
	case "4+":
		return BedroomFilter{Kind: BedroomFourPlus}, nil
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return BedroomFilter{}, fmt.Errorf("invalid bedrooms filter: %q", s)
	}
	return BedroomFilter{Kind: BedroomExact, Count: num}, nil
}

// BathroomFilter is the bathroom minimum: "any" (zero value) or a numeric
// threshold the listing's bathroom count must meet.
type BathroomFilter struct {
	Any bool
	Min float64
}

// AnyBathrooms is the selector's default state.
func AnyBathrooms() BathroomFilter { return BathroomFilter{Any: true} }

func (b BathroomFilter) MarshalJSON() ([]byte, error) {
	if b.Any {
		return json.Marshal("any")
	}
	return json.Marshal(b.Min)
}

func (b *BathroomFilter) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*b = BathroomFilter{Min: num}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid bathrooms filter: %s", string(data))
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "any" {
		*b = AnyBathrooms()
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid bathrooms filter: %q", s)
	}
	*b = BathroomFilter{Min: num}
	return nil
}

// SortOrder enumerates the supported listing orderings.
type SortOrder int

const (
	SortOriginal SortOrder = iota
	SortPriceAsc
	SortPriceDesc
	SortDistanceAsc
	SortDistanceDesc
)

var sortOrderNames = map[SortOrder]string{
	SortOriginal:     "original",
	SortPriceAsc:     "price-asc",
	SortPriceDesc:    "price-desc",
	SortDistanceAsc:  "distance-asc",
	SortDistanceDesc: "distance-desc",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return "original"
}

func (o SortOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *SortOrder) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid sort order: %s", string(data))
	}
	parsed, err := ParseSortOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseSortOrder converts the client's string form; the empty string is the
// session default ("original").
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "original", "default":
		return SortOriginal, nil
	case "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	case "distance-asc":
		return SortDistanceAsc, nil
	case "distance-desc":
		return SortDistanceDesc, nil
	}
	return SortOriginal, fmt.Errorf("invalid sort order: %q", s)
}

// DefaultFilterSpec is the pipeline's identity filter: no bounds, every
// selector on "any", every allowed-set empty.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Bedrooms:  BedroomFilter{Kind: BedroomAny},
		Bathrooms: AnyBathrooms(),
		Sort:      SortOriginal,
	}
}
