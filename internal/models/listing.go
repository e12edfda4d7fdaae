package models

import (
	"encoding/json"
)

// LionScore labels are precomputed offline and attached to each listing in
// the dataset. The backend treats them as opaque categories.
const (
	ScoreReasonable = "✅ Reasonable"
	ScoreStealDeal  = "🔥 Steal Deal"
	ScoreTooCheap   = "🚨 Too Cheap to Be True"
	ScoreOverpriced = "💸 Overpriced"
)

// Listing is one record of the aggregated dataset. The collection is loaded
// once at startup and never mutated. Pointer fields are optional in the
// source data; a nil value means "unknown", not zero.
type Listing struct {
	ID                 string          `json:"id"`
	Price              *float64        `json:"price"`
	NetEffectivePrice  *float64        `json:"net_effective_price"`
	Bedrooms           *float64        `json:"bedrooms"`
	Bathrooms          *float64        `json:"bathrooms"`
	SquareFeet         *float64        `json:"square_feet"`
	Latitude           *float64        `json:"latitude"`
	Longitude          *float64        `json:"longitude"`
	Address            string          `json:"address"`
	AreaName           string          `json:"area_name"`
	OrigAreaName       string          `json:"orig_area_name"`
	RoomsDescription   string          `json:"rooms_description"`
	LionScore          string          `json:"LionScore"`
	Marketplace        MarketplaceList `json:"marketplace"`
	NoFee              bool            `json:"no_fee"`
	IsFeatured         bool            `json:"is_featured"`
	BuildingComplaints map[string]int  `json:"building_complaints"`
	Amenities          []string        `json:"amenities"`
	Description        string          `json:"description"`
	URL                string          `json:"url"`
	ImageURL           string          `json:"image_url"`
}

// MarketplaceList absorbs the two shapes the scraped data uses for the
// marketplace field: a single string or a list of strings (cross-posted
// listings carry every source).
type MarketplaceList []string

func (m *MarketplaceList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*m = nil
		} else {
			*m = MarketplaceList{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = MarketplaceList(many)
	return nil
}

// EffectivePrice is the price every filter and sort uses: the post-concession
// net effective price when present, otherwise the nominal price, otherwise 0.
func (l *Listing) EffectivePrice() float64 {
	if l.NetEffectivePrice != nil {
		return *l.NetEffectivePrice
	}
	if l.Price != nil {
		return *l.Price
	}
	return 0
}

// RawArea returns the area label to normalize for facets and area filters.
func (l *Listing) RawArea() string {
	if l.OrigAreaName != "" {
		return l.OrigAreaName
	}
	return l.AreaName
}

// TotalComplaints sums the per-category building complaint counts.
func (l *Listing) TotalComplaints() int {
	total := 0
	for _, n := range l.BuildingComplaints {
		total += n
	}
	return total
}

// HasCoordinates reports whether geocoding resolved this listing.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
