package catalog

import (
	"lionlease/internal/models"
)

// PageSize is fixed for the life of the pipeline.
const PageSize = 16

// Page is one slice of the filtered, sorted collection plus the metadata
// the pagination controls render ("showing X–Y of Z").
type Page struct {
	Listings    []models.Listing `json:"listings"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	TotalItems  int              `json:"total_items"`
	StartIndex  int              `json:"start_index"`
	EndIndex    int              `json:"end_index"`
	HasNextPage bool             `json:"has_next_page"`
	HasPrevPage bool             `json:"has_prev_page"`
}

// Paginate slices the ordered collection into the requested page. The page
// number is clamped into [1, totalPages] so a stale number can never yield
// an empty page; the empty collection produces page 1 of 0 with no items.
func Paginate(listings []models.Listing, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = PageSize
	}

	totalItems := len(listings)
	totalPages := (totalItems + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	if totalItems == 0 {
		return Page{
			Listings:    []models.Listing{},
			CurrentPage: 1,
		}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Listings:    listings[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		StartIndex:  start + 1,
		EndIndex:    end,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// Pager tracks the current page across renders. Out-of-range requests are
// no-ops; changing filters must call Reset before the next slice so a page
// number from a larger result set never reaches a smaller one.
type Pager struct {
	current    int
	totalPages int
	pageSize   int
}

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return &Pager{current: 1, pageSize: pageSize}
}

func (p *Pager) Current() int { return p.current }

// GoToPage moves to page n when it is within [1, totalPages] as of the last
// slice; anything else leaves the current page unchanged.
func (p *Pager) GoToPage(n int) {
	if n < 1 || n > p.totalPages {
		return
	}
	p.current = n
}

// Reset returns to page 1. Call on every filter change, before slicing.
func (p *Pager) Reset() { p.current = 1 }

// Slice paginates with the pager's current page and remembers the page
// count for subsequent GoToPage bounds checks.
func (p *Pager) Slice(listings []models.Listing) Page {
	page := Paginate(listings, p.current, p.pageSize)
	p.totalPages = page.TotalPages
	p.current = page.CurrentPage
	return page
}
