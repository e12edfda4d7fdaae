package catalog

import (
	"strconv"
	"testing"

	"lionlease/internal/models"
)

func nListings(n int) []models.Listing {
	listings := make([]models.Listing, n)
	for i := range listings {
		listings[i].ID = strconv.Itoa(i + 1)
	}
	return listings
}

func TestPaginateFiveItemsPageSizeTwo(t *testing.T) {
	listings := nListings(5)

	first := Paginate(listings, 1, 2)
	if !sameIDs(ids(first.Listings), []string{"1", "2"}) {
		t.Fatalf("expected page 1 = [1 2], got %v", ids(first.Listings))
	}
	if first.TotalPages != 3 || first.TotalItems != 5 {
		t.Fatalf("expected 3 pages of 5 items, got %d pages of %d", first.TotalPages, first.TotalItems)
	}
	if first.StartIndex != 1 || first.EndIndex != 2 {
		t.Fatalf("expected display bounds 1-2, got %d-%d", first.StartIndex, first.EndIndex)
	}
	if !first.HasNextPage || first.HasPrevPage {
		t.Fatalf("unexpected page transitions on page 1: next=%v prev=%v", first.HasNextPage, first.HasPrevPage)
	}

	last := Paginate(listings, 3, 2)
	if !sameIDs(ids(last.Listings), []string{"5"}) {
		t.Fatalf("expected page 3 = [5], got %v", ids(last.Listings))
	}
	if last.HasNextPage {
		t.Fatalf("expected no next page after the last page")
	}
	if last.StartIndex != 5 || last.EndIndex != 5 {
		t.Fatalf("expected display bounds 5-5, got %d-%d", last.StartIndex, last.EndIndex)
	}
}

func TestPaginateConcatenationCoversEveryItemOnce(t *testing.T) {
	listings := nListings(7)
	seen := make(map[string]int)
	meta := Paginate(listings, 1, 3)
	for page := 1; page <= meta.TotalPages; page++ {
		for _, l := range Paginate(listings, page, 3).Listings {
			seen[l.ID]++
		}
	}
	if len(seen) != len(listings) {
		t.Fatalf("expected %d distinct items across pages, got %d", len(listings), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("expected item %s exactly once, got %d", id, count)
		}
	}
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(nil, 1, 2)
	if page.TotalPages != 0 || page.TotalItems != 0 || len(page.Listings) != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
	if page.CurrentPage != 1 {
		t.Fatalf("expected current page 1 for the empty collection, got %d", page.CurrentPage)
	}
}

func TestPagerGoToPageOutOfRangeIsNoOp(t *testing.T) {
	p := NewPager(2)
	listings := nListings(5)
	p.Slice(listings)

	p.GoToPage(2)
	if p.Current() != 2 {
		t.Fatalf("expected page 2, got %d", p.Current())
	}

	p.GoToPage(0)
	if p.Current() != 2 {
		t.Fatalf("expected goToPage(0) to be a no-op, got %d", p.Current())
	}
	p.GoToPage(4)
	if p.Current() != 2 {
		t.Fatalf("expected goToPage(totalPages+1) to be a no-op, got %d", p.Current())
	}
}

func TestPagerResetBeforeSmallerResultSet(t *testing.T) {
	p := NewPager(2)
	p.Slice(nListings(10))
	p.GoToPage(5)
	if p.Current() != 5 {
		t.Fatalf("expected page 5, got %d", p.Current())
	}

	// Filter change shrinks the result set; reset must run before slicing.
	p.Reset()
	page := p.Slice(nListings(3))
	if page.CurrentPage != 1 {
		t.Fatalf("expected page 1 after reset, got %d", page.CurrentPage)
	}
	if !sameIDs(ids(page.Listings), []string{"1", "2"}) {
		t.Fatalf("expected page 1 content, got %v", ids(page.Listings))
	}
}
