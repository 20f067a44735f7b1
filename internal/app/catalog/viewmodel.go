// Package catalog holds the search/filter/page state behind the listing
// grid and derives pagination affordances from the server's response
// shape.
package catalog

import (
	"context"
	"errors"
	"sync"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

// PageSize is the fixed number of listings per page.
const PageSize = 6

// ErrInvalidPage rejects non-positive page numbers before any fetch.
var ErrInvalidPage = errors.New("page must be a positive integer")

// API is the slice of the REST client the view-model needs.
type API interface {
	ListBooks(ctx context.Context, q restapi.BookQuery) (models.Page[models.Listing], error)
}

// Pagination is the affordance state derived from the latest applied
// response. TotalPages is only meaningful when TotalKnown is set; the
// server omits the count on some list shapes.
type Pagination struct {
	Page       int
	HasNext    bool
	HasPrev    bool
	TotalPages int
	TotalKnown bool
}

// ViewModel fetches one page of listings per parameter combination.
// Every state change issues exactly one fetch tagged with a generation
// number; a response is applied only while its tag is still the latest
// issued, so a slow response for stale parameters can never overwrite a
// fresher one.
type ViewModel struct {
	api API

	mu         sync.Mutex
	search     string
	category   string
	page       int
	generation uint64
	listings   []models.Listing
	pagination Pagination
}

// New constructs a ViewModel positioned on page 1 with no filters. No
// fetch happens until the first Refresh or parameter change.
func New(api API) *ViewModel {
	return &ViewModel{api: api, page: 1, pagination: Pagination{Page: 1}}
}

// SetSearch updates the search term, resets to page 1 and refetches.
func (vm *ViewModel) SetSearch(ctx context.Context, term string) error {
	vm.mu.Lock()
	vm.search = term
	vm.page = 1
	vm.mu.Unlock()
	return vm.Refresh(ctx)
}

// SetCategory updates the category filter, resets to page 1 and
// refetches. An empty category means all categories.
func (vm *ViewModel) SetCategory(ctx context.Context, category string) error {
	vm.mu.Lock()
	vm.category = category
	vm.page = 1
	vm.mu.Unlock()
	return vm.Refresh(ctx)
}

// SetPage moves to the given page and refetches.
func (vm *ViewModel) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	vm.mu.Lock()
	vm.page = page
	vm.mu.Unlock()
	return vm.Refresh(ctx)
}

// Refresh fetches the page for the current parameters. On error the
// prior listings stay visible and the error is returned for the caller
// to log. A response that lost the generation race is dropped silently.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	vm.mu.Lock()
	vm.generation++
	generation := vm.generation
	query := restapi.BookQuery{
		Search:   vm.search,
		Category: vm.category,
		Page:     vm.page,
	}
	vm.mu.Unlock()

	page, err := vm.api.ListBooks(ctx, query)

	vm.mu.Lock()
	defer vm.mu.Unlock()

	if generation != vm.generation {
		// A newer fetch was issued while this one was in flight.
		return nil
	}
	if err != nil {
		return err
	}

	vm.listings = page.Results
	vm.pagination = derivePagination(query.Page, page)
	return nil
}

func derivePagination(requested int, page models.Page[models.Listing]) Pagination {
	if requested < 1 {
		requested = 1
	}
	p := Pagination{Page: requested}

	if page.Count != nil {
		total := (*page.Count + PageSize - 1) / PageSize
		if total < 1 {
			total = 1
		}
		p.TotalPages = total
		p.TotalKnown = true
		p.HasNext = page.Next != ""
		p.HasPrev = page.Previous != ""
		return p
	}

	p.HasNext = len(page.Results) == PageSize
	p.HasPrev = requested > 1
	return p
}

// Listings returns a copy of the currently applied page of listings.
func (vm *ViewModel) Listings() []models.Listing {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]models.Listing, len(vm.listings))
	copy(out, vm.listings)
	return out
}

// Pagination returns the affordances derived from the latest applied
// response.
func (vm *ViewModel) Pagination() Pagination {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pagination
}

// Search returns the current search term.
func (vm *ViewModel) Search() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.search
}

// Category returns the current category filter.
func (vm *ViewModel) Category() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.category
}

// Page returns the current page number.
func (vm *ViewModel) Page() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.page
}
