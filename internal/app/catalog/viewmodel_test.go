package catalog

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

type stubAPI struct {
	mu      sync.Mutex
	queries []restapi.BookQuery

	page models.Page[models.Listing]
	err  error

	// When set, a fetch blocks until released. Used for racing stale
	// responses against fresh ones.
	block   chan struct{}
	replies chan models.Page[models.Listing]
}

func (s *stubAPI) ListBooks(ctx context.Context, q restapi.BookQuery) (models.Page[models.Listing], error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()

	if s.block != nil {
		<-s.block
		return <-s.replies, nil
	}
	return s.page, s.err
}

func (s *stubAPI) lastQuery() restapi.BookQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

func listings(n int) []models.Listing {
	out := make([]models.Listing, n)
	for i := range out {
		out[i] = models.Listing{ID: int64(i + 1), Name: "Book", Author: "Author"}
	}
	return out
}

func TestPaginationInferredWithoutCount(t *testing.T) {
	tests := []struct {
		name     string
		results  int
		page     int
		wantNext bool
		wantPrev bool
	}{
		{name: "full page has next", results: PageSize, page: 1, wantNext: true, wantPrev: false},
		{name: "short page has no next", results: 4, page: 1, wantNext: false, wantPrev: false},
		{name: "later page has prev", results: 2, page: 3, wantNext: false, wantPrev: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAPI{page: models.Page[models.Listing]{Results: listings(tc.results)}}
			vm := New(api)

			if err := vm.SetPage(context.Background(), tc.page); err != nil {
				t.Fatalf("SetPage: %v", err)
			}

			p := vm.Pagination()
			if p.HasNext != tc.wantNext || p.HasPrev != tc.wantPrev {
				t.Fatalf("pagination = %+v", p)
			}
			if p.TotalKnown {
				t.Fatalf("totalPages must stay unknown without a count")
			}
		})
	}
}

func TestPaginationFromExplicitCount(t *testing.T) {
	count := 13
	api := &stubAPI{page: models.Page[models.Listing]{
		Count:   &count,
		Next:    "http://x/api/books/?page=2",
		Results: listings(PageSize),
	}}
	vm := New(api)

	if err := vm.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	p := vm.Pagination()
	if !p.TotalKnown || p.TotalPages != 3 {
		t.Fatalf("totalPages = %+v, want 3 (ceil(13/6))", p)
	}
	if !p.HasNext || p.HasPrev {
		t.Fatalf("markers = %+v", p)
	}
}

func TestSearchAndCategoryResetPage(t *testing.T) {
	api := &stubAPI{page: models.Page[models.Listing]{Results: listings(PageSize)}}
	vm := New(api)
	ctx := context.Background()

	if err := vm.SetPage(ctx, 4); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if err := vm.SetSearch(ctx, "algorithms"); err != nil {
		t.Fatalf("SetSearch: %v", err)
	}
	if q := api.lastQuery(); q.Page != 1 || q.Search != "algorithms" {
		t.Fatalf("query after search = %+v", q)
	}

	if err := vm.SetPage(ctx, 2); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if err := vm.SetCategory(ctx, "CS"); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	if q := api.lastQuery(); q.Page != 1 || q.Category != "CS" {
		t.Fatalf("query after category = %+v", q)
	}
}

func TestInvalidPageRejected(t *testing.T) {
	api := &stubAPI{}
	vm := New(api)

	if err := vm.SetPage(context.Background(), 0); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if len(api.queries) != 0 {
		t.Fatalf("no fetch should happen for an invalid page")
	}
}

func TestFetchErrorKeepsPriorListings(t *testing.T) {
	api := &stubAPI{page: models.Page[models.Listing]{Results: listings(3)}}
	vm := New(api)
	ctx := context.Background()

	if err := vm.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	api.err = errors.New("boom")
	if err := vm.Refresh(ctx); err == nil {
		t.Fatalf("expected error from failed refresh")
	}
	if got := len(vm.Listings()); got != 3 {
		t.Fatalf("stale listings must stay visible, got %d", got)
	}
}

func TestStaleResponseDropped(t *testing.T) {
	api := &stubAPI{
		block:   make(chan struct{}),
		replies: make(chan models.Page[models.Listing], 2),
	}
	vm := New(api)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		// Fetch for page 1, delayed so page 2's response lands first.
		done <- vm.Refresh(ctx)
	}()

	go func() {
		done <- vm.SetPage(ctx, 2)
	}()

	// Wait until both fetches are issued, then answer them. Whichever
	// reader wakes first takes the first reply, but only the generation
	// of the page-2 fetch is still current.
	for {
		api.mu.Lock()
		issued := len(api.queries)
		api.mu.Unlock()
		if issued == 2 {
			break
		}
		runtime.Gosched()
	}

	api.replies <- models.Page[models.Listing]{Results: listings(2)}
	api.replies <- models.Page[models.Listing]{Results: listings(2)}
	close(api.block)

	<-done
	<-done

	if got := vm.Page(); got != 2 {
		t.Fatalf("page = %d, want 2", got)
	}
	// The page-1 response must not have overwritten pagination derived
	// for page 2.
	if p := vm.Pagination(); p.Page != 2 || !p.HasPrev {
		t.Fatalf("stale response applied: %+v", p)
	}
}
