package cart

import (
	"context"
	"sync"
	"testing"

	"edureuse/internal/models"
)

type stubAPI struct {
	mu    sync.Mutex
	items []models.CartItem

	order     *models.Order
	orderErr  error
	listCalls int
}

func (s *stubAPI) ListCart(ctx context.Context) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubAPI) AddCartItem(ctx context.Context, bookID int64, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Merge quantities for duplicates, as the server does.
	for i, item := range s.items {
		if item.Book.ID == bookID {
			s.items[i].Quantity += quantity
			merged := s.items[i]
			return &merged, nil
		}
	}
	item := models.CartItem{
		ID:       int64(len(s.items) + 1),
		Book:     models.Listing{ID: bookID, Price: models.PriceFrom(10)},
		Quantity: quantity,
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubAPI) RemoveCartItem(ctx context.Context, itemID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

func (s *stubAPI) PlaceOrder(ctx context.Context, bookID int64, quantity int) (*models.Order, error) {
	if s.orderErr != nil {
		return nil, s.orderErr
	}
	return s.order, nil
}

func TestTotal(t *testing.T) {
	api := &stubAPI{items: []models.CartItem{
		{ID: 1, Book: models.Listing{ID: 1, Price: models.PriceFrom(100)}, Quantity: 2},
		{ID: 2, Book: models.Listing{ID: 2, Price: models.PriceFrom(50)}, Quantity: 1},
		{ID: 3, Book: models.Listing{ID: 3}, Quantity: 4}, // no price
	}}
	vm := New(api)

	if err := vm.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := vm.Total(); got != 250 {
		t.Fatalf("total = %v, want 250", got)
	}
}

func TestAddRefetchesFullCart(t *testing.T) {
	api := &stubAPI{}
	vm := New(api)
	ctx := context.Background()

	if err := vm.Add(ctx, 5, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := vm.Add(ctx, 5, 1); err != nil {
		t.Fatalf("Add again: %v", err)
	}

	// The server merged the duplicate; the mirror must reflect one row
	// with quantity 2, learned by refetching, not by counting locally.
	if api.listCalls != 2 {
		t.Fatalf("each add must refetch the cart, got %d fetches", api.listCalls)
	}
	items := vm.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("mirror = %+v", items)
	}
	if vm.Count() != 1 {
		t.Fatalf("count = %d, want 1", vm.Count())
	}
}

func TestRemoveDropsRow(t *testing.T) {
	api := &stubAPI{items: []models.CartItem{
		{ID: 1, Book: models.Listing{ID: 1, Price: models.PriceFrom(10)}, Quantity: 1},
		{ID: 2, Book: models.Listing{ID: 2, Price: models.PriceFrom(20)}, Quantity: 1},
	}}
	vm := New(api)
	ctx := context.Background()

	if err := vm.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := vm.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	items := vm.Items()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("mirror after remove = %+v", items)
	}
}

func TestBuyNowRecipients(t *testing.T) {
	tests := []struct {
		name  string
		order *models.Order
		want  []string
	}{
		{
			name:  "recipients from server",
			order: &models.Order{Recipients: []string{"alice@example.com", "bob@example.com"}},
			want:  []string{"alice@example.com", "bob@example.com"},
		},
		{
			name:  "empty list falls back",
			order: &models.Order{},
			want:  []string{FallbackRecipient},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAPI{order: tc.order}
			vm := New(api)

			got, err := vm.BuyNow(context.Background(), 1, 1)
			if err != nil {
				t.Fatalf("BuyNow: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("recipients = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("recipients = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestRecipientsLabel(t *testing.T) {
	if got := RecipientsLabel([]string{"a", "b"}); got != "a, b" {
		t.Fatalf("label = %q", got)
	}
	if got := RecipientsLabel(nil); got != FallbackRecipient {
		t.Fatalf("label = %q, want fallback", got)
	}
}
