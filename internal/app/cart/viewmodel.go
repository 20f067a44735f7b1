// Package cart mirrors the server-side cart and submits cart-add and
// buy-now requests. The mirror is refetched after every add because the
// server may merge quantities for duplicate books.
package cart

import (
	"context"
	"strings"
	"sync"

	"edureuse/internal/models"
)

// FallbackRecipient labels an order whose response named no seller
// contacts.
const FallbackRecipient = "seller"

// API is the slice of the REST client the cart needs.
type API interface {
	ListCart(ctx context.Context) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, bookID int64, quantity int) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, itemID int64) error
	PlaceOrder(ctx context.Context, bookID int64, quantity int) (*models.Order, error)
}

// ViewModel holds the in-memory cart mirror for one view.
type ViewModel struct {
	api API

	mu    sync.Mutex
	items []models.CartItem
}

// New constructs an empty cart view-model.
func New(api API) *ViewModel {
	return &ViewModel{api: api}
}

// Refresh replaces the mirror with the server's cart.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	items, err := vm.api.ListCart(ctx)
	if err != nil {
		return err
	}
	vm.mu.Lock()
	vm.items = items
	vm.mu.Unlock()
	return nil
}

// Add posts a book to the cart, then refetches the whole cart. No
// incremental counter is trusted: the server may reject duplicates or
// merge quantities.
func (vm *ViewModel) Add(ctx context.Context, bookID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := vm.api.AddCartItem(ctx, bookID, quantity); err != nil {
		return err
	}
	return vm.Refresh(ctx)
}

// Remove deletes a cart row and drops it from the mirror on success.
func (vm *ViewModel) Remove(ctx context.Context, itemID int64) error {
	if err := vm.api.RemoveCartItem(ctx, itemID); err != nil {
		return err
	}

	vm.mu.Lock()
	kept := vm.items[:0]
	for _, item := range vm.items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	vm.items = kept
	vm.mu.Unlock()
	return nil
}

// BuyNow posts a one-shot order and returns the notified recipients.
// An empty or missing recipient list falls back to the generic seller
// label.
func (vm *ViewModel) BuyNow(ctx context.Context, bookID int64, quantity int) ([]string, error) {
	if quantity < 1 {
		quantity = 1
	}
	order, err := vm.api.PlaceOrder(ctx, bookID, quantity)
	if err != nil {
		return nil, err
	}
	if len(order.Recipients) == 0 {
		return []string{FallbackRecipient}, nil
	}
	return order.Recipients, nil
}

// RecipientsLabel renders a recipient list for display.
func RecipientsLabel(recipients []string) string {
	if len(recipients) == 0 {
		return FallbackRecipient
	}
	return strings.Join(recipients, ", ")
}

// Items returns a copy of the mirrored cart rows.
func (vm *ViewModel) Items() []models.CartItem {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]models.CartItem, len(vm.items))
	copy(out, vm.items)
	return out
}

// Count returns the number of cart rows.
func (vm *ViewModel) Count() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.items)
}

// Total sums price times quantity over the mirror. Items without a
// usable price contribute zero.
func (vm *ViewModel) Total() float64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	var total float64
	for _, item := range vm.items {
		if !item.Book.Price.Valid {
			continue
		}
		total += item.Book.Price.Amount * float64(item.Quantity)
	}
	return total
}
