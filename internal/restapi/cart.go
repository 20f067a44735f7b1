package restapi

import (
	"context"
	"fmt"
	"net/http"

	"edureuse/internal/models"
)

type cartRequest struct {
	Book     int64 `json:"book"`
	Quantity int   `json:"quantity"`
}

// ListCart fetches the current user's cart. The cart endpoint is
// unpaginated, but envelope tolerance costs nothing.
func (c *Client) ListCart(ctx context.Context) ([]models.CartItem, error) {
	raw, err := c.getRaw(ctx, "cart/", nil)
	if err != nil {
		return nil, err
	}

	page, err := models.DecodeList[models.CartItem](raw)
	if err != nil {
		c.log.Warn().Err(err).Msg("malformed cart response, treating as empty")
		return []models.CartItem{}, nil
	}
	return page.Results, nil
}

// AddCartItem posts a book to the cart. The server merges quantities for
// duplicate books, so the returned item may reflect a larger quantity
// than requested; callers should refetch the cart rather than count
// locally.
func (c *Client) AddCartItem(ctx context.Context, bookID int64, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	err := c.doRequest(ctx, http.MethodPost, "cart/", nil, cartRequest{Book: bookID, Quantity: quantity}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart row by its id.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("cart/%d/", itemID), nil, nil, nil)
}

// PlaceOrder posts a one-shot buy-now order. Not idempotent; the client
// never retries on failure.
func (c *Client) PlaceOrder(ctx context.Context, bookID int64, quantity int) (*models.Order, error) {
	var order models.Order
	err := c.doRequest(ctx, http.MethodPost, "order/", nil, cartRequest{Book: bookID, Quantity: quantity}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
