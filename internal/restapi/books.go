package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"edureuse/internal/models"
)

// BookQuery are the filter parameters of the listings endpoint. Zero
// values are omitted from the query string; page 0 means the server
// default (first page).
type BookQuery struct {
	Search   string
	Category string
	Page     int
}

// ListBooks fetches one page of listings. The server paginates with a
// {count, next, previous, results} envelope but a bare array is
// tolerated, in which case Count stays nil.
func (c *Client) ListBooks(ctx context.Context, q BookQuery) (models.Page[models.Listing], error) {
	query := url.Values{}
	if term := strings.TrimSpace(q.Search); term != "" {
		query.Set("search", term)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}

	raw, err := c.getRaw(ctx, "books/", query)
	if err != nil {
		return models.Page[models.Listing]{}, err
	}

	page, err := models.DecodeList[models.Listing](raw)
	if err != nil {
		return models.Page[models.Listing]{}, fmt.Errorf("decode listings: %w", err)
	}
	return page, nil
}

// GetBook fetches a single listing.
func (c *Client) GetBook(ctx context.Context, id int64) (*models.Listing, error) {
	var listing models.Listing
	if err := c.doRequest(ctx, http.MethodGet, bookPath(id), nil, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// CreateBook inserts a new listing owned by the current session.
func (c *Client) CreateBook(ctx context.Context, draft models.ListingDraft) (*models.Listing, error) {
	var listing models.Listing
	if err := c.doRequest(ctx, http.MethodPost, "books/", nil, draft, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateBook fully replaces a listing's editable fields.
func (c *Client) UpdateBook(ctx context.Context, id int64, draft models.ListingDraft) (*models.Listing, error) {
	var listing models.Listing
	if err := c.doRequest(ctx, http.MethodPut, bookPath(id), nil, draft, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// DeleteBook removes a listing.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.doRequest(ctx, http.MethodDelete, bookPath(id), nil, nil, nil)
}

func bookPath(id int64) string {
	return fmt.Sprintf("books/%d/", id)
}
