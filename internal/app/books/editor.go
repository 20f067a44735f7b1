// Package books validates and submits listing create, replace and
// delete calls. Validation runs entirely client-side before any network
// call; the first violated rule wins and blocks submission.
package books

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"edureuse/internal/models"
)

var (
	// ErrNameAuthorRequired blocks submission when title or author is
	// empty after trimming. Checked before the price rule.
	ErrNameAuthorRequired = errors.New("name and author are required")
	// ErrInvalidPrice blocks submission when the price does not parse to
	// a number strictly greater than zero.
	ErrInvalidPrice = errors.New("price must be a number greater than 0")
)

// API is the slice of the REST client the editor needs.
type API interface {
	CreateBook(ctx context.Context, draft models.ListingDraft) (*models.Listing, error)
	UpdateBook(ctx context.Context, id int64, draft models.ListingDraft) (*models.Listing, error)
	DeleteBook(ctx context.Context, id int64) error
}

// Editor submits listing mutations for the current session.
type Editor struct {
	api API
}

// New constructs an Editor on top of the REST client.
func New(api API) *Editor {
	return &Editor{api: api}
}

// Validate applies the pre-submit rules to a draft: name and author
// must be non-empty after trimming, then price must parse to a number
// greater than zero. The first violation is returned alone.
func Validate(draft models.ListingDraft) error {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Author) == "" {
		return ErrNameAuthorRequired
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil || price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Create validates the draft and inserts a new listing. The returned
// listing carries the server-assigned id the caller navigates to.
func (e *Editor) Create(ctx context.Context, draft models.ListingDraft) (*models.Listing, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}
	return e.api.CreateBook(ctx, normalize(draft))
}

// Update validates the draft and fully replaces the listing.
func (e *Editor) Update(ctx context.Context, id int64, draft models.ListingDraft) (*models.Listing, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}
	return e.api.UpdateBook(ctx, id, normalize(draft))
}

// Delete removes a listing owned by the current session.
func (e *Editor) Delete(ctx context.Context, id int64) error {
	return e.api.DeleteBook(ctx, id)
}

// normalize trims the text fields and defaults the condition, matching
// the create form's defaults. Unknown condition values pass through;
// the server owns the enum.
func normalize(draft models.ListingDraft) models.ListingDraft {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Author = strings.TrimSpace(draft.Author)
	draft.Price = strings.TrimSpace(draft.Price)
	if draft.Condition == "" {
		draft.Condition = models.ConditionGood
	}
	return draft
}
