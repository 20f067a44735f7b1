package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"edureuse/internal/models"
)

var (
	// ErrFavoriteExists signals the server already holds a favorite for
	// this book, typically because another tab or session added it.
	ErrFavoriteExists = errors.New("already in favorites")
	// ErrFavoriteNotFound signals the favorite record is gone on the
	// server side.
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// ListFavorites fetches the current user's favorites. A body of an
// unexpected shape decodes to an empty set rather than an error;
// degenerate single-object responses are tolerated.
func (c *Client) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	raw, err := c.getRaw(ctx, "favorites/", nil)
	if err != nil {
		return nil, err
	}

	page, err := models.DecodeList[models.Favorite](raw)
	if err != nil {
		c.log.Warn().Err(err).Msg("malformed favorites response, treating as empty")
		return []models.Favorite{}, nil
	}

	favorites := make([]models.Favorite, 0, len(page.Results))
	for _, fav := range page.Results {
		if fav.Book.ID == 0 {
			continue
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// AddFavorite creates a favorite record for the given book. A duplicate
// rejection maps to ErrFavoriteExists so callers can resynchronize
// instead of surfacing it.
func (c *Client) AddFavorite(ctx context.Context, bookID int64) (*models.Favorite, error) {
	body := struct {
		Book int64 `json:"book"`
	}{Book: bookID}

	var favorite models.Favorite
	err := c.doRequest(ctx, http.MethodPost, "favorites/", nil, body, &favorite)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && isAlreadyFavorite(apiErr) {
			return nil, ErrFavoriteExists
		}
		return nil, err
	}
	return &favorite, nil
}

// RemoveFavorite deletes a favorite record by its own id (not the book
// id). A 404 maps to ErrFavoriteNotFound.
func (c *Client) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("favorites/%d/", favoriteID), nil, nil, nil)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

func isAlreadyFavorite(apiErr *APIError) bool {
	if apiErr.StatusCode != http.StatusBadRequest {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Detail), "already in favorites")
}
