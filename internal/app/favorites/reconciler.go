// Package favorites keeps a local mirror of the user's server-side
// favorite records and converges it back to server truth after
// conflicts caused by other tabs or stale state.
package favorites

import (
	"context"
	"errors"
	"sort"
	"sync"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

// ErrTogglePending rejects a toggle for a listing that already has a
// mutation in flight. Callers treat it as a no-op.
var ErrTogglePending = errors.New("toggle already in flight for this listing")

// API is the slice of the REST client the reconciler needs.
type API interface {
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, bookID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, favoriteID int64) error
}

// Reconciler mirrors the server's favorite set, keyed by listing id for
// O(1) membership checks. At most one mutation per listing id is in
// flight at any time; unrelated listings toggle concurrently. At
// quiescence the mirror matches the server's set exactly, repaired by
// full resynchronization rather than any local merge.
type Reconciler struct {
	api API

	mu        sync.Mutex
	favorites map[int64]models.Favorite
	pending   map[int64]struct{}
}

// New constructs an empty Reconciler. Call Resync to populate the
// mirror before the first membership check.
func New(api API) *Reconciler {
	return &Reconciler{
		api:       api,
		favorites: make(map[int64]models.Favorite),
		pending:   make(map[int64]struct{}),
	}
}

// Resync replaces the mirror with the server's current favorite set.
func (r *Reconciler) Resync(ctx context.Context) error {
	list, err := r.api.ListFavorites(ctx)
	if err != nil {
		return err
	}

	fresh := make(map[int64]models.Favorite, len(list))
	for _, fav := range list {
		fresh[fav.Book.ID] = fav
	}

	r.mu.Lock()
	r.favorites = fresh
	r.mu.Unlock()
	return nil
}

// Toggle flips the favorite state of a listing. It returns the
// membership after the call settles. A duplicate-create conflict or a
// removal of an already-gone record is treated as success-equivalent:
// the local attempt is discarded and the mirror resynchronized from the
// server. Any other failure leaves the mirror unchanged and surfaces
// the error.
func (r *Reconciler) Toggle(ctx context.Context, listingID int64) (favorited bool, err error) {
	r.mu.Lock()
	if _, inFlight := r.pending[listingID]; inFlight {
		r.mu.Unlock()
		return false, ErrTogglePending
	}
	r.pending[listingID] = struct{}{}
	existing, isFavorite := r.favorites[listingID]
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.pending, listingID)
		r.mu.Unlock()
	}()

	if isFavorite {
		return r.unmark(ctx, listingID, existing.ID)
	}
	return r.mark(ctx, listingID)
}

func (r *Reconciler) mark(ctx context.Context, listingID int64) (bool, error) {
	fav, err := r.api.AddFavorite(ctx, listingID)
	switch {
	case err == nil:
		r.mu.Lock()
		r.favorites[listingID] = *fav
		r.mu.Unlock()
		return true, nil
	case errors.Is(err, restapi.ErrFavoriteExists):
		// Another tab or a previously failed unmark left the server
		// ahead of the mirror. Resync instead of guessing.
		if err := r.Resync(ctx); err != nil {
			return true, err
		}
		return true, nil
	default:
		return false, err
	}
}

func (r *Reconciler) unmark(ctx context.Context, listingID, favoriteID int64) (bool, error) {
	err := r.api.RemoveFavorite(ctx, favoriteID)
	switch {
	case err == nil:
		r.mu.Lock()
		delete(r.favorites, listingID)
		r.mu.Unlock()
		return false, nil
	case errors.Is(err, restapi.ErrFavoriteNotFound):
		// Record already gone server-side; the mirror is stale.
		if err := r.Resync(ctx); err != nil {
			return false, err
		}
		return r.IsFavorite(listingID), nil
	default:
		return true, err
	}
}

// IsFavorite reports mirror membership for a listing.
func (r *Reconciler) IsFavorite(listingID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[listingID]
	return ok
}

// Favorites returns the mirrored records ordered by record id.
func (r *Reconciler) Favorites() []models.Favorite {
	r.mu.Lock()
	out := make([]models.Favorite, 0, len(r.favorites))
	for _, fav := range r.favorites {
		out = append(out, fav)
	}
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the mirror size.
func (r *Reconciler) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.favorites)
}
