// Package session resolves the authenticated identity behind the
// client's cookies and gates owner-only and staff-only views.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

var (
	// ErrNotAuthenticated indicates the backend holds no session for the
	// client's cookies.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrCredentialsRequired indicates a blank username or password
	// before any network call is made.
	ErrCredentialsRequired = errors.New("username and password are required")
)

// API is the slice of the REST client the resolver needs.
type API interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, req restapi.SignupRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Resolver caches the session identity for the lifetime of one client.
// The server is the sole writer of the identity; the cache only avoids
// refetching it for every independent page fetch.
type Resolver struct {
	api API

	mu   sync.Mutex
	user *models.User
}

// New constructs a Resolver on top of the REST client.
func New(api API) *Resolver {
	return &Resolver{api: api}
}

// Current returns the authenticated user, resolving it from the backend
// on first use. A 401 maps to ErrNotAuthenticated and is not cached, so
// a later login is picked up.
func (r *Resolver) Current(ctx context.Context) (*models.User, error) {
	r.mu.Lock()
	if r.user != nil {
		user := *r.user
		r.mu.Unlock()
		return &user, nil
	}
	r.mu.Unlock()

	user, err := r.api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, restapi.ErrNotAuthenticated) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	r.mu.Lock()
	r.user = user
	r.mu.Unlock()

	cached := *user
	return &cached, nil
}

// Login establishes a session and caches the returned identity.
func (r *Resolver) Login(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := r.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.user = user
	r.mu.Unlock()
	return user, nil
}

// Signup registers an account and caches the returned identity. The
// backend logs the new user in via the same session cookies.
func (r *Resolver) Signup(ctx context.Context, req restapi.SignupRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	user, err := r.api.Signup(ctx, req)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.user = user
	r.mu.Unlock()
	return user, nil
}

// Logout ends the session and drops the cached identity. The cache is
// dropped even when the call fails, since the session state on the
// server is then unknown.
func (r *Resolver) Logout(ctx context.Context) error {
	err := r.api.Logout(ctx)
	r.Invalidate()
	return err
}

// Invalidate drops the cached identity so the next Current call hits
// the backend again.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.user = nil
	r.mu.Unlock()
}

// IsStaff reports whether the current identity may see admin views.
func (r *Resolver) IsStaff(ctx context.Context) (bool, error) {
	user, err := r.Current(ctx)
	if err != nil {
		return false, err
	}
	return user.IsStaff, nil
}
