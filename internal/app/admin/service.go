// Package admin exposes the staff-only user directory.
package admin

import (
	"context"
	"errors"

	"edureuse/internal/models"
)

// ErrNotStaff rejects directory access for non-staff identities before
// any network call is made.
var ErrNotStaff = errors.New("not authorized")

// API is the slice of the REST client the service needs.
type API interface {
	Users(ctx context.Context) ([]models.User, error)
}

// Sessions resolves the current identity for the staff gate.
type Sessions interface {
	Current(ctx context.Context) (*models.User, error)
}

// Service gates the user directory behind the session's staff flag. The
// server enforces the same check; the local gate just avoids a doomed
// request.
type Service struct {
	api      API
	sessions Sessions
}

// New constructs the admin Service.
func New(api API, sessions Sessions) *Service {
	return &Service{api: api, sessions: sessions}
}

// Users lists all accounts for staff identities.
func (s *Service) Users(ctx context.Context) ([]models.User, error) {
	user, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !user.IsStaff {
		return nil, ErrNotStaff
	}
	return s.api.Users(ctx)
}
