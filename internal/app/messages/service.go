// Package messages lists and sends the free-text messages tied to a
// listing.
package messages

import (
	"context"
	"errors"
	"strings"

	"edureuse/internal/models"
	"edureuse/internal/restapi"
)

var (
	// ErrBookRequired blocks sending without a listing to attach to.
	ErrBookRequired = errors.New("a book is required")
	// ErrEmptyMessage blocks sending blank message bodies.
	ErrEmptyMessage = errors.New("message text is required")
)

// API is the slice of the REST client the service needs.
type API interface {
	ListMessages(ctx context.Context, box restapi.Mailbox) ([]models.Message, error)
	SendMessage(ctx context.Context, bookID int64, text string) (*models.Message, error)
}

// Service describes messaging operations for the current session.
type Service struct {
	api API
}

// New constructs a messaging Service.
func New(api API) *Service {
	return &Service{api: api}
}

// Inbox lists messages received by the current user, newest first as
// the server orders them.
func (s *Service) Inbox(ctx context.Context) ([]models.Message, error) {
	return s.api.ListMessages(ctx, restapi.MailboxInbox)
}

// Sent lists messages the current user has sent.
func (s *Service) Sent(ctx context.Context) ([]models.Message, error) {
	return s.api.ListMessages(ctx, restapi.MailboxSent)
}

// Send posts a message about a listing. The recipient is resolved
// server-side from the listing owner.
func (s *Service) Send(ctx context.Context, bookID int64, text string) (*models.Message, error) {
	if bookID <= 0 {
		return nil, ErrBookRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	return s.api.SendMessage(ctx, bookID, text)
}
