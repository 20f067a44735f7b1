package restapi

import (
	"context"
	"net/http"
	"net/url"

	"edureuse/internal/models"
)

// Mailbox selects which side of the message history to list.
type Mailbox string

const (
	MailboxInbox Mailbox = "inbox"
	MailboxSent  Mailbox = "sent"
)

// ListMessages fetches the messages for the given mailbox. The server
// defaults to the inbox when no filter is passed.
func (c *Client) ListMessages(ctx context.Context, box Mailbox) ([]models.Message, error) {
	query := url.Values{}
	switch box {
	case MailboxInbox:
		query.Set("inbox", "true")
	case MailboxSent:
		query.Set("sent", "true")
	}

	raw, err := c.getRaw(ctx, "messages/", query)
	if err != nil {
		return nil, err
	}

	page, err := models.DecodeList[models.Message](raw)
	if err != nil {
		c.log.Warn().Err(err).Msg("malformed messages response, treating as empty")
		return []models.Message{}, nil
	}
	return page.Results, nil
}

// SendMessage posts a free-text message about a listing. The server
// resolves the recipient from the listing's owner.
func (c *Client) SendMessage(ctx context.Context, bookID int64, text string) (*models.Message, error) {
	body := struct {
		Book    int64  `json:"book"`
		Message string `json:"message"`
	}{Book: bookID, Message: text}

	var message models.Message
	if err := c.doRequest(ctx, http.MethodPost, "messages/", nil, body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}
