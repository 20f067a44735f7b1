package restapi

import (
	"context"

	"edureuse/internal/models"
)

// Users fetches the user directory. The endpoint is staff-only; the
// server answers 403 for everyone else.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	raw, err := c.getRaw(ctx, "users/", nil)
	if err != nil {
		return nil, err
	}

	page, err := models.DecodeList[models.User](raw)
	if err != nil {
		c.log.Warn().Err(err).Msg("malformed users response, treating as empty")
		return []models.User{}, nil
	}
	return page.Results, nil
}
