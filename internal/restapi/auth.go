package restapi

import (
	"context"
	"net/http"

	"edureuse/internal/models"
)

// ErrNotAuthenticated is returned when the backend reports no valid
// session for the request cookies.
var ErrNotAuthenticated = &APIError{StatusCode: http.StatusUnauthorized, Detail: "Not authenticated"}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupRequest carries the fields accepted by the signup endpoint.
// Username and password are required by the server; email and phone are
// optional.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Login establishes a session. The session cookie lands in the client's
// jar, so subsequent calls on this client are authenticated.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := c.doRequest(ctx, http.MethodPost, "auth/login/", nil, credentials{Username: username, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, http.MethodPost, "auth/signup/", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodPost, "auth/logout/", nil, nil, nil)
}

// CurrentUser resolves the session identity. A 401 maps to
// ErrNotAuthenticated.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := c.doRequest(ctx, http.MethodGet, "auth/user/", nil, nil, &user)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	return &user, nil
}
