// Package restapi is the session-scoped client for the EduReuse
// marketplace API. It owns the cookie jar and CSRF token acquisition so
// that view-models never touch cookies themselves; every method takes a
// context and returns the server's detail message through *APIError on
// non-2xx responses.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second

	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

// APIError is a non-2xx response with the server's detail message when
// the body carried one, else a status-derived fallback.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Detail)
}

// Config holds client construction settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Client talks to the marketplace API on behalf of one session. All
// requests share a cookie jar, so a Login call authenticates every
// later call made through the same client.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     zerolog.Logger

	csrfMu     sync.Mutex
	csrfPrimed bool
}

// New creates a Client for the given base URL.
func New(cfg Config) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = defaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: cfg.Logger,
	}, nil
}

// EnsureCSRF primes the csrftoken cookie with a GET to the bootstrap
// endpoint. It is called lazily before the first mutating request, but
// callers may invoke it up front after construction.
func (c *Client) EnsureCSRF(ctx context.Context) error {
	c.csrfMu.Lock()
	defer c.csrfMu.Unlock()

	if c.csrfPrimed && c.cookieValue(csrfCookieName) != "" {
		return nil
	}

	if err := c.doRequest(ctx, http.MethodGet, "auth/csrf/", nil, nil, nil); err != nil {
		return fmt.Errorf("prime csrf cookie: %w", err)
	}
	c.csrfPrimed = true
	return nil
}

func (c *Client) csrfToken(ctx context.Context) (string, error) {
	if token := c.cookieValue(csrfCookieName); token != "" {
		return token, nil
	}
	if err := c.EnsureCSRF(ctx); err != nil {
		return "", err
	}
	return c.cookieValue(csrfCookieName), nil
}

func (c *Client) cookieValue(name string) string {
	for _, cookie := range c.http.Jar.Cookies(c.baseURL) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// doRequest performs one JSON request against the API. path is relative
// to the /api/ base ("books/", "favorites/42/"). body is marshalled as
// JSON when non-nil; out, when non-nil, receives the decoded 2xx body.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + "/api/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	if mutating(method) {
		token, err := c.csrfToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set(csrfHeaderName, token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("api request failed")
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Str("request_id", requestID).
		Msg("api request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return apiError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// getRaw fetches a list endpoint and hands back the raw body so callers
// can run shape-tolerant decoding.
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func apiError(resp *http.Response, data []byte) error {
	detail := struct {
		Detail string `json:"detail"`
	}{}
	if err := json.Unmarshal(data, &detail); err != nil || detail.Detail == "" {
		detail.Detail = resp.Status
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
}

func asAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorDetail extracts the user-facing message for err: the server's
// detail for API errors, a generic message for transport failures, and
// the error text itself for local errors such as validation.
func ErrorDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "request failed"
	}
	return err.Error()
}
