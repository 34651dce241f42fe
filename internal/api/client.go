// Package api is the REST client for the lifetrack backend. It shapes
// requests and maps failures onto the error taxonomy; all business rules
// live server-side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/logger"
)

// Client talks to the lifetrack REST backend.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the backend at base. token may be empty for
// the unauthenticated auth endpoints.
func New(base, token string, opts ...Option) *Client {
	c := &Client{
		base:  base,
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token, e.g. after login.
func (c *Client) SetToken(token string) { c.token = token }

// errorBody is the backend's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

// do issues one request and decodes the response into out (when non-nil).
// HTTP failures map onto the error taxonomy: 401 to AuthError, 400 to
// ValidationError, 404 to NotFoundError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("api request", "op", op, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("api transport failure", "op", op, "request_id", requestID, "error", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		logger.Debug("api error response", "op", op, "status", resp.StatusCode, "message", eb.Error)
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Message: eb.Error}
		case http.StatusBadRequest:
			return &ValidationError{Message: eb.Error}
		case http.StatusNotFound:
			return &NotFoundError{Resource: resourceFromPath(path), Message: eb.Error}
		default:
			return &StatusError{StatusCode: resp.StatusCode, Message: eb.Error}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", op, err)
	}
	return nil
}

// resourceFromPath derives a human label for NotFoundError from the
// request path.
func resourceFromPath(path string) string {
	switch {
	case strings.Contains(path, "/habits/logs/"):
		return "log"
	case strings.Contains(path, "/habits"):
		return "habit"
	case strings.Contains(path, "/diet"):
		return "diet entry"
	case strings.Contains(path, "/investments"):
		return "investment"
	default:
		return "resource"
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
