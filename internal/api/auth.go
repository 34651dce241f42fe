package api

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
)

// loginResponse is the auth endpoint envelope.
type loginResponse struct {
	Message string         `json:"message"`
	User    models.Profile `json:"user"`
	Token   string         `json:"token"`
}

// Login exchanges credentials for a session token. The client keeps the
// token for subsequent requests; the caller decides where to persist it.
func (c *Client) Login(ctx context.Context, username, password string) (models.Profile, string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := c.post(ctx, "/api/auth/login", body, &resp); err != nil {
		return models.Profile{}, "", err
	}
	c.token = resp.Token
	return resp.User, resp.Token, nil
}

// Logout invalidates the session server-side. Local token cleanup is the
// caller's responsibility.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/api/auth/logout", nil, nil)
}
