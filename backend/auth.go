package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"shopper-front/models"
)

// LoginResult is what a successful login yields: the backend access token
// (from the Set-Cookie header) plus the identity fields of the response
// payload, which drive the post-login redirect.
type LoginResult struct {
	Token string
	Role  string
	Name  string
	Email string
}

// Login authenticates against the backend and extracts the session token
// the backend sets as an HTTP-only cookie.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}

	token := ""
	for _, ck := range resp.Cookies() {
		if ck.Name == sessionCookie {
			token = ck.Value
		}
	}

	var payload struct {
		Role  string `json:"role"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "login succeeded but no session cookie was issued"}
	}

	return &LoginResult{
		Token: token,
		Role:  payload.Role,
		Name:  payload.Name,
		Email: payload.Email,
	}, nil
}

// Register creates an account. The backend redirects nothing; callers decide
// where to land afterwards.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", req)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return decode(resp, nil)
}

// Logout ends the backend session. Failures are reported but callers treat
// logout as best-effort.
func (c *Client) Logout(ctx context.Context, token string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", token, nil)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return decode(resp, nil)
}

// Me fetches the current session snapshot.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", token, nil)
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	var user models.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// MyProjects fetches the caller's owned projects.
func (c *Client) MyProjects(ctx context.Context, token string) ([]models.Project, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/projects/mine", token, nil)
	if err != nil {
		return nil, fmt.Errorf("projects request: %w", err)
	}
	var projects []models.Project
	if err := decode(resp, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProfile sends a partial profile update and returns the refreshed
// user payload the backend responds with.
func (c *Client) UpdateProfile(ctx context.Context, token string, req models.UpdateProfileRequest) (*models.User, error) {
	resp, err := c.doJSON(ctx, http.MethodPatch, "/api/auth/update", token, req)
	if err != nil {
		return nil, fmt.Errorf("profile update request: %w", err)
	}
	var user models.User
	if err := decode(resp, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func escape(s string) string {
	return url.PathEscape(s)
}
