package api

import (
	"context"
	"net/http"

	"github.com/Ramsha-Haris/table/internal/model"
)

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the login response body. RedirectTo names the screen the
// backend wants the user to land on.
type LoginResponse struct {
	User       *model.User `json:"user"`
	RedirectTo string      `json:"redirectTo"`
	Message    string      `json:"message"`
}

// SignupRequest is the signup request body. TermsAccepted carries the HTML
// checkbox value ("on" or "") the backend expects.
type SignupRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	UserType        string `json:"userType"`
	TermsAccepted   string `json:"termsAccepted"`
}

// Login authenticates and lets the backend set the session cookie.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/signup", nil, req, nil)
	return err
}

// Logout terminates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
	return err
}
