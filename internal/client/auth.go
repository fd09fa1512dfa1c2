package client

import (
	"context"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
)

// AuthResponse is the payload returned by login and registration
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterInput is the payload for creating an account. Company is only
// meaningful when Role is RoleRecruiter.
type RegisterInput struct {
	Email     string                 `json:"email"`
	Password  string                 `json:"password"`
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Role      domain.Role            `json:"role"`
	Company   *domain.CompanyProfile `json:"company,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for an identity and a bearer token.
// The token is returned, not stored; the session store persists it.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its identity and token
func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the current token on the backend
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Me fetches the identity attached to the current token
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetConfirm struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// RequestPasswordReset asks the backend to start a password reset and
// returns the user-facing confirmation message.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPost, "/auth/password-reset/request", passwordResetRequest{Email: email}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ResetPassword completes a password reset with the emailed token
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPost, "/auth/password-reset/confirm", passwordResetConfirm{Token: token, Password: newPassword}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
