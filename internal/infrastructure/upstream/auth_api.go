package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

type wireAuthResponse struct {
	Token string   `json:"token"`
	User  wireUser `json:"user"`
}

// Login authenticates against POST /auth/login. Invalid credentials come back
// as domain.ErrInvalidCredentials; note the upstream answers 401 here, which
// for this one endpoint means bad credentials rather than an expired session.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	var resp wireAuthResponse
	err := c.doJSON(ctx, "auth_login", http.MethodPost, "/auth/login", nil, "", map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}, &resp)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &ports.AuthResult{Token: resp.Token, User: resp.User.toDomain()}, nil
}

// Register creates an account via POST /auth/register. The upstream logs the
// new user in as part of registration, so the response shape matches Login.
func (c *Client) Register(ctx context.Context, input ports.RegistrationInput) (*ports.AuthResult, error) {
	var resp wireAuthResponse
	err := c.doJSON(ctx, "auth_register", http.MethodPost, "/auth/register", nil, "", map[string]string{
		"fullName": input.FullName,
		"email":    input.Email,
		"phone":    input.Phone,
		"password": input.Password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: resp.Token, User: resp.User.toDomain()}, nil
}

// Me fetches the authenticated profile from GET /auth/me.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var resp wireUser
	if err := c.doJSON(ctx, "auth_me", http.MethodGet, "/auth/me", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	user := resp.toDomain()
	return &user, nil
}
