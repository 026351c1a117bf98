package ports

import (
	"context"
	"time"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// SessionResult is returned by login and registration. RedirectTo tells the
// caller where to land: the admin console for admins, the public listing for
// everyone else.
type SessionResult struct {
	Session     domain.Session
	SignedToken string
	ExpiresAt   time.Time
	RedirectTo  string
}

// AuthService owns the session lifecycle. A successful registration is
// indistinguishable from a login in its session effects.
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*SessionResult, error)
	Register(ctx context.Context, input RegistrationInput) (*SessionResult, error)
	// Logout destroys the session unconditionally and is idempotent.
	Logout(ctx context.Context, sessionID string) error
	// Profile refreshes the stored user from the upstream profile endpoint.
	Profile(ctx context.Context, sess domain.Session) (*domain.User, error)
}
