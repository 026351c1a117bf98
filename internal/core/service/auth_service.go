package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/api/metrics"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

const (
	adminLanding   = "/admin"
	defaultLanding = "/"
)

// AuthService implements login, registration and logout against the upstream
// API, owning the one authoritative session per client.
type AuthService struct {
	api      ports.AuthAPI
	sessions ports.SessionStore
	secret   string
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(api ports.AuthAPI, sessions ports.SessionStore, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{api: api, sessions: sessions, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*ports.SessionResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	auth, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	result, err := s.startSession(ctx, auth)
	if err != nil {
		return nil, err
	}

	metrics.SessionsStartedTotal.WithLabelValues("login").Inc()
	s.logger.Info().Str("user_id", auth.User.ID).Str("role", auth.User.Role).Msg("session started")
	return result, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegistrationInput) (*ports.SessionResult, error) {
	auth, err := s.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	result, err := s.startSession(ctx, auth)
	if err != nil {
		return nil, err
	}

	metrics.SessionsStartedTotal.WithLabelValues("register").Inc()
	s.logger.Info().Str("user_id", auth.User.ID).Msg("user registered")
	return result, nil
}

// Logout destroys the session. Unknown or empty session IDs are fine: logging
// out twice must behave like logging out once.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.SessionsEndedTotal.WithLabelValues("logout").Inc()
	return nil
}

// Profile fetches the authenticated identity from the upstream and re-persists
// it, so the stored profile tracks upstream edits.
func (s *AuthService) Profile(ctx context.Context, sess domain.Session) (*domain.User, error) {
	user, err := s.api.Me(ctx, sess.Token)
	if err != nil {
		return nil, err
	}

	sess.User = *user
	if err := s.sessions.Save(ctx, &sess); err != nil {
		return nil, err
	}
	return user, nil
}

// startSession persists the upstream token together with the user profile and
// mints the signed token handed to the browser. Persisting both in one write
// keeps the session invariant: never a token without a user or vice versa.
func (s *AuthService) startSession(ctx context.Context, auth *ports.AuthResult) (*ports.SessionResult, error) {
	sess := domain.Session{
		ID:    uuid.NewString(),
		Token: auth.Token,
		User:  auth.User,
	}

	if err := s.sessions.Save(ctx, &sess); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	signed, err := s.signSession(sess.ID, expiresAt)
	if err != nil {
		return nil, err
	}

	landing := defaultLanding
	if auth.User.IsAdmin() {
		landing = adminLanding
	}

	return &ports.SessionResult{
		Session:     sess,
		SignedToken: signed,
		ExpiresAt:   expiresAt,
		RedirectTo:  landing,
	}, nil
}

func (s *AuthService) signSession(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
