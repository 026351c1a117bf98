package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, input ports.RegistrationInput) (*ports.AuthResult, error)
	meFn       func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAuthAPI) Register(ctx context.Context, input ports.RegistrationInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthAPI) Me(ctx context.Context, token string) (*domain.User, error) {
	return s.meFn(ctx, token)
}

// memSessionStore is an in-memory ports.SessionStore for service tests.
type memSessionStore struct {
	sessions map[string]domain.Session
	saves    int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]domain.Session)}
}

func (m *memSessionStore) Save(_ context.Context, sess *domain.Session) error {
	m.sessions[sess.ID] = *sess
	m.saves++
	return nil
}

func (m *memSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func adopterAuthResult() *ports.AuthResult {
	return &ports.AuthResult{
		Token: "upstream-token",
		User:  domain.User{ID: "u1", FullName: "Alice Adopter", Email: "alice@example.com", Role: domain.RoleUser},
	}
}

func TestAuthService_Login_PersistsTokenAndUserTogether(t *testing.T) {
	store := newMemSessionStore()
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, creds ports.Credentials) (*ports.AuthResult, error) {
			if creds.Email != "alice@example.com" || creds.Password != "secret" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return adopterAuthResult(), nil
		},
	}
	svc := NewAuthService(api, store, "signing-secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "alice@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if store.saves != 1 {
		t.Fatalf("expected a single atomic save, got %d", store.saves)
	}
	saved, err := store.Find(context.Background(), result.Session.ID)
	if err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
	if saved.Token != "upstream-token" {
		t.Fatalf("persisted token = %q", saved.Token)
	}
	if saved.User.ID != "u1" {
		t.Fatalf("persisted user = %+v", saved.User)
	}
	if result.RedirectTo != "/" {
		t.Fatalf("adopter should land on /, got %q", result.RedirectTo)
	}
}

func TestAuthService_Login_SignedTokenCarriesSessionID(t *testing.T) {
	store := newMemSessionStore()
	api := &stubAuthAPI{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			return adopterAuthResult(), nil
		},
	}
	svc := NewAuthService(api, store, "signing-secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "a@b.c", Password: "x"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.SignedToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("signing-secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("signed token invalid: %v", err)
	}
	if claims["sid"] != result.Session.ID {
		t.Fatalf("sid claim = %v, want %s", claims["sid"], result.Session.ID)
	}
}

func TestAuthService_Login_AdminLandsOnConsole(t *testing.T) {
	store := newMemSessionStore()
	api := &stubAuthAPI{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			return &ports.AuthResult{
				Token: "tok",
				User:  domain.User{ID: "a1", Role: domain.RoleAdmin},
			}, nil
		},
	}
	svc := NewAuthService(api, store, "secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), ports.Credentials{Email: "root@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.RedirectTo != "/admin" {
		t.Fatalf("admin should land on /admin, got %q", result.RedirectTo)
	}
}

func TestAuthService_Login_EmptyCredentialsNeverReachUpstream(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(context.Context, ports.Credentials) (*ports.AuthResult, error) {
			t.Fatalf("upstream should not be called")
			return nil, nil
		},
	}
	svc := NewAuthService(api, newMemSessionStore(), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), ports.Credentials{}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_StartsSessionLikeLogin(t *testing.T) {
	store := newMemSessionStore()
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, input ports.RegistrationInput) (*ports.AuthResult, error) {
			if input.FullName != "Bob" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Token: "fresh-token",
				User:  domain.User{ID: "u2", FullName: "Bob", Role: domain.RoleUser},
			}, nil
		},
	}
	svc := NewAuthService(api, store, "secret", time.Hour, zerolog.Nop())

	result, err := svc.Register(context.Background(), ports.RegistrationInput{FullName: "Bob", Email: "b@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := store.Find(context.Background(), result.Session.ID); err != nil {
		t.Fatalf("registration must persist a session: %v", err)
	}
	if result.SignedToken == "" {
		t.Fatalf("registration must mint a signed token")
	}
	if result.RedirectTo != "/" {
		t.Fatalf("new adopter should land on /, got %q", result.RedirectTo)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := newMemSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok"}
	svc := NewAuthService(&stubAuthAPI{}, store, "secret", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(context.Background(), "s1"); err != nil {
		t.Fatalf("second logout must also succeed: %v", err)
	}
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("logout without a session must succeed: %v", err)
	}
	if _, err := store.Find(context.Background(), "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session should be gone, got %v", err)
	}
}

func TestAuthService_Profile_RefreshesStoredUser(t *testing.T) {
	store := newMemSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok", User: domain.User{ID: "u1", FullName: "Old Name"}}
	api := &stubAuthAPI{
		meFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "tok" {
				t.Fatalf("expected stored upstream token, got %q", token)
			}
			return &domain.User{ID: "u1", FullName: "New Name", Role: domain.RoleUser}, nil
		},
	}
	svc := NewAuthService(api, store, "secret", time.Hour, zerolog.Nop())

	user, err := svc.Profile(context.Background(), store.sessions["s1"])
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if user.FullName != "New Name" {
		t.Fatalf("unexpected profile: %+v", user)
	}
	if store.sessions["s1"].User.FullName != "New Name" {
		t.Fatalf("stored user not refreshed: %+v", store.sessions["s1"].User)
	}
}
