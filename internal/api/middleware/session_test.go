package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

const testSecret = "test-signing-secret"

type stubSessionStore struct {
	sessions map[string]domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session) error {
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *stubSessionStore) Find(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signTestToken(t *testing.T, secret, sid string) string {
	t.Helper()
	claims := jwt.MapClaims{"sid": sid, "exp": time.Now().Add(time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runSession(t *testing.T, store *stubSessionStore, decorate func(*http.Request)) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	decorate(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Session(store, testSecret)(func(c echo.Context) error { return nil })
	if err := h(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return c
}

func TestSession_HydratesFromCookie(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok", User: domain.User{ID: "u1", Role: domain.RoleUser}}

	c := runSession(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signTestToken(t, testSecret, "s1")})
	})

	sess, ok := SessionFrom(c)
	if !ok {
		t.Fatalf("expected a hydrated session")
	}
	if sess.Token != "tok" || sess.User.ID != "u1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if SessionIDFrom(c) != "s1" {
		t.Fatalf("session ID not recorded")
	}
}

func TestSession_HydratesFromBearerHeader(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok", User: domain.User{ID: "u1"}}

	c := runSession(t, store, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, testSecret, "s1"))
	})

	if _, ok := SessionFrom(c); !ok {
		t.Fatalf("expected a hydrated session from the Authorization header")
	}
}

func TestSession_NonBearerHeaderFallsBackToCookie(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok", User: domain.User{ID: "u1"}}

	c := runSession(t, store, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signTestToken(t, testSecret, "s1")})
	})

	if _, ok := SessionFrom(c); !ok {
		t.Fatalf("a foreign Authorization scheme must not mask the session cookie")
	}
}

func TestSession_ForgedTokenLeavesRequestAnonymous(t *testing.T) {
	store := newStubSessionStore()
	store.sessions["s1"] = domain.Session{ID: "s1", Token: "tok"}

	c := runSession(t, store, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signTestToken(t, "wrong-secret", "s1")})
	})

	if _, ok := SessionFrom(c); ok {
		t.Fatalf("forged token must not hydrate a session")
	}
	if SessionIDFrom(c) != "" {
		t.Fatalf("forged token must not leak a session ID")
	}
}

func TestSession_MissingStoreEntryStillRecordsID(t *testing.T) {
	c := runSession(t, newStubSessionStore(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signTestToken(t, testSecret, "gone")})
	})

	if _, ok := SessionFrom(c); ok {
		t.Fatalf("dead session must not hydrate")
	}
	// The ID stays available so the error handler can clear a dead session.
	if SessionIDFrom(c) != "gone" {
		t.Fatalf("expected session ID to survive hydration failure")
	}
}

func TestSession_NoTokenIsAnonymous(t *testing.T) {
	c := runSession(t, newStubSessionStore(), func(*http.Request) {})

	if _, ok := SessionFrom(c); ok {
		t.Fatalf("anonymous request must have no session")
	}
}
