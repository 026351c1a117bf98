package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/api/middleware"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]domain.Session
	deleted  []string
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
	s.deleted = append(s.deleted, id)
	delete(s.sessions, id)
	return nil
}

type stubNotifier struct {
	shown []domain.Notification
}

func (s *stubNotifier) Show(_ context.Context, _ string, n domain.Notification) error {
	s.shown = append(s.shown, n)
	return nil
}

func (s *stubNotifier) Current(context.Context, string) (*domain.Notification, error) {
	return nil, nil
}

func (s *stubNotifier) Dismiss(context.Context, string) error {
	return nil
}

func handleError(t *testing.T, sessions *stubSessionStore, notifier *stubNotifier, path, sid string, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	if sid != "" {
		c.Set(middleware.SessionIDContextKey, sid)
	}

	NewHTTPErrorHandler(zerolog.Nop(), sessions, notifier)(err, c)
	return rec
}

func TestErrorHandler_SessionExpired_DestroysSessionAndRedirects(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.sessions["s1"] = domain.Session{ID: "s1", Token: "stale"}

	rec := handleError(t, sessions, &stubNotifier{}, "/adoptions", "s1", domain.ErrSessionExpired)

	if len(sessions.deleted) != 1 || sessions.deleted[0] != "s1" {
		t.Fatalf("expired session must be destroyed, deleted=%v", sessions.deleted)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != middleware.LoginPath {
		t.Fatalf("expected redirect to %s, got %s", middleware.LoginPath, loc)
	}
}

func TestErrorHandler_SessionExpired_LoginFlowGets401(t *testing.T) {
	for _, path := range []string{"/auth/login", "/auth/register"} {
		rec := handleError(t, newStubSessionStore(), &stubNotifier{}, path, "", domain.ErrSessionExpired)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "" {
			t.Fatalf("%s: login flow must not redirect, got %s", path, loc)
		}
	}
}

func TestErrorHandler_UpstreamFailure_RetryableWithNotification(t *testing.T) {
	notifier := &stubNotifier{}

	rec := handleError(t, newStubSessionStore(), notifier, "/pets", "s1", domain.ErrUpstream)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var resp struct {
		Error     string `json:"error"`
		Retryable bool   `json:"retryable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Retryable {
		t.Fatalf("upstream failures must be retryable: %+v", resp)
	}
	if len(notifier.shown) != 1 || notifier.shown[0].Severity != domain.SeverityError {
		t.Fatalf("expected an error notification, got %+v", notifier.shown)
	}
}

func TestErrorHandler_UpstreamTimeout_Answers504(t *testing.T) {
	notifier := &stubNotifier{}

	rec := handleError(t, newStubSessionStore(), notifier, "/pets", "s1", domain.ErrUpstreamTimeout)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
	var resp struct {
		Retryable bool `json:"retryable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Retryable {
		t.Fatalf("timeouts must stay retryable")
	}
	if len(notifier.shown) != 1 {
		t.Fatalf("expected an error notification, got %+v", notifier.shown)
	}
}

func TestErrorHandler_UpstreamFailure_AnonymousSkipsNotification(t *testing.T) {
	notifier := &stubNotifier{}

	handleError(t, newStubSessionStore(), notifier, "/pets", "", domain.ErrUpstream)

	if len(notifier.shown) != 0 {
		t.Fatalf("no session means no notification slot, got %+v", notifier.shown)
	}
}

func TestErrorHandler_DomainSentinelMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session not found", domain.ErrSessionNotFound, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"pet not found", domain.ErrPetNotFound, http.StatusNotFound},
		{"adoption not found", domain.ErrAdoptionNotFound, http.StatusNotFound},
		{"action in flight", domain.ErrActionInFlight, http.StatusConflict},
		{"invalid image", domain.ErrInvalidImage, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleError(t, newStubSessionStore(), &stubNotifier{}, "/x", "", tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestErrorHandler_UpstreamErrorKeepsStatusAndMessage(t *testing.T) {
	err := &domain.UpstreamError{StatusCode: http.StatusConflict, Message: "You already applied for this pet"}

	rec := handleError(t, newStubSessionStore(), &stubNotifier{}, "/adoptions", "s1", err)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "You already applied for this pet" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := handleError(t, newStubSessionStore(), &stubNotifier{}, "/x", "", echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
