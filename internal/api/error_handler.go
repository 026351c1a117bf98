package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/api/metrics"
	"github.com/pawhaven/adoption-gateway/internal/api/middleware"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// NewHTTPErrorHandler returns the single place where errors become HTTP
// responses:
//   - Known domain errors map to deterministic status codes.
//   - An expired upstream session is handled here rather than inside the
//     HTTP client: the dead session is destroyed and, unless the client is
//     already on the login or registration flow, it is redirected to login.
//   - Transient upstream failures surface as retryable and raise an error
//     notification so the client can offer "try again".
//   - Unexpected errors are logged with their real cause and returned as a
//     generic 500.
func NewHTTPErrorHandler(log zerolog.Logger, sessions ports.SessionStore, notifier ports.Notifier) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, domain.ErrSessionExpired) {
			expireSession(c, log, sessions)
			return
		}

		if errors.Is(err, domain.ErrUpstream) {
			notifyTransient(c, log, notifier)
			code := http.StatusBadGateway
			if errors.Is(err, domain.ErrUpstreamTimeout) {
				code = http.StatusGatewayTimeout
			}
			_ = c.JSON(code, errorResponse{
				Error:     "service temporarily unavailable, please try again",
				Retryable: true,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Upstream 4xx bodies pass through with their own message.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode, ue.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "not authenticated"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, "pet not found"
	case errors.Is(err, domain.ErrAdoptionNotFound):
		return http.StatusNotFound, "adoption request not found"
	case errors.Is(err, domain.ErrActionInFlight):
		return http.StatusConflict, "action already in progress"
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, "image must be an image file of at most 5MB"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// expireSession destroys the persisted session whose upstream token was
// rejected, then moves the client to the login view — unless it is already
// in the login or registration flow, which just gets the 401.
func expireSession(c echo.Context, log zerolog.Logger, sessions ports.SessionStore) {
	if sid := middleware.SessionIDFrom(c); sid != "" {
		if delErr := sessions.Delete(c.Request().Context(), sid); delErr != nil {
			log.Warn().Err(delErr).Str("session_id", sid).Msg("failed to clear expired session")
		}
		metrics.SessionsEndedTotal.WithLabelValues("expired").Inc()
	}

	if isAuthEntryPath(c.Path()) {
		_ = c.JSON(http.StatusUnauthorized, errorResponse{Error: "session expired"})
		return
	}
	_ = c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func notifyTransient(c echo.Context, log zerolog.Logger, notifier ports.Notifier) {
	sid := middleware.SessionIDFrom(c)
	if sid == "" {
		return
	}
	n := domain.Notification{Message: "Something went wrong. Please try again.", Severity: domain.SeverityError}
	if err := notifier.Show(c.Request().Context(), sid, n); err != nil {
		log.Warn().Err(err).Msg("failed to publish transient-error notification")
	}
}

func isAuthEntryPath(path string) bool {
	return path == "/auth/login" || path == "/auth/register"
}
