package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

const (
	// SessionContextKey holds the hydrated domain.Session, when one exists.
	SessionContextKey = "session"
	// SessionIDContextKey holds the session ID even when hydration failed,
	// so the error handler can still clear a dead session.
	SessionIDContextKey = "session_id"

	// SessionCookieName is the cookie carrying the signed session token.
	// An Authorization: Bearer header takes precedence when both are sent.
	SessionCookieName = "petadopt_session"
)

// Session restores the caller's session before any route logic runs: it
// parses the signed session token, loads the persisted token+user pair, and
// injects the result into the request context. Restoration never fails a
// request — a missing, forged or corrupt session simply leaves the request
// unauthenticated, and the store clears bad entries itself.
func Session(sessions ports.SessionStore, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionToken(c)
			if raw == "" {
				return next(c)
			}

			sid, ok := parseSessionToken(raw, secret)
			if !ok {
				return next(c)
			}
			c.Set(SessionIDContextKey, sid)

			sess, err := sessions.Find(c.Request().Context(), sid)
			if err != nil {
				return next(c)
			}

			c.Set(SessionContextKey, *sess)
			return next(c)
		}
	}
}

// SessionFrom returns the hydrated session, if any.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(SessionContextKey).(domain.Session)
	return sess, ok
}

// SessionIDFrom returns the session ID carried by the request token, whether
// or not the session itself still exists.
func SessionIDFrom(c echo.Context) string {
	sid, _ := c.Get(SessionIDContextKey).(string)
	return sid
}

func sessionToken(c echo.Context) string {
	// A non-Bearer Authorization header is not ours; the cookie may still be.
	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func parseSessionToken(raw, secret string) (string, bool) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	sid, _ := claims["sid"].(string)
	return sid, sid != ""
}
