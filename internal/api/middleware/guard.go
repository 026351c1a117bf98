package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// LoginPath is where unauthenticated clients are sent.
	LoginPath = "/login"
	// HomePath is where authenticated non-admins are sent when they try an
	// admin route.
	HomePath = "/"
)

// RequireUser gates authenticated-only routes. Without a session the client
// is redirected to the login view; the attempted destination is discarded.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := SessionFrom(c); !ok {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			return next(c)
		}
	}
}

// RequireAdmin gates admin-only routes. A non-admin with a valid session is
// redirected to the landing view, not shown an error.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFrom(c)
			if !ok {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			if !sess.User.IsAdmin() {
				return c.Redirect(http.StatusSeeOther, HomePath)
			}
			return next(c)
		}
	}
}
