package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/api/middleware"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// ctxSession extracts the session hydrated by the Session middleware and
// performs a fast-fail check before any service call. Handlers mounted
// behind RequireUser/RequireAdmin should never see a missing session, but
// the check keeps a misconfigured route from running unauthenticated.
func ctxSession(c echo.Context) (domain.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok || sess.ID == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return sess, nil
}
