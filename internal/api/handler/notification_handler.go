package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

// NotificationHandler exposes the session's single notification slot.
type NotificationHandler struct {
	notifier ports.Notifier
}

func NewNotificationHandler(notifier ports.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// Current handles GET /notifications/current. An empty slot is 204, not an
// error; clients poll this after actions.
//
// @Summary      Current notification
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Notification
// @Success      204  "no notification pending"
// @Router       /notifications/current [get]
func (h *NotificationHandler) Current(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	n, err := h.notifier.Current(c.Request().Context(), sess.ID)
	if err != nil {
		return err
	}
	if n == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, n)
}

// Dismiss handles DELETE /notifications/current. Dismissing an empty slot is
// a no-op.
//
// @Summary      Dismiss the current notification
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  "dismissed"
// @Router       /notifications/current [delete]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.notifier.Dismiss(c.Request().Context(), sess.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
