package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/pawhaven/adoption-gateway/internal/api/metrics"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
	"github.com/pawhaven/adoption-gateway/internal/core/ports"
)

// actionGuard bundles the plumbing shared by every mutating user action:
// the per-action in-flight slot and the session's notification slot.
type actionGuard struct {
	inflight ports.InflightGuard
	notifier ports.Notifier
	logger   zerolog.Logger
}

// claim takes the in-flight slot for an action and returns its release func.
// A second identical action while the first is outstanding gets
// domain.ErrActionInFlight and never reaches the upstream.
func (g *actionGuard) claim(ctx context.Context, sessionID, action, resourceID string) (func(), error) {
	ok, err := g.inflight.Begin(ctx, sessionID, action, resourceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.InflightRejectedTotal.WithLabelValues(action).Inc()
		return nil, domain.ErrActionInFlight
	}
	return func() {
		if err := g.inflight.End(ctx, sessionID, action, resourceID); err != nil {
			g.logger.Warn().Err(err).Str("action", action).Msg("failed to release in-flight slot")
		}
	}, nil
}

// notify publishes to the session's notification slot. Failures are logged
// and swallowed; a broken toast never fails the action that produced it.
func (g *actionGuard) notify(ctx context.Context, sessionID, message string, severity domain.Severity) {
	if err := g.notifier.Show(ctx, sessionID, domain.Notification{Message: message, Severity: severity}); err != nil {
		g.logger.Warn().Err(err).Msg("failed to publish notification")
	}
}

// notifyFailure surfaces an action error as an error notification, preferring
// the upstream's own message. Expired sessions skip the toast: the client is
// being redirected to login anyway.
func (g *actionGuard) notifyFailure(ctx context.Context, sessionID string, err error, fallback string) {
	if errors.Is(err, domain.ErrSessionExpired) {
		return
	}
	g.notify(ctx, sessionID, upstreamMessage(err, fallback), domain.SeverityError)
}

// upstreamMessage returns the upstream's human-readable message when the
// error carries one, otherwise fallback.
func upstreamMessage(err error, fallback string) string {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
