package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pawhaven/adoption-gateway/internal/api/metrics"
	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

const defaultDismissAfter = 5 * time.Second

// Notifier keeps each session's single notification slot in Redis.
// Key format: notify:<session_id>
//
// SET with a TTL gives the slot its contract for free: a new Show overwrites
// the value and restarts the expiry, so the latest message always wins and
// dismisses on its own timer; expiry is the auto-dismiss.
type Notifier struct {
	client       *redis.Client
	dismissAfter time.Duration
}

// NewNotifier creates a Notifier wrapping the given Redis client.
func NewNotifier(client *redis.Client, dismissAfter time.Duration) *Notifier {
	if dismissAfter <= 0 {
		dismissAfter = defaultDismissAfter
	}
	return &Notifier{client: client, dismissAfter: dismissAfter}
}

// Show replaces the session's current notification and restarts its timer.
func (n *Notifier) Show(ctx context.Context, sessionID string, notif domain.Notification) error {
	payload, err := json.Marshal(notif)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := n.client.Set(ctx, n.key(sessionID), payload, n.dismissAfter).Err(); err != nil {
		return fmt.Errorf("show notification: %w", err)
	}
	metrics.NotificationsShownTotal.WithLabelValues(string(notif.Severity)).Inc()
	return nil
}

// Current returns the live notification, or nil when the slot is empty or its
// payload no longer parses.
func (n *Notifier) Current(ctx context.Context, sessionID string) (*domain.Notification, error) {
	raw, err := n.client.Get(ctx, n.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notification: %w", err)
	}

	var notif domain.Notification
	if err := json.Unmarshal(raw, &notif); err != nil {
		_ = n.client.Del(ctx, n.key(sessionID)).Err()
		return nil, nil
	}
	return &notif, nil
}

// Dismiss clears the slot ahead of its timer.
func (n *Notifier) Dismiss(ctx context.Context, sessionID string) error {
	if err := n.client.Del(ctx, n.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("dismiss notification: %w", err)
	}
	return nil
}

func (n *Notifier) key(sessionID string) string {
	return "notify:" + sessionID
}
