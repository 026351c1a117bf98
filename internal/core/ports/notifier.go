package ports

import (
	"context"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// Notifier manages the single notification slot of a session. Show replaces
// whatever is currently displayed and restarts the dismissal window; callers
// cannot assume delivery if another Show fires immediately after.
type Notifier interface {
	Show(ctx context.Context, sessionID string, n domain.Notification) error
	Current(ctx context.Context, sessionID string) (*domain.Notification, error)
	Dismiss(ctx context.Context, sessionID string) error
}
