package ports

import (
	"context"

	"github.com/pawhaven/adoption-gateway/internal/core/domain"
)

// SessionStore persists sessions: the upstream bearer token plus the
// serialized user profile, keyed by session ID.
//
// Find must treat corrupt or partial entries as absent: it clears them and
// returns domain.ErrSessionNotFound rather than an internal error, so a bad
// entry can never wedge a client in a half-authenticated state.
type SessionStore interface {
	Save(ctx context.Context, sess *domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
