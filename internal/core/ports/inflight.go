package ports

import "context"

// InflightGuard prevents duplicate concurrent submissions of the same action
// on the same resource by the same session. Begin reports false when the
// action is already outstanding; End releases the slot. Slots expire on their
// own after the upstream timeout, so a crashed request cannot leak a lock.
type InflightGuard interface {
	Begin(ctx context.Context, sessionID, action, resourceID string) (bool, error)
	End(ctx context.Context, sessionID, action, resourceID string) error
}
