package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultInflightTTL = 20 * time.Second

// InflightGuard tracks outstanding mutations per session in Redis so the same
// action cannot be submitted twice concurrently.
// Key format: inflight:<session_id>:<action>:<resource_id>
//
// The TTL is sized just above the upstream timeout: if a request dies without
// releasing its slot, the slot frees itself once the upstream call can no
// longer be outstanding.
type InflightGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInflightGuard creates an InflightGuard wrapping the given Redis client.
func NewInflightGuard(client *redis.Client, ttl time.Duration) *InflightGuard {
	if ttl <= 0 {
		ttl = defaultInflightTTL
	}
	return &InflightGuard{client: client, ttl: ttl}
}

// Begin claims the slot for this action. It reports false when the same
// action on the same resource is already outstanding for this session.
func (g *InflightGuard) Begin(ctx context.Context, sessionID, action, resourceID string) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(sessionID, action, resourceID), "1", g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("inflight begin: %w", err)
	}
	return ok, nil
}

// End releases the slot once the action has resolved.
func (g *InflightGuard) End(ctx context.Context, sessionID, action, resourceID string) error {
	if err := g.client.Del(ctx, g.key(sessionID, action, resourceID)).Err(); err != nil {
		return fmt.Errorf("inflight end: %w", err)
	}
	return nil
}

func (g *InflightGuard) key(sessionID, action, resourceID string) string {
	return fmt.Sprintf("inflight:%s:%s:%s", sessionID, action, resourceID)
}
