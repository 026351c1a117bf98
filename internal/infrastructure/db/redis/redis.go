// Package redis backs the gateway's two expiring-key facilities: the
// per-session notification slot (Notifier) and the duplicate-submit guard
// (InflightGuard). Both lean on Redis TTLs, so connection setup lives here
// beside them.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultConnectTimeout = 5 * time.Second

// Config carries the connection settings for the notification and inflight
// keyspaces.
type Config struct {
	Addr string
	DB   int
	// ConnectTimeout bounds the startup ping. Zero applies the default.
	ConnectTimeout time.Duration
}

// Connect builds a Redis client and verifies it with a ping, so a bad
// REDIS_ADDR surfaces at startup rather than on the first notification.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		DB:         cfg.DB,
		ClientName: "adoption-gateway",
	})

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
