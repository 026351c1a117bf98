package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SessionSecret signs the session token handed to the browser.
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`

	// NotificationTTL is the auto-dismiss window of the notification slot.
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL, default=5s"`

	Upstream UpstreamConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

// UpstreamConfig points the gateway at the remote pet-adoption REST API.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL, default=http://localhost:3000/api"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT,  default=15s"`
}

// MongoConfig locates the session database. ConnectTimeout bounds the
// startup dial and ping.
type MongoConfig struct {
	URI            string        `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DB,  default=petadopt"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=10s"`
}

// RedisConfig locates the notification and inflight keyspaces.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB             int           `env:"REDIS_DB,   default=0"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT, default=5s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
