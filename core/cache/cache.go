package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis cache.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the optional Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// TTLSeconds is the lifetime of cached entries.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"60"`
	// Enabled toggles the cache; when false no connection is attempted.
	Enabled bool `mapstructure:"enabled" default:"false"`
}

// TTL returns the configured entry lifetime.
func (c Config) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// NewClient connects to Redis and verifies the connection with a short ping.
// It returns nil when the cache is disabled or unreachable; callers degrade
// to uncached lookups.
func NewClient(cfg Config) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
