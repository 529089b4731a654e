package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client provides a high-level interface for interacting with Redis.
// It covers the typed operation set used for ephemeral state, pub/sub
// signaling and short-lived list buffers, plus connection lifecycle
// control.
//
// Every operation establishes the connection lazily on first use and
// surfaces ErrConnection once the configured retries are exhausted;
// absence of a key is never an error.
//
// This interface is implemented by the concrete *RedisClient type.
type Client interface {
	// Connection and lifecycle
	Ping(ctx context.Context) error
	State() ConnectionState
	Close() error

	// String operations
	Get(ctx context.Context, key string) (string, error)
	GetOrDefault(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	// Key operations
	Delete(ctx context.Context, keys ...string) (int64, error)
	Exists(ctx context.Context, keys ...string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Keys(ctx context.Context, pattern string) ([]string, error)

	// List operations
	RPush(ctx context.Context, key string, values ...interface{}) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LLen(ctx context.Context, key string) (int64, error)

	// Pub/Sub operations
	Publish(ctx context.Context, channel string, message interface{}) (int64, error)
	Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error)
}

// Compile-time check that *RedisClient satisfies the Client interface.
var _ Client = (*RedisClient)(nil)
