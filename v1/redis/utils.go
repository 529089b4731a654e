package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ping checks if the Redis server is reachable and responsive,
// initializing the connection first if necessary.
func (r *RedisClient) Ping(ctx context.Context) error {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return err
	}

	return handle.Ping(ctx).Err()
}

// Get retrieves the value associated with the given key.
// A key that does not exist yields an empty string, not an error; use
// GetOrDefault to distinguish absence with a caller-chosen fallback.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.GetOrDefault(ctx, key, "")
}

// GetOrDefault retrieves the value associated with the given key,
// returning def if the key does not exist. Only connection failures are
// returned as errors.
func (r *RedisClient) GetOrDefault(ctx context.Context, key, def string) (string, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return "", err
	}

	result, err := handle.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		result, err = def, nil
	}
	r.observeOperation("get", key, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Set sets the value for the given key with an optional TTL.
// A ttl of 0 stores the key without expiry; callers that want a
// bounded-lifetime key pass a TTL explicitly (see DefaultKeyTTL).
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return err
	}

	err = handle.Set(ctx, key, value, ttl).Err()
	metadata := map[string]interface{}{}
	if ttl > 0 {
		metadata["ttl"] = ttl.String()
	}
	r.observeOperation("set", key, "", time.Since(start), err, 0, metadata)
	return err
}

// SetNX sets the value for the given key only if the key does not exist.
// Returns true if the key was set, false if it already existed.
func (r *RedisClient) SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return false, err
	}

	result, err := handle.SetNX(ctx, key, value, ttl).Result()
	metadata := map[string]interface{}{"was_set": result}
	if ttl > 0 {
		metadata["ttl"] = ttl.String()
	}
	r.observeOperation("setnx", key, "", time.Since(start), err, 0, metadata)
	return result, err
}

// Delete deletes one or more keys.
// Returns the number of keys that were deleted; deleting keys that do
// not exist is not an error.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	result, err := handle.Del(ctx, keys...).Result()
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	r.observeOperation("delete", resource, "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Exists checks if one or more keys exist.
// Returns the number of keys that exist.
func (r *RedisClient) Exists(ctx context.Context, keys ...string) (int64, error) {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	return handle.Exists(ctx, keys...).Result()
}

// Expire sets a timeout on a key.
// After the timeout has expired, the key will be automatically deleted.
func (r *RedisClient) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return false, err
	}

	return handle.Expire(ctx, key, ttl).Result()
}

// TTL returns the remaining time to live of a key that has a timeout.
// Returns -1 if the key exists but has no associated expire.
// Returns -2 if the key does not exist.
func (r *RedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	return handle.TTL(ctx, key).Result()
}

// Keys returns all keys matching the given glob-style pattern.
// The result is a snapshot, not a live view.
// WARNING: Use with caution in production as it can be slow on large
// keyspaces; it is unsuitable for hot paths.
func (r *RedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return nil, err
	}

	result, err := handle.Keys(ctx, pattern).Result()
	r.observeOperation("keys", pattern, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// --- List Operations ---

// RPush appends the specified values at the tail of the list stored at
// key, creating the list if it does not exist. Returns the new list
// length; insertion order is preserved.
func (r *RedisClient) RPush(ctx context.Context, key string, values ...interface{}) (int64, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	result, err := handle.RPush(ctx, key, values...).Result()
	r.observeOperation("rpush", key, "", time.Since(start), err, result, map[string]interface{}{
		"value_count": len(values),
	})
	return result, err
}

// LRange returns the specified elements of the list stored at key.
// The offsets start and stop are zero-based inclusive indexes; use -1
// for the last element, -2 for the second last, etc. A key that does
// not exist yields an empty slice.
func (r *RedisClient) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	startTime := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return nil, err
	}

	result, err := handle.LRange(ctx, key, start, stop).Result()
	r.observeOperation("lrange", key, "", time.Since(startTime), err, int64(len(result)), map[string]interface{}{
		"start": start,
		"stop":  stop,
	})
	return result, err
}

// LLen returns the length of the list stored at key.
func (r *RedisClient) LLen(ctx context.Context, key string) (int64, error) {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	return handle.LLen(ctx, key).Result()
}

// --- Pub/Sub Operations ---

// Publish posts a message to the given channel.
// Returns the number of subscribers that received the message. Delivery
// is fire-and-forget beyond the server's own pub/sub semantics.
func (r *RedisClient) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	start := time.Now()
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return 0, err
	}

	result, err := handle.Publish(ctx, channel, message).Result()
	r.observeOperation("publish", channel, "", time.Since(start), err, result, nil)
	return result, err
}

// Subscribe subscribes to the given channels.
// Ownership of the returned PubSub passes to the caller, who must close
// it when done; the client does not manage its lifecycle beyond
// creation.
func (r *RedisClient) Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error) {
	handle, err := r.ensureReady(ctx)
	if err != nil {
		return nil, err
	}

	return handle.Subscribe(ctx, channels...), nil
}
