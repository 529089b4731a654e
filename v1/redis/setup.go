package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atlasops/std/v1/observability"
	"github.com/atlasops/std/v1/retry"
)

// RedisClient represents a client for interacting with Redis.
// It wraps the go-redis client and provides a simplified interface with
// lazy, retried connection establishment and helper methods.
//
// The underlying connection is not dialed by the constructor: the first
// operation (or an explicit Ping) triggers the initialization sequence,
// which dials and probes the server through the retry combinator.
// Exactly one initialization sequence runs at a time; concurrent
// callers wait for it and observe the same handle or the same failure.
//
// RedisClient implements the Client interface.
type RedisClient struct {
	// cfg stores the configuration for this Redis client
	cfg Config

	// opts is the parsed connection configuration, fixed at construction
	opts *redis.Options

	// client is the underlying Redis connection handle. It is only
	// replaced (never mutated) while mu is held exclusively; operations
	// borrow it for the duration of a single call.
	client *redis.Client

	// state tracks the connection lifecycle, guarded by mu
	state ConnectionState

	// mu guards client and state. Operations on the common path only
	// take the read lock for the state check.
	mu sync.RWMutex

	// newConn constructs an unprobed connection handle from opts.
	// Replaceable in tests to simulate dial failures.
	newConn func() *redis.Client

	// retryCfg bounds and paces the connection attempts
	retryCfg retry.Config

	// logger is used for structured lifecycle logging
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// healthStop terminates the liveness loop of the current connection
	healthStop chan struct{}
}

// NewClient creates a new Redis client from the provided configuration.
//
// The constructor validates the configuration and builds the client
// object only; no network round-trip happens here. It fails with
// ErrConfig if the connection URL is absent or malformed.
//
// Example:
//
//	client, err := redis.NewClient(redis.Config{
//		URL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
func NewClient(cfg Config) (*RedisClient, error) {
	// Apply defaults
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = DefaultDialTimeout
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = cfg.ReadTimeout
	}
	if cfg.ConnectAttempts == 0 {
		cfg.ConnectAttempts = DefaultConnectAttempts
	}
	if cfg.ConnectBackoff == 0 {
		cfg.ConnectBackoff = DefaultConnectBackoff
	}
	if cfg.HealthCheckInterval == 0 {
		cfg.HealthCheckInterval = DefaultHealthCheckInterval
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: connection URL must be set", ErrConfig)
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	// Reconnection is paced by the retry combinator, not by go-redis.
	opts.MaxRetries = -1

	r := &RedisClient{
		cfg:    cfg,
		opts:   opts,
		state:  StateUninitialized,
		logger: cfg.Logger,
		retryCfg: retry.Config{
			Attempts:     cfg.ConnectAttempts,
			InitialDelay: cfg.ConnectBackoff,
		},
	}
	r.newConn = func() *redis.Client {
		return redis.NewClient(r.opts)
	}

	return r, nil
}

// ensureReady returns the live connection handle, running the
// initialization sequence first if there is none.
//
// The fast path is a read-locked state check. The slow path holds the
// exclusive lock for the whole sequence, re-checks the state after
// acquiring it, and dials + probes the server through the retry
// combinator. A handle that fails the probe is closed and discarded
// before the next attempt, so a re-run never leaks the previous
// partially-constructed connection.
func (r *RedisClient) ensureReady(ctx context.Context) (*redis.Client, error) {
	r.mu.RLock()
	if r.state == StateReady {
		handle := r.client
		r.mu.RUnlock()
		return handle, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have finished initializing while we waited.
	if r.state == StateReady {
		return r.client, nil
	}

	r.state = StateConnecting
	r.logInfo("Initializing Redis connection", nil)

	var handle *redis.Client
	err := retry.Do(ctx, r.retryCfg, func(ctx context.Context) error {
		conn := r.newConn()
		if err := conn.Ping(ctx).Err(); err != nil {
			_ = conn.Close()
			r.logWarn("Redis connection attempt failed", err)
			return err
		}
		handle = conn
		return nil
	})
	if err != nil {
		r.state = StateFailed
		r.client = nil
		r.logError("Failed to connect to Redis", err)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	r.client = handle
	r.state = StateReady
	r.startHealthLoop()
	r.logInfo("Successfully connected to Redis", nil)

	return handle, nil
}

// startHealthLoop launches the background liveness loop for the current
// connection. Must be called with mu held exclusively. The loop only
// observes and logs; re-initialization stays caller-driven.
func (r *RedisClient) startHealthLoop() {
	if r.cfg.HealthCheckInterval <= 0 {
		return
	}

	stop := make(chan struct{})
	r.healthStop = stop
	conn := r.client
	interval := r.cfg.HealthCheckInterval

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), r.cfg.DialTimeout)
				if err := conn.Ping(ctx).Err(); err != nil {
					r.logWarn("Redis health check failed", err)
				}
				cancel()
			}
		}
	}()
}

// State returns the current connection lifecycle state.
func (r *RedisClient) State() ConnectionState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Close releases the current connection and transitions the client to
// the closed state. It is safe to call in any state and is idempotent;
// a later operation re-initializes from scratch.
func (r *RedisClient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.healthStop != nil {
		close(r.healthStop)
		r.healthStop = nil
	}

	var err error
	if r.client != nil {
		r.logInfo("Closing Redis connection", nil)
		err = r.client.Close()
		r.client = nil
	}

	r.state = StateClosed
	return err
}

// WithObserver sets the observer for this client and returns the client
// for method chaining. The observer receives events about Redis
// operations (e.g. get, set, publish).
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (r *RedisClient) WithObserver(observer observability.Observer) *RedisClient {
	r.observer = observer
	return r
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
func (r *RedisClient) WithLogger(logger Logger) *RedisClient {
	r.logger = logger
	return r
}

func (r *RedisClient) logInfo(msg string, err error) {
	if r.logger != nil {
		r.logger.Info(msg, err)
	}
}

func (r *RedisClient) logWarn(msg string, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, err)
	}
}

func (r *RedisClient) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}
