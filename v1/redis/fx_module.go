package redis

import (
	"context"

	"go.uber.org/fx"

	"github.com/atlasops/std/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Redis client.
// This module registers the Redis client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module:
//  1. Provides the Redis client factory function
//  2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    fx.Provide(func() redis.Config {
//	        return redis.Config{URL: os.Getenv("REDIS_URL")}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client
type RedisParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"` // Optional logger from the std logger package
	Observer observability.Observer `optional:"true"` // Optional observer, e.g. *metrics.Metrics
}

// NewClientWithDI creates a new Redis client using dependency injection.
// This function is designed to be used with Uber's fx dependency
// injection framework where dependencies are automatically provided via
// the RedisParams struct.
//
// The optional logger and observer are injected into the client before
// delegating to the standard NewClient constructor.
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}

	return client, nil
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
}

// RegisterRedisLifecycle registers the Redis client with the fx lifecycle system.
// This function sets up proper initialization and graceful shutdown of the
// Redis client.
//
// The function:
//  1. On application start: pings Redis, which triggers the lazy
//     initialization sequence (dial + probe through the retry policy)
//     and fails startup if the server stays unreachable.
//  2. On application stop: closes the connection cleanly.
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Client.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}
