package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
//
// The module:
//  1. Provides the NewLoggerClient factory function to the dependency
//     injection container, making the logger available to other components.
//  2. Invokes RegisterLoggerLifecycle to flush buffered entries on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//	    }),
//	    // other modules...
//	)
//
// Dependencies required by this module:
//   - A logger.Config instance must be available in the container.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers a shutdown hook that flushes any
// buffered log entries before the application terminates.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
