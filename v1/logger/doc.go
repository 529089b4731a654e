// Package logger provides structured logging functionality for Go applications.
//
// The logger package wraps Uber's Zap logger behind a small, stable
// surface that the other service client packages consume through their
// own Logger interfaces. It integrates with the fx dependency injection
// framework for easy incorporation into applications.
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warn, Error)
//   - JSON output for log collection systems, console output for development
//   - Service name and process ID attached to every entry
//   - Integration with common log collection systems
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/atlasops/std/v1/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	// Log with structured fields
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//		"ip":      "192.168.1.1",
//	})
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule:
//
//	import (
//		"github.com/atlasops/std/v1/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:       logger.Info,
//				ServiceName: "my-service",
//			}
//		}),
//		fx.Invoke(func(log *logger.Logger) {
//			log.Info("Service started", nil, nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Logging Levels
//
//	log.Debug("Debug message", nil, nil) // Only appears if level is Debug
//	log.Info("Info message", nil, nil)
//	log.Warn("Warning message", nil, nil)
//	log.Error("Error message", err, nil)
//
// # Thread Safety
//
// All methods on the Logger are safe for concurrent use by multiple
// goroutines.
package logger
