// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package exposes a configurable /metrics HTTP endpoint,
// registers Go runtime instrumentation, and implements the
// observability.Observer hook so that service clients (e.g. the redis
// client) report their operations as Prometheus metrics without any
// coupling to this package.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation, also an observability.Observer
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics and observability.Observer for dependency injection
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Operation counter, latency histogram and size histogram fed by the
//     Observer hook (labels: component, operation, status)
//   - Automatic registration of Go runtime and process-level metrics
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Constant service label for multi-service observability
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
//	import "github.com/atlasops/std/v1/metrics"
//
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		ServiceName:             "cache-core",
//		EnableDefaultCollectors: true,
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Wire the observer into a service client
//	client = client.WithObserver(m)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule, // Provides *Metrics and observability.Observer
//		redis.FXModule,   // Picks up the observer automatically
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", ServiceName: "cache-core"}
//		}),
//	)
//	app.Run()
//
// Access metrics at: http://localhost:9090/metrics
//
// # Thread Safety
//
// All methods on the Metrics type are safe for concurrent use by
// multiple goroutines.
package metrics
