package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atlasops/std/v1/observability"
)

// MetricsCollector provides an interface for collecting and exposing
// application metrics. It covers the operation-level Observer hook plus
// dynamic metric factories for service-specific collectors.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// Observer hook

	// ObserveOperation records a client operation (counter + latency).
	ObserveOperation(op observability.OperationContext)

	// Dynamic metric factories

	// CreateCounter creates a new CounterVec metric and registers it.
	CreateCounter(name, help string, labels []string) *prometheus.CounterVec

	// CreateHistogram creates a new HistogramVec metric and registers it.
	CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec

	// CreateGauge creates a new GaugeVec metric and registers it.
	CreateGauge(name, help string, labels []string) *prometheus.GaugeVec
}

// Compile-time checks that *Metrics satisfies its contracts.
var (
	_ MetricsCollector       = (*Metrics)(nil)
	_ observability.Observer = (*Metrics)(nil)
)
