package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/atlasops/std/v1/observability"
)

// ObserveOperation records a client operation reported through the
// observability hook. It increments the operation counter and feeds the
// latency and size histograms.
//
// This makes *Metrics usable directly as an observability.Observer:
//
//	client = client.WithObserver(metricsInstance)
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		m.operationSize.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec for resource monitoring.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
