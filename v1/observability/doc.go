// Package observability defines the Observer hook through which the
// service client packages report their operations.
//
// The hook decouples the clients from any specific metrics or tracing
// implementation: a client package (e.g. redis) calls the Observer with
// an OperationContext describing each operation, and the application
// decides what to do with it. The metrics package provides a
// Prometheus-backed implementation.
//
// # Usage
//
//	type logObserver struct{}
//
//	func (logObserver) ObserveOperation(op observability.OperationContext) {
//		log.Printf("%s.%s on %s took %s", op.Component, op.Operation, op.Resource, op.Duration)
//	}
//
//	client = client.WithObserver(logObserver{})
//
// Observers are called synchronously on the operation path and must be
// cheap and safe for concurrent use.
package observability
