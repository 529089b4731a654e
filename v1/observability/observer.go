package observability

import "time"

// OperationContext carries the details of a single client operation
// reported to an Observer.
type OperationContext struct {
	// Component identifies the client package reporting the operation,
	// e.g. "redis".
	Component string

	// Operation is the operation name, e.g. "get", "set", "publish".
	Operation string

	// Resource is the primary resource the operation acted on,
	// e.g. a key or channel name.
	Resource string

	// SubResource is additional context such as a field name.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	Error error

	// Size is the number of bytes or items returned/affected.
	Size int64

	// Metadata holds operation-specific details, e.g. ttl or key_count.
	Metadata map[string]interface{}
}

// Observer receives events about client operations.
// Implementations must be safe for concurrent use; they are called
// inline on the operation path and should return quickly.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
