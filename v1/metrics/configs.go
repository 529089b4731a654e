package metrics

// Default values for configuration
const (
	DefaultAddress = ":9090"
)

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP endpoint.
	// Default: ":9090"
	Address string

	// ServiceName is applied as a constant "service" label to every
	// metric emitted by this registry.
	ServiceName string

	// EnableDefaultCollectors registers the standard Go runtime,
	// process and build info collectors.
	EnableDefaultCollectors bool
}
