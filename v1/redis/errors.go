package redis

import "errors"

// Common Redis errors
var (
	// ErrConfig is returned when the connection configuration is absent
	// or malformed. Configuration errors are fatal and never retried.
	ErrConfig = errors.New("redis: invalid configuration")

	// ErrConnection is returned when the connection to the server cannot
	// be established or probed after the configured retries, or when an
	// established connection fails at the transport level.
	ErrConnection = errors.New("redis: connection failed")
)

// IsConfigError checks if the error is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

// IsConnectionError checks if the error is a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}
