package logger

// Level represents the minimum severity a log entry needs to be emitted.
type Level string

// Supported log levels, from most to least verbose.
const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config defines the configuration for the logger.
type Config struct {
	// Level is the minimum log level to emit.
	// Default: Info
	Level Level

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// Console switches the output encoding from JSON to a human-readable
	// console format. Intended for local development only.
	Console bool
}
