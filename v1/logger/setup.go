package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
// It provides a small structured-logging surface shared by the service
// client packages, which accept it through their own Logger interfaces.
type Logger struct {
	// Zap is the underlying zap.Logger instance.
	// Exposed for direct access to Zap-specific functionality when
	// needed; most logging should go through the wrapper methods.
	Zap *zap.Logger
}

// NewLoggerClient initializes and returns a new logger based on configuration.
//
// The logger is configured with:
//   - JSON encoding (or console encoding when cfg.Console is set)
//   - ISO8601 timestamp format
//   - Capital letter level encoding (e.g. "INFO", "ERROR")
//   - Process ID and service name as default fields
//   - Caller information included in log entries
//   - Output directed to stderr
//
// If initialization fails the function calls log.Fatal, since a process
// without a logger cannot report anything else either.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	encoding := "json"
	if cfg.Console {
		encoding = "console"
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(logLevel),
		Encoding:      encoding,
		EncoderConfig: encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zapLogger, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{Zap: zapLogger}
}

// Debug logs a message at debug level with optional structured fields.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, toZapFields(err, fields)...)
}

// Info logs a message at info level with optional structured fields.
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, toZapFields(err, fields)...)
}

// Warn logs a message at warning level with optional structured fields.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, toZapFields(err, fields)...)
}

// Error logs a message at error level with optional structured fields.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, toZapFields(err, fields)...)
}

// toZapFields flattens the error and the optional field maps into zap fields.
func toZapFields(err error, fieldMaps []map[string]interface{}) []zap.Field {
	var out []zap.Field
	if err != nil {
		out = append(out, zap.Error(err))
	}
	for _, m := range fieldMaps {
		for k, v := range m {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
