// Package log provides a structured logging interface for sparsego.
//
// The Logger interface is a small, slog-compatible surface so callers can plug
// in log/slog, zerolog, or the in-memory TestLogger. The sparse and libsvm
// packages obtain their logger through GetLogger and only emit Debug records
// for shape changes and I/O summaries; warnings about data go through
// pkg/errors.Warn.
//
// Example usage:
//
//	log.SetLoggerProvider(log.NewZerologProvider(os.Stderr, log.LevelDebug))
//	logger := log.GetLogger().With(log.ComponentKey, "libsvm")
//	logger.Debug("decoded",
//	    log.RowsKey, 100,
//	    log.ColsKey, 50,
//	)

package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. The With method returns a
// logger that prepends the given fields to every subsequent record.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	//
	// Example:
	//   logger.Debug("transposed",
	//       log.RowsKey, 50,
	//       log.NNZKey, 512,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, it is logged under the "error" key and
	// its stack trace (cockroachdb/errors) may be attached.
	//
	// Example:
	//   logger.Error("decode failed",
	//       err,
	//       log.SourceKey, "train.svm",
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given level.
	// Use it to skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
