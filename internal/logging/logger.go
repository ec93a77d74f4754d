// Package logging provides a structured logging wrapper around charmbracelet/log.
//
// Loggers write to stderr so that reports and rendered previews on stdout
// stay machine readable. Extraction and rendering log at debug level only;
// problems in the inputs are warnings, not log records.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable that sets the initial level of
// the default logger.
const EnvLevel = "GOMDOC_LOG_LEVEL"

//nolint:gochecknoglobals // Process-wide default logger.
var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

type loggerKey struct{}

// ParseLevel maps a level name to a log level. "warning" is accepted for
// "warn"; unknown names give info.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		name = "warn"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New creates a stderr logger at level.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w at level.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// Default returns the process-wide logger, creating it at the level given by
// GOMDOC_LOG_LEVEL on first use.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		defaultLogger = New(os.Getenv(EnvLevel))
	}
	return defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// ForFile returns the logger of ctx with the input path attached to every
// record.
func ForFile(ctx context.Context, path string) *log.Logger {
	return FromContext(ctx).With(FieldPath, path)
}
