package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Verbosity levels.
const (
	VerboseSilent   = 0
	VerboseWarnings = 1
	VerboseStats    = 2
)

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext prints the offending source line under positioned warnings.
	ShowContext bool

	// Verbose selects what the text format prints: nothing, warnings and a
	// one line summary, or warnings and the full statistics block.
	// The JSON format always carries everything.
	Verbose int

	// Compact uses minified JSON.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		Verbose:     VerboseStats,
	}
}
