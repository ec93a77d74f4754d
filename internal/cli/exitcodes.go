package cli

import (
	"errors"

	"github.com/yaklabco/gomdoc/pkg/runner"
)

// Exit codes for gomdoc.
const (
	// ExitSuccess indicates a run without warnings.
	ExitSuccess = 0

	// ExitWarnings indicates a run that reported at least one warning, or
	// a command that failed.
	ExitWarnings = 1
)

var (
	// ErrWarningsFound is returned when a run reported warnings. The output
	// was still written.
	ErrWarningsFound = errors.New("warnings found")

	// ErrNoInputs is returned when no input file or folder was given.
	ErrNoInputs = errors.New("no input files or folders")
)

// ExitCodeFromResult determines the exit code of a run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasWarnings() {
		return ExitWarnings
	}
	return ExitSuccess
}
