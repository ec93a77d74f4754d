package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdoc/internal/ui/pretty"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	if r.opts.Verbose >= VerboseWarnings {
		for _, w := range result.Warnings {
			w.Path = relativePath(r.opts.WorkingDir, w.Path)
			fmt.Fprint(r.bw, r.styles.FormatWarning(w, r.opts.ShowContext))
		}
	}

	switch {
	case r.opts.Verbose >= VerboseStats:
		fmt.Fprint(r.bw, r.styles.FormatStats(result.Stats))
	case r.opts.Verbose == VerboseWarnings:
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return len(result.Warnings), nil
}
