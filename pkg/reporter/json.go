package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version  string         `json:"version"`
	Files    []string       `json:"files"`
	Warnings []JSONWarning  `json:"warnings"`
	Stats    docmodel.Stats `json:"stats"`
	Objects  int            `json:"objects"`
}

// JSONWarning represents a single warning.
type JSONWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Extra   string `json:"extra,omitempty"`
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return len(output.Warnings), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:  "1.0.0",
		Files:    make([]string, 0),
		Warnings: make([]JSONWarning, 0),
	}

	if result == nil {
		return output
	}

	for _, path := range result.Files {
		output.Files = append(output.Files, relativePath(r.opts.WorkingDir, path))
	}
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, r.warning(w))
	}
	output.Stats = result.Stats
	if result.Doc != nil {
		output.Objects = result.Doc.ObjectCount()
	}

	return output
}

func (r *JSONReporter) warning(w diag.Warning) JSONWarning {
	return JSONWarning{
		Code:    w.Code.String(),
		Message: w.Code.Message(),
		Extra:   w.Extra,
		Path:    relativePath(r.opts.WorkingDir, w.Path),
		Line:    w.Line,
		Column:  w.Column,
	}
}

// relativePath makes path relative to workDir when both are set and the
// result stays below workDir.
func relativePath(workDir, path string) string {
	if workDir == "" || path == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
