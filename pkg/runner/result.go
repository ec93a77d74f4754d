package runner

import (
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
)

// Result is the outcome of a run.
type Result struct {
	// Doc is the assembled document. It is complete even when warnings
	// were reported.
	Doc *docmodel.Document

	// Files lists the inputs dispatched to a parser, in processing order.
	Files []string

	// Warnings holds every warning in the order it was reported.
	Warnings []diag.Warning

	// Stats is computed once after all inputs were consumed.
	Stats docmodel.Stats
}

// HasWarnings reports whether any warning was reported.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return len(r.Warnings) > 0
}

// NothingToDo reports whether the run produced no object to render.
func (r *Result) NothingToDo() bool {
	if r == nil || r.Doc == nil {
		return true
	}
	return r.Doc.ObjectCount() == 0
}
