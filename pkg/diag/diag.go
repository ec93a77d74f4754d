// Package diag defines the warnings produced while extracting documentation.
// Warnings are never fatal: the offending construct is skipped and
// processing continues.
package diag

import (
	"fmt"
	"sync"
)

// Code is a stable warning identifier.
type Code int

// Warning codes. The numbering is stable; 8 and 13 are unused.
const (
	NoModule      Code = 1
	Duplicate     Code = 2
	NoFunction    Code = 3
	BadDocString  Code = 4
	Syntax        Code = 5
	EmptyExample  Code = 6
	NotFound      Code = 7
	CreateFolder  Code = 9
	CreateFile    Code = 10
	NothingToDo   Code = 11
	ImageNotFound Code = 12
	ReadFile      Code = 14
)

// String returns the code in its printed form, e.g. "W002".
func (c Code) String() string {
	return fmt.Sprintf("W%03d", int(c))
}

// Message returns the fixed text describing the code.
func (c Code) Message() string {
	switch c {
	case NoModule:
		return "no module or class defined"
	case Duplicate:
		return "duplicate class, module, markdown document or mainpage: "
	case NoFunction:
		return "function does not follow comment"
	case BadDocString:
		return "function does not precede doc string"
	case Syntax:
		return "invalid syntax. Try gomdoc guide"
	case EmptyExample:
		return "empty content in example: indent by 4 spaces"
	case NotFound:
		return "file or folder doesn't exist: "
	case CreateFolder:
		return "couldn't create folder: "
	case CreateFile:
		return "couldn't create file: "
	case NothingToDo:
		return "no objects or documents defined. Nothing to do"
	case ImageNotFound:
		return "image file not found: "
	case ReadFile:
		return "could not read possibly empty file: "
	default:
		return "unknown warning"
	}
}

// Warning is a single diagnostic.
type Warning struct {
	Code  Code   `json:"code"`
	Extra string `json:"extra,omitempty"`

	// Path, Line and Column locate the warning when a position is known.
	// Line is zero otherwise.
	Path   string `json:"path,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`

	// Source is the text of the offending line.
	Source string `json:"source,omitempty"`
}

// HasPosition reports whether the warning carries a file position.
func (w Warning) HasPosition() bool {
	return w.Path != "" && w.Line > 0
}

// Text returns the code and message without position, e.g.
// "W012 - image file not found: lake.png".
func (w Warning) Text() string {
	return w.Code.String() + " - " + w.Code.Message() + w.Extra
}

// String formats the warning as "path:line:col: text" or "Warning: text".
func (w Warning) String() string {
	if w.HasPosition() {
		return fmt.Sprintf("%s:%d:%d: %s", w.Path, w.Line, w.Column, w.Text())
	}
	return "Warning: " + w.Text()
}

// Handler is called for every warning as it is reported.
type Handler func(Warning)

// Sink collects warnings in the order they are reported.
type Sink struct {
	mu       sync.Mutex
	warnings []Warning
	handler  Handler
}

// NewSink returns a Sink that forwards each warning to handler.
// handler may be nil.
func NewSink(handler Handler) *Sink {
	return &Sink{handler: handler}
}

// Report records w.
func (s *Sink) Report(w Warning) {
	s.mu.Lock()
	s.warnings = append(s.warnings, w)
	handler := s.handler
	s.mu.Unlock()

	if handler != nil {
		handler(w)
	}
}

// Warn records a warning without a position.
func (s *Sink) Warn(code Code, extra string) {
	s.Report(Warning{Code: code, Extra: extra})
}

// Warnings returns a copy of the recorded warnings.
func (s *Sink) Warnings() []Warning {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Count returns the number of recorded warnings.
func (s *Sink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.warnings)
}

// CountByCode returns the number of warnings recorded for code.
func (s *Sink) CountByCode(code Code) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, w := range s.warnings {
		if w.Code == code {
			n++
		}
	}
	return n
}
