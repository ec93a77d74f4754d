// Package extract turns doc comment headers and Markdown files into the
// document model.
//
// An Extractor is fed one file at a time. Source files are scanned for doc
// comment headers; Markdown files become standalone documents unless their
// first line opens a section. Problems are reported as warnings on the sink
// and the offending construct is skipped.
package extract

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/header"
	"github.com/yaklabco/gomdoc/pkg/langdetect"
	"github.com/yaklabco/gomdoc/pkg/source"
)

// Extractor assembles a Document from input files.
type Extractor struct {
	doc    *docmodel.Document
	sink   *diag.Sink
	logger *log.Logger
	state  parseState
}

// parseState is the context of the file being parsed. It is reset per file.
type parseState struct {
	file *source.File
	lang string

	// text is the buffer being parsed: a stripped header, or the whole file
	// when hdr is nil.
	text string
	hdr  *header.Header

	// current receives functions. It is set by @defgroup, @class, @ingroup
	// and @inclass.
	current *docmodel.Module

	// rejected is set when a membership line of the header being parsed
	// named a duplicate. The function it would have received is dropped
	// without a second warning.
	rejected bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger traces parsing at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Extractor that adds to doc and reports to sink.
func New(doc *docmodel.Document, sink *diag.Sink, opts ...Option) *Extractor {
	e := &Extractor{
		doc:    doc,
		sink:   sink,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the document being assembled.
func (e *Extractor) Document() *docmodel.Document {
	return e.doc
}

// ParseSource extracts every doc comment header of a source file.
func (e *Extractor) ParseSource(path, content string) {
	e.reset(path, content)
	e.logger.Debug("parsing source", logging.FieldPath, path, "language", e.state.lang)

	for from := 0; from < len(content); {
		hdr, ok := header.Find(content, from)
		if !ok {
			break
		}
		if hdr.Content != "" {
			e.state.hdr = hdr
			e.state.text = hdr.Content
			e.parseHeader()
		}
		if hdr.RawEnd <= from {
			break
		}
		from = hdr.RawEnd
	}

	e.state.hdr = nil
	e.state.text = ""
}

// ParseMarkdown extracts a Markdown file.
func (e *Extractor) ParseMarkdown(path, content string) {
	e.reset(path, content)
	e.state.text = content
	e.logger.Debug("parsing markdown", logging.FieldPath, path)

	e.parseMarkdown(path)
}

func (e *Extractor) reset(path, content string) {
	e.state = parseState{
		file: source.NewFile(path, content),
		lang: langdetect.ForPath(path),
	}
}

// warnAt reports a warning at offset off of the buffer being parsed.
func (e *Extractor) warnAt(code diag.Code, extra string, off int) {
	file := e.state.file
	fileOff := off
	if e.state.hdr != nil {
		fileOff = e.state.hdr.FileOffset(off)
	}
	line, col := file.LineAt(fileOff)

	e.sink.Report(diag.Warning{
		Code:   code,
		Extra:  extra,
		Path:   file.Path,
		Line:   line,
		Column: col,
		Source: file.LineContent(line),
	})
}

// warn reports a warning that has no position.
func (e *Extractor) warn(code diag.Code, extra string) {
	w := diag.Warning{Code: code, Extra: extra}
	if e.state.file != nil {
		w.Path = e.state.file.Path
	}
	e.sink.Report(w)
}
