// Package render writes a document model to disk, either as one combined
// Markdown file or as a static HTML site styled with W3.CSS.
package render

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/fsutil"
)

// Embedded assets.
var (
	//go:embed assets/w3.css
	w3CSS []byte

	//go:embed assets/gomdoc_home.png
	homeLogo []byte
)

const (
	w3CSSName    = "w3.css"
	w3CSSCDN     = "https://www.w3schools.com/w3css/4/w3.css"
	homeLogoName = "gomdoc_home.png"
	indexName    = "index.html"
)

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Options controls how a document is written.
type Options struct {
	// Output is the folder to write to. It is created when missing.
	Output string

	// Name is the base name of the Markdown file. Empty means the base name
	// of Output.
	Name string

	// Format selects the renderer. Empty means HTML.
	Format config.OutputFormat

	// LocalCSS links w3.css from the output folder and writes it there.
	LocalCSS bool

	// NoIndex suppresses index.html.
	NoIndex bool

	// Jobs bounds the number of pages written in parallel. Zero or less
	// means GOMAXPROCS.
	Jobs int

	// Sink receives W009 and W010 warnings. May be nil.
	Sink *diag.Sink

	// Confirm is asked before an existing file is overwritten. Nil means
	// always overwrite.
	Confirm func(path string) bool
}

// Result lists what was written.
type Result struct {
	// Written holds every file written, in a stable order.
	Written []string

	// Skipped holds files left alone because Confirm declined.
	Skipped []string

	// Copied holds the image files copied into the output folder.
	Copied []string
}

// Write renders doc in the selected format. Files that cannot be created
// are reported as warnings; an error is returned only on cancellation or
// for an unknown format.
func Write(ctx context.Context, doc *docmodel.Document, opts Options) (*Result, error) {
	switch opts.Format {
	case config.FormatHTML, "":
		return WriteHTML(ctx, doc, opts)
	case config.FormatMarkdown:
		return WriteMarkdown(ctx, doc, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// writer tracks files for a single Write call.
type writer struct {
	opts Options

	mu     sync.Mutex
	result Result
	failed bool
}

func newWriter(opts Options) *writer {
	return &writer{opts: opts}
}

func (w *writer) warn(code diag.Code, extra string) {
	if w.opts.Sink != nil {
		w.opts.Sink.Warn(code, extra)
	}
}

// prepare creates the output folder.
func (w *writer) prepare() bool {
	if err := fsutil.EnsureDir(w.opts.Output); err != nil {
		w.warn(diag.CreateFolder, w.opts.Output)
		return false
	}
	return true
}

// claim reports whether path may be written, asking Confirm when the file
// already exists. It must not be called concurrently.
func (w *writer) claim(path string) bool {
	if w.opts.Confirm == nil {
		return true
	}
	if _, err := os.Stat(path); err != nil {
		return true
	}
	if w.opts.Confirm(path) {
		return true
	}
	w.mu.Lock()
	w.result.Skipped = append(w.result.Skipped, path)
	w.mu.Unlock()
	return false
}

// write stores content at path, reporting W010 on failure.
func (w *writer) write(ctx context.Context, path string, content []byte) error {
	if err := fsutil.WriteAtomic(ctx, path, content, fsutil.DefaultFileMode); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("write %s: %w", path, ctx.Err())
		}
		logging.FromContext(ctx).Debug("write failed", logging.FieldPath, path, logging.FieldError, err)
		w.warn(diag.CreateFile, path)
		w.mu.Lock()
		w.failed = true
		w.mu.Unlock()
		return nil
	}

	w.mu.Lock()
	w.result.Written = append(w.result.Written, path)
	w.mu.Unlock()
	return nil
}

// copyImages copies every referenced input image into the output folder.
// Nothing is copied after a failed write.
func (w *writer) copyImages(ctx context.Context, doc *docmodel.Document) error {
	if w.failed {
		return nil
	}
	for _, img := range doc.ImageFiles {
		if !img.Referenced {
			continue
		}
		if ctx.Err() != nil {
			return fmt.Errorf("copy images: %w", ctx.Err())
		}

		dst := filepath.Join(w.opts.Output, filepath.Base(img.Path))
		if fsutil.SameFile(img.Path, dst) {
			continue
		}
		if _, err := fsutil.CopyFile(ctx, img.Path, dst); err != nil {
			logging.FromContext(ctx).Debug("copy failed", logging.FieldPath, img.Path, logging.FieldError, err)
			w.warn(diag.CreateFile, dst)
			continue
		}
		w.result.Copied = append(w.result.Copied, dst)
	}
	return nil
}

// projectName returns the Markdown file base name.
func projectName(opts Options) string {
	if opts.Name != "" {
		return opts.Name
	}
	abs, err := filepath.Abs(opts.Output)
	if err != nil {
		abs = opts.Output
	}
	return filepath.Base(abs)
}
