package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/yaklabco/gomdoc/pkg/docmodel"
)

// DefaultPreviewWidth is the word wrap used when the terminal width is unknown.
const DefaultPreviewWidth = 80

// PreviewOptions controls terminal rendering.
type PreviewOptions struct {
	// Width is the word wrap column. Zero means DefaultPreviewWidth.
	Width int

	// Style is a glamour standard style such as "dark", "light" or "notty".
	// Empty picks one from the terminal background.
	Style string
}

// SectionMarkdown returns the Markdown for the mainpage, module, class or
// document titled title, matched ignoring ASCII case.
func SectionMarkdown(doc *docmodel.Document, title string) (string, bool) {
	var b strings.Builder

	if main := doc.MainPage; main != nil && docmodel.EqualFold(main.Title, title) {
		writeMainPage(&b, main, doc.StyleFor(main).Version)
		return b.String(), true
	}
	if m := docmodel.FindModule(doc.Modules, title); m != nil {
		writeModule(&b, m, "", 0)
		return b.String(), true
	}
	if c := docmodel.FindModule(doc.Classes, title); c != nil {
		writeModule(&b, c, "Class ", 0)
		return b.String(), true
	}
	for _, md := range doc.Documents {
		if docmodel.EqualFold(md.Title, title) {
			writeDocument(&b, md, 0, false)
			return b.String(), true
		}
	}
	return "", false
}

// Preview renders Markdown for display in a terminal.
func Preview(md string, opts PreviewOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultPreviewWidth
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create preview renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
