package extract

import (
	"path/filepath"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// parseMarkdown turns the buffer into a standalone document. A file whose
// first line opens a section is parsed like a doc comment header instead.
func (e *Extractor) parseMarkdown(path string) {
	text := e.state.text
	if kw, _, ok := keyword.Match(markdown.Line(text, 0)); ok && kw.IsSection() {
		e.parseHeader()
		return
	}

	title := docmodel.StripExt(filepath.Base(path))
	if e.dupCheck(title, -1) {
		return
	}

	md := &docmodel.MarkdownDocument{
		Section: docmodel.Section{Title: title, Text: text},
		Path:    path,
		Content: text,
	}

	var first string
	for _, h := range markdown.Outline([]byte(text)) {
		if first == "" {
			first = h.Text
		}
		if h.Level == 1 && md.Subtitle == "" {
			md.Subtitle = h.Text
		}
		if h.Level >= 2 && h.Text != "" {
			md.Headings = append(md.Headings, docmodel.MdHeading{Title: h.Text, Level: h.Level})
		}
	}
	if md.Subtitle == "" {
		md.Subtitle = first
	}

	e.doc.AddDocument(md)
	e.logger.Debug("document", logging.FieldTitle, title, "headings", len(md.Headings))

	e.keywordPass(&md.Section, 0, len(text))
	e.scanImages(0, len(text))
}
