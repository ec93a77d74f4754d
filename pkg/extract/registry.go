package extract

import (
	"strings"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// indexTitle is the name of the generated table of contents page.
const indexTitle = "index"

// mainPageTitle names the main page in duplicate warnings.
const mainPageTitle = "mainpage"

// parseModule handles the @defgroup or @class section [start, end).
//
// A known module without subtitle or text, such as a stub left by @ingroup
// or @inclass or a bare earlier @defgroup, is filled in. One that already
// carries a subtitle or text is reported as a duplicate and becomes the
// current module without being changed.
func (e *Extractor) parseModule(start, end int, class bool) {
	text := e.state.text
	line := markdown.Line(text, start)
	_, arg, _ := keyword.Match(line)

	name, subtitle := keyword.NameDescription(line[arg:])
	if !keyword.IsCName(name) {
		e.warnAt(diag.Syntax, "", start+arg)
		return
	}

	m := docmodel.FindModule(e.doc.Collection(class), name)
	switch {
	case m != nil && m.HasContent():
		e.warnAt(diag.Duplicate, name, start+arg)
		e.state.current = m
		return

	case m == nil:
		if e.dupCheck(name, start+arg) {
			e.state.current = nil
			return
		}
		m = &docmodel.Module{Section: docmodel.Section{Title: name}}
		e.doc.AddModule(m, class)

	default:
	}

	m.Stub = false
	m.Subtitle = subtitle
	e.state.current = m
	e.logger.Debug("module", logging.FieldTitle, name, "class", class)

	m.Text = e.processText(&m.Section, markdown.NextLine(text, start), end)
}

// parseInGroup handles the @ingroup or @inclass line at off. The named module
// becomes current and is created as a stub when it is not yet known.
func (e *Extractor) parseInGroup(off int) {
	line := markdown.Line(e.state.text, off)
	kw, arg, _ := keyword.Match(line)
	class := kw == keyword.InClass

	name, _ := keyword.NameDescription(line[arg:])
	if !keyword.IsCName(name) {
		e.warnAt(diag.Syntax, "", off+arg)
		return
	}

	m := docmodel.FindModule(e.doc.Collection(class), name)
	if m == nil {
		if e.dupCheck(name, off+arg) {
			e.state.current = nil
			e.state.rejected = true
			return
		}
		m = &docmodel.Module{Section: docmodel.Section{Title: name}, Stub: true}
		e.doc.AddModule(m, class)
		e.logger.Debug("stub", logging.FieldTitle, name, "class", class)
	}
	e.state.current = m
}

// parseMainPage handles the @mainpage section [start, end). Style keywords
// directly after the title line are applied first. A single line followed by
// a blank line becomes the subtitle.
func (e *Extractor) parseMainPage(start, end int) {
	text := e.state.text
	line := markdown.Line(text, start)
	_, arg, _ := keyword.Match(line)

	if e.doc.MainPage != nil {
		e.warnAt(diag.Duplicate, mainPageTitle, start)
		return
	}

	title := strings.TrimSpace(line[arg:])
	if title == "" {
		e.warnAt(diag.Syntax, "", start+arg)
		return
	}

	page := &docmodel.Section{Title: title}
	e.doc.MainPage = page

	pos := markdown.NextLine(text, start)
	for pos < end {
		line = markdown.Line(text, pos)
		if kw, kwArg, ok := keyword.Match(line); ok && kw.IsStyle() {
			e.applyStyle(page, kw, pos+kwArg)
		} else if !markdown.IsBlank(line) {
			break
		}
		pos = markdown.NextLine(text, pos)
	}

	if pos < end {
		line = markdown.Line(text, pos)
		_, _, isKeyword := keyword.Match(line)
		if !isKeyword && !markdown.IsCodeBlockStart(line) {
			next := markdown.NextLine(text, pos)
			if next >= end || markdown.IsBlank(markdown.Line(text, next)) {
				page.Subtitle = strings.TrimSpace(line)
				pos = next
			}
		}
	}
	e.logger.Debug("mainpage", logging.FieldTitle, title)

	page.Text = e.processText(page, pos, end)
}

// dupCheck reports whether title collides with a module, class or document
// title, or with the index page when one will be generated. A collision is
// warned at off, or without a position when off is negative.
func (e *Extractor) dupCheck(title string, off int) bool {
	name := docmodel.StripExt(title)
	doc := e.doc

	dup := docmodel.FindModule(doc.Modules, name) != nil ||
		docmodel.FindModule(doc.Classes, name) != nil
	for _, md := range doc.Documents {
		if dup {
			break
		}
		dup = docmodel.EqualFold(docmodel.StripExt(md.Title), name)
	}
	if !dup && (doc.MainPage != nil || doc.PageCount() > 1) {
		dup = docmodel.EqualFold(name, indexTitle)
	}
	if !dup {
		return false
	}

	if off < 0 {
		e.warn(diag.Duplicate, title)
	} else {
		e.warnAt(diag.Duplicate, title, off)
	}
	return true
}
