package extract

import (
	"strings"

	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// parseHeader splits the buffer into sections and dispatches each one.
// Lines outside any section that carry text make the header an implicit
// function comment.
func (e *Extractor) parseHeader() {
	text := e.state.text
	e.doc.DocComments++
	e.state.rejected = false

	foundText := false
	for off := 0; off < len(text); {
		line := markdown.Line(text, off)
		kw, arg, ok := keyword.Match(line)

		switch {
		case ok && kw.IsMembership():
			e.parseInGroup(off)
			off = markdown.NextLine(text, off)

		case ok && kw.IsSection():
			foundText = false
			end := e.sectionEnd(markdown.NextLine(text, off))
			e.logger.Debug("section", "keyword", kw, "line", strings.TrimSpace(line))

			switch kw {
			case keyword.Class:
				e.parseModule(off, end, true)
			case keyword.Defgroup:
				e.parseModule(off, end, false)
			case keyword.Fn:
				if e.state.hdr != nil {
					e.parseFunction(off, end, strings.TrimSpace(line[arg:]), true)
				}
			case keyword.Mainpage:
				e.parseMainPage(off, end)
			default:
			}
			off = end

		default:
			if next := markdown.CodeBlockEnd(text, off, len(text)); next > off {
				foundText = true
				off = next
				continue
			}
			if !markdown.IsBlank(line) {
				foundText = true
			}
			off = markdown.NextLine(text, off)
		}
	}

	if foundText && e.state.hdr != nil {
		e.parseFunction(0, len(text), "", false)
	}
}

// sectionEnd returns the offset of the next section keyword line at or after
// off, ignoring code blocks, or the end of the buffer.
func (e *Extractor) sectionEnd(off int) int {
	text := e.state.text
	for off < len(text) {
		if next := markdown.CodeBlockEnd(text, off, len(text)); next > off {
			off = next
			continue
		}
		if kw, _, ok := keyword.Match(markdown.Line(text, off)); ok && kw.IsSection() {
			return off
		}
		off = markdown.NextLine(text, off)
	}
	return len(text)
}
