package extract

import (
	"strings"

	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// examplePrefix starts every example title.
const examplePrefix = "Example: "

// processText turns the region [start, end) of the buffer into section text.
//
// @example and style keywords are applied to section first. Keyword lines
// other than @example and unknown keywords are then dropped, every remaining
// text line gets a hard break pad, and surrounding blank lines are trimmed.
// Code blocks are copied untouched. Images are recorded when the result is
// not empty.
func (e *Extractor) processText(section *docmodel.Section, start, end int) string {
	text := e.state.text
	e.keywordPass(section, start, end)

	var lines []string
	for off := start; off < end; {
		if next := markdown.CodeBlockEnd(text, off, end); next > off {
			for pos := off; pos < next; pos = markdown.NextLine(text, pos) {
				lines = append(lines, markdown.Line(text, pos))
			}
			off = next
			continue
		}

		line := markdown.Line(text, off)
		off = markdown.NextLine(text, off)

		if kw, _, ok := keyword.Match(line); ok && kw != keyword.Example && kw != keyword.Unknown {
			continue
		}
		lines = append(lines, markdown.PadLine(line))
	}

	out := markdown.TrimBlankLines(lines)
	if out != "" {
		e.scanImages(start, end)
	}
	return out
}

// keywordPass applies the @example and style keywords found in [start, end)
// to section.
func (e *Extractor) keywordPass(section *docmodel.Section, start, end int) {
	text := e.state.text
	for off := start; off < end; {
		if next := markdown.CodeBlockEnd(text, off, end); next > off {
			off = next
			continue
		}

		kw, arg, ok := keyword.Match(markdown.Line(text, off))
		if ok {
			switch {
			case kw == keyword.Example:
				if next, added := e.parseExample(section, off, end); added {
					off = next
					continue
				}
			case kw.IsStyle():
				e.applyStyle(section, kw, off+arg)
			}
		}
		off = markdown.NextLine(text, off)
	}
}

// parseExample registers the @example at off with section. It returns the
// offset after the example's code block and whether an example was added.
func (e *Extractor) parseExample(section *docmodel.Section, off, end int) (int, bool) {
	text := e.state.text
	line := markdown.Line(text, off)
	_, arg, _ := keyword.Match(line)

	title := strings.TrimSpace(line[arg:])
	if title == "" {
		e.warnAt(diag.Syntax, "", off+arg)
		return off, false
	}

	pos := markdown.SkipBlankLines(text, markdown.NextLine(text, off), end)
	next, content := markdown.CodeBlock(text, pos, end)
	if !content {
		e.warnAt(diag.EmptyExample, "", pos)
	}

	section.AddExample(examplePrefix + title)
	return next, true
}

// applyStyle applies a style keyword whose argument starts at argOff.
func (e *Extractor) applyStyle(section *docmodel.Section, kw keyword.Keyword, argOff int) {
	arg := strings.TrimSpace(markdown.Line(e.state.text, argOff))
	style := &section.Style

	switch kw {
	case keyword.Color:
		fields := keyword.Fields(arg)
		if len(fields) == 0 {
			return
		}
		style.BarColor = fields[0]
		if len(fields) > 1 {
			style.TitleColor = fields[1]
		}
		if len(fields) > 2 {
			style.HeadingColor = fields[2]
		} else {
			style.HeadingColor = docmodel.HeadingColorFor(fields[0])
		}

	case keyword.Font:
		fields := keyword.Fields(arg)
		if len(fields) > 0 {
			style.FontBody = fields[0]
		}
		if len(fields) > 1 {
			style.FontHeadings = fields[1]
		}

	case keyword.Logo:
		img, ok := markdown.ParseImage(arg)
		if !ok {
			e.warnAt(diag.Syntax, "", argOff)
			return
		}
		e.recordImage(img.Link, argOff)
		style.Logo = arg[:img.Len]

	case keyword.Version:
		style.Version = arg

	default:
	}
}

// scanImages records the images referenced in [start, end), skipping code
// blocks and keyword lines.
func (e *Extractor) scanImages(start, end int) {
	text := e.state.text
	for off := start; off < end; {
		if next := markdown.CodeBlockEnd(text, off, end); next > off {
			off = next
			continue
		}

		line := markdown.Line(text, off)
		if _, _, ok := keyword.Match(line); !ok {
			for _, img := range markdown.FindImages(line) {
				e.recordImage(img.Link, off+img.Offset)
			}
		}
		off = markdown.NextLine(text, off)
	}
}

// recordImage adds link to the image list. A bare file name must match one of
// the input images.
func (e *Extractor) recordImage(link string, off int) {
	ref := docmodel.ImageReference{Link: link}
	if ref.IsLocal() {
		if file := e.doc.FindImageFile(link); file != nil {
			file.Referenced = true
		} else {
			e.warnAt(diag.ImageNotFound, link, off)
		}
	}
	e.doc.Images = append(e.doc.Images, ref)
}
