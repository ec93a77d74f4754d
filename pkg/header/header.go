// Package header finds doc comment headers in source files and strips them to
// plain Markdown.
//
// Three forms are recognised, each starting at the first non-blank column of
// a line:
//
//	/*! ... */        block comment, optional " * " gutter
//	/// or //!        run of consecutive line comments
//	"""! or '''!      doc string that follows the code it documents
package header

import (
	"sort"
	"strings"

	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// Type tells where the documented code sits relative to the header.
type Type int

const (
	// Comment headers precede the code they document.
	Comment Type = iota
	// DocString headers follow the code they document.
	DocString
)

// Header is one doc comment found in a file.
type Header struct {
	Type Type

	// RawStart is the offset of the line holding the opening marker and
	// RawEnd the offset of the line after the closing marker.
	RawStart int
	RawEnd   int

	// Content is the stripped header. Every line ends in '\n'.
	Content string

	lines []lineMap
}

// lineMap ties a content line to where its text sits in the file.
type lineMap struct {
	content int
	file    int
}

// FileOffset maps an offset in Content back to an offset in the file.
func (h *Header) FileOffset(contentOff int) int {
	if len(h.lines) == 0 {
		return h.RawStart
	}
	idx := sort.Search(len(h.lines), func(i int) bool {
		return h.lines[i].content > contentOff
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return h.lines[idx].file + contentOff - h.lines[idx].content
}

// rawLine is a piece of a file line kept as header content.
type rawLine struct {
	text string
	file int
}

// Find returns the first header that opens at or after from.
func Find(src string, from int) (*Header, bool) {
	for off := markdown.LineStart(src, from); off < len(src); off = markdown.NextLine(src, off) {
		line := markdown.Line(src, off)
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		body := line[indent:]

		switch {
		case strings.HasPrefix(body, "/*!"):
			return blockComment(src, off, off+indent), true
		case strings.HasPrefix(body, "//!"), strings.HasPrefix(body, "///") && !strings.HasPrefix(body, "////"):
			return lineComments(src, off, body[:3]), true
		case strings.HasPrefix(body, `"""!`), strings.HasPrefix(body, `'''!`):
			return docString(src, off, off+indent, body[:3]), true
		}
	}
	return nil, false
}

// FindAll returns every header in src in file order.
func FindAll(src string) []*Header {
	var headers []*Header
	for from := 0; from < len(src); {
		hdr, ok := Find(src, from)
		if !ok {
			break
		}
		headers = append(headers, hdr)
		if hdr.RawEnd <= from {
			break
		}
		from = hdr.RawEnd
	}
	return headers
}

func blockComment(src string, lineOff, markerOff int) *Header {
	var raw []rawLine

	pos := markerOff + len("/*!")
	for pos < len(src) && (src[pos] == '-' || src[pos] == '*') {
		if strings.HasPrefix(src[pos:], "*/") {
			break
		}
		pos++
	}

	end := len(src)
	closeAt := strings.Index(src[pos:], "*/")
	if closeAt >= 0 {
		end = pos + closeAt
	}

	for pos <= end {
		lineEnd := strings.IndexByte(src[pos:end], '\n')
		last := lineEnd < 0
		if last {
			lineEnd = end - pos
		}
		text := src[pos : pos+lineEnd]
		if last {
			text = strings.TrimRight(text, "-* \t")
		}
		raw = append(raw, rawLine{text: text, file: pos})
		if last {
			break
		}
		pos += lineEnd + 1
	}

	rawEnd := len(src)
	if closeAt >= 0 {
		rawEnd = markdown.NextLine(src, end)
	}

	// The first entry is what follows the opening marker on its own line.
	if len(raw) > 0 && markdown.IsBlank(raw[0].text) {
		raw = raw[1:]
	}
	stripGutter(raw)

	return build(Comment, lineOff, rawEnd, raw)
}

// stripGutter removes a leading "*" column when every non-blank line has one.
func stripGutter(raw []rawLine) {
	seen := false
	for _, line := range raw {
		if markdown.IsBlank(line.text) {
			continue
		}
		trimmed := strings.TrimLeft(line.text, " \t")
		if !strings.HasPrefix(trimmed, "*") {
			return
		}
		rest := trimmed[1:]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\r' {
			return
		}
		seen = true
	}
	if !seen {
		return
	}
	for i, line := range raw {
		if markdown.IsBlank(line.text) {
			continue
		}
		cut := strings.IndexByte(line.text, '*') + 1
		raw[i] = rawLine{text: line.text[cut:], file: line.file + cut}
	}
}

func lineComments(src string, lineOff int, marker string) *Header {
	var raw []rawLine

	off := lineOff
	for ; off < len(src); off = markdown.NextLine(src, off) {
		line := markdown.Line(src, off)
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if !strings.HasPrefix(line[indent:], marker) {
			break
		}
		if marker == "///" && strings.HasPrefix(line[indent:], "////") {
			break
		}
		cut := indent + len(marker)
		raw = append(raw, rawLine{text: line[cut:], file: off + cut})
	}

	return build(Comment, lineOff, off, raw)
}

func docString(src string, lineOff, markerOff int, quote string) *Header {
	var raw []rawLine

	pos := markerOff + len(quote) + 1
	end := len(src)
	closeAt := strings.Index(src[pos:], quote)
	if closeAt >= 0 {
		end = pos + closeAt
	}

	for pos <= end {
		lineEnd := strings.IndexByte(src[pos:end], '\n')
		last := lineEnd < 0
		if last {
			lineEnd = end - pos
		}
		raw = append(raw, rawLine{text: src[pos : pos+lineEnd], file: pos})
		if last {
			break
		}
		pos += lineEnd + 1
	}

	rawEnd := len(src)
	if closeAt >= 0 {
		rawEnd = markdown.NextLine(src, end)
	}

	if len(raw) > 0 && markdown.IsBlank(raw[0].text) {
		raw = raw[1:]
	}

	return build(DocString, lineOff, rawEnd, raw)
}

// build de-indents raw by its common leading whitespace and assembles the
// header content.
func build(typ Type, rawStart, rawEnd int, raw []rawLine) *Header {
	for len(raw) > 0 && markdown.IsBlank(raw[len(raw)-1].text) {
		raw = raw[:len(raw)-1]
	}

	common := -1
	for _, line := range raw {
		if markdown.IsBlank(line.text) {
			continue
		}
		n := len(line.text) - len(strings.TrimLeft(line.text, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}
	if common < 0 {
		common = 0
	}

	hdr := &Header{Type: typ, RawStart: rawStart, RawEnd: rawEnd}

	var builder strings.Builder
	for _, line := range raw {
		text, file := line.text, line.file
		if markdown.IsBlank(text) {
			text = ""
		} else {
			text = text[common:]
			file += common
		}
		hdr.lines = append(hdr.lines, lineMap{content: builder.Len(), file: file})
		builder.WriteString(text)
		builder.WriteByte('\n')
	}
	hdr.Content = builder.String()

	return hdr
}
