package extract

import (
	"strings"

	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/header"
	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

// declKeywords precede a '(' without naming a function.
//
//nolint:gochecknoglobals // Read-only lookup table.
var declKeywords = map[string]bool{
	"func": true, "fn": true, "def": true, "function": true,
	"if": true, "while": true, "for": true, "switch": true,
	"return": true, "sizeof": true,
}

// parseFunction builds a function from the section [start, end). proto is the
// prototype given by @fn when explicit is set; otherwise the prototype is
// read from the code next to the header.
func (e *Extractor) parseFunction(start, end int, proto string, explicit bool) {
	text := e.state.text

	// A code block before any text leaves the function without a brief.
	briefOff := -1
	codeFirst := false
	for off := start; off < end; {
		if next := markdown.CodeBlockEnd(text, off, end); next > off {
			codeFirst = codeFirst || briefOff < 0
			off = next
			continue
		}
		line := markdown.Line(text, off)
		if kw, _, ok := keyword.Match(line); ok {
			if explicit && kw.IsMembership() {
				e.parseInGroup(off)
			}
		} else if briefOff < 0 && !codeFirst && !markdown.IsBlank(line) {
			briefOff = off
		}
		off = markdown.NextLine(text, off)
	}

	current := e.state.current
	if current == nil {
		if !e.state.rejected {
			e.warnAt(diag.NoModule, "", start)
		}
		return
	}

	if !explicit {
		proto = e.findPrototype()
	}
	name := FunctionName(proto)
	if name == "" {
		code := diag.NoFunction
		if e.state.hdr != nil && e.state.hdr.Type == header.DocString {
			code = diag.BadDocString
		}
		e.warnAt(code, "", start)
		return
	}

	fn := &docmodel.Function{
		Name:     name,
		Language: e.state.lang,
	}

	notesStart := start
	if briefOff >= 0 {
		fn.Brief = strings.TrimSpace(markdown.Line(text, briefOff))
		notesStart = markdown.NextLine(text, briefOff)
	}

	lines := append(markdown.SplitLines(proto), "")
	for off := notesStart; off < end; {
		if next := markdown.CodeBlockEnd(text, off, end); next > off {
			off = next
			continue
		}
		line := markdown.Line(text, off)
		if kw, _, ok := keyword.Match(line); ok && kw.IsPrototype() {
			lines = append(lines, markdown.PadLine(line))
		}
		off = markdown.NextLine(text, off)
	}
	fn.Prototype = markdown.TrimBlankLines(lines)

	e.doc.AddFunction(current, fn)
	e.logger.Debug("function", "name", name, "module", current.Title)

	fn.Notes = e.processText(&current.Section, notesStart, end)
}

// findPrototype reads the declaration documented by the current header: the
// closest non-blank line before a doc string, or the first non-blank line
// after any other header.
func (e *Extractor) findPrototype() string {
	hdr := e.state.hdr
	src := e.state.file.Content

	var off int
	if hdr.Type == header.DocString {
		off = markdown.PrevNonBlank(src, hdr.RawStart)
		if off < 0 {
			return ""
		}
	} else {
		off = markdown.SkipBlankLines(src, hdr.RawEnd, len(src))
		if off >= len(src) {
			return ""
		}
	}

	line := markdown.Line(src, off)
	off += len(line) - len(strings.TrimLeft(line, " \t"))
	return ScanPrototype(src, off)
}

// ScanPrototype reads the declaration starting at off. It continues across
// lines while parentheses are open and stops at a '{' or ';' outside them.
// A trailing ':' is dropped.
func ScanPrototype(src string, off int) string {
	depth := 0
	end := off

scan:
	for ; end < len(src); end++ {
		switch src[end] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '{', ';':
			if depth == 0 {
				break scan
			}
		case '\n':
			if depth == 0 {
				break scan
			}
		}
	}

	proto := strings.TrimSpace(src[off:end])
	return strings.TrimSpace(strings.TrimSuffix(proto, ":"))
}

// FunctionName returns the identifier in front of the first parameter list
// of proto, or "". Declaration keywords, receivers and generic parameter
// lists are skipped.
func FunctionName(proto string) string {
	depth := 0
	for i := range len(proto) {
		switch proto[i] {
		case '(':
			if depth == 0 {
				if name := identBefore(proto, i); name != "" && !declKeywords[name] {
					return name
				}
			}
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	return ""
}

// identBefore returns the identifier that ends just before pos, skipping
// whitespace and one generic parameter list.
func identBefore(s string, pos int) string {
	end := skipSpaceBack(s, pos)
	if end > 0 && s[end-1] == '>' {
		nest := 0
		for end > 0 {
			end--
			if s[end] == '>' {
				nest++
			} else if s[end] == '<' {
				nest--
				if nest == 0 {
					break
				}
			}
		}
		end = skipSpaceBack(s, end)
	}

	begin := end
	for begin > 0 && isIdentByte(s[begin-1]) {
		begin--
	}
	name := s[begin:end]
	if !keyword.IsCName(name) {
		return ""
	}
	return name
}

func skipSpaceBack(s string, pos int) int {
	for pos > 0 && (s[pos-1] == ' ' || s[pos-1] == '\t' || s[pos-1] == '\r' || s[pos-1] == '\n') {
		pos--
	}
	return pos
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
