// Package keyword recognises the @keyword directives that drive documentation
// extraction. A directive must start in the first column of a line and the
// keyword must be followed by whitespace or the end of the line.
package keyword

import "strings"

// Keyword identifies a recognised @keyword directive.
type Keyword int

// Recognised keywords. Unknown covers any other @word and is never an error.
const (
	Unknown Keyword = iota
	Class
	Color
	Defgroup
	Example
	Fn
	Font
	InClass
	InGroup
	Logo
	Mainpage
	Param
	Return
	Version
)

// table lists the directive spellings in match order. "@returns" is an alias of Return.
//
//nolint:gochecknoglobals // Read-only lookup table.
var table = []struct {
	word string
	kw   Keyword
}{
	{"@class", Class},
	{"@color", Color},
	{"@defgroup", Defgroup},
	{"@example", Example},
	{"@fn", Fn},
	{"@font", Font},
	{"@inclass", InClass},
	{"@ingroup", InGroup},
	{"@logo", Logo},
	{"@mainpage", Mainpage},
	{"@param", Param},
	{"@return", Return},
	{"@returns", Return},
	{"@version", Version},
}

// String returns the directive spelling, e.g. "@defgroup".
func (k Keyword) String() string {
	for _, entry := range table {
		if entry.kw == k {
			return entry.word
		}
	}
	return "@unknown"
}

// IsSection reports whether the keyword opens a new section.
func (k Keyword) IsSection() bool {
	switch k {
	case Class, Defgroup, Fn, Mainpage:
		return true
	default:
		return false
	}
}

// IsPrototype reports whether lines carrying the keyword are relocated into a
// function's prototype block.
func (k Keyword) IsPrototype() bool {
	switch k {
	case Param, Return, Unknown:
		return true
	default:
		return false
	}
}

// IsStyle reports whether the keyword changes a section's style.
func (k Keyword) IsStyle() bool {
	switch k {
	case Color, Font, Logo, Version:
		return true
	default:
		return false
	}
}

// IsMembership reports whether the keyword is @ingroup or @inclass.
func (k Keyword) IsMembership() bool {
	return k == InGroup || k == InClass
}

// Match reports whether line opens with an @keyword token. It returns the
// keyword and the byte index of its argument within line; the index equals
// len(line) when there is no argument.
func Match(line string) (Keyword, int, bool) {
	if line == "" || line[0] != '@' {
		return Unknown, 0, false
	}

	kw := Unknown
	for _, entry := range table {
		if !strings.HasPrefix(line, entry.word) {
			continue
		}
		n := len(entry.word)
		if n == len(line) || isSpace(line[n]) {
			kw = entry.kw
			break
		}
	}

	return kw, argIndex(line), true
}

// argIndex skips the first token of line and the whitespace after it.
func argIndex(line string) int {
	idx := 0
	for idx < len(line) && !isSpace(line[idx]) {
		idx++
	}
	for idx < len(line) && isSpace(line[idx]) {
		idx++
	}
	return idx
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}
