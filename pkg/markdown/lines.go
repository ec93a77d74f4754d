// Package markdown provides the Markdown primitives used during extraction:
// line navigation over a text buffer, code block and heading detection, image
// reference parsing, and goldmark-backed outlines and HTML conversion.
//
// Line helpers take a text buffer and a byte offset that points at the start
// of a line. A line never includes its trailing '\n' but keeps a '\r'.
package markdown

import "strings"

// Line returns the line starting at off, without the trailing newline.
func Line(text string, off int) string {
	if off >= len(text) {
		return ""
	}
	if idx := strings.IndexByte(text[off:], '\n'); idx >= 0 {
		return text[off : off+idx]
	}
	return text[off:]
}

// NextLine returns the offset of the line following the one at off,
// or len(text) when off is on the last line.
func NextLine(text string, off int) int {
	if off >= len(text) {
		return len(text)
	}
	if idx := strings.IndexByte(text[off:], '\n'); idx >= 0 {
		return off + idx + 1
	}
	return len(text)
}

// PrevLine returns the offset of the line before the one at off, or -1.
func PrevLine(text string, off int) int {
	if off <= 0 {
		return -1
	}
	return strings.LastIndexByte(text[:off-1], '\n') + 1
}

// LineStart returns the offset of the start of the line containing off.
func LineStart(text string, off int) int {
	if off > len(text) {
		off = len(text)
	}
	return strings.LastIndexByte(text[:off], '\n') + 1
}

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// SkipBlankLines returns the offset of the first non-blank line at or after off,
// stopping at end.
func SkipBlankLines(text string, off, end int) int {
	for off < end && IsBlank(Line(text, off)) {
		off = NextLine(text, off)
	}
	if off > end {
		return end
	}
	return off
}

// PrevNonBlank returns the offset of the closest non-blank line before the line
// at off, or -1.
func PrevNonBlank(text string, off int) int {
	for prev := PrevLine(text, off); prev >= 0; prev = PrevLine(text, prev) {
		if !IsBlank(Line(text, prev)) {
			return prev
		}
	}
	return -1
}

// HardBreak is the Markdown hard line break pad.
const HardBreak = "  "

// PadLine appends a hard break to a non-blank line unless it already ends in one.
// A trailing carriage return stays at the end of the line.
func PadLine(line string) string {
	body, hasCR := strings.CutSuffix(line, "\r")
	if IsBlank(body) || strings.HasSuffix(body, HardBreak) {
		return line
	}
	body += HardBreak
	if hasCR {
		body += "\r"
	}
	return body
}

// TrimBlankLines removes leading and trailing blank lines. Every remaining line
// is terminated by '\n'. It returns "" when all lines are blank.
func TrimBlankLines(lines []string) string {
	first := 0
	for first < len(lines) && IsBlank(lines[first]) {
		first++
	}
	last := len(lines)
	for last > first && IsBlank(lines[last-1]) {
		last--
	}
	if first == last {
		return ""
	}

	var builder strings.Builder
	for _, line := range lines[first:last] {
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// SplitLines splits text into lines using the same rules as Line.
func SplitLines(text string) []string {
	var lines []string
	for off := 0; off < len(text); off = NextLine(text, off) {
		lines = append(lines, Line(text, off))
	}
	return lines
}
