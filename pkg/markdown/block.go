package markdown

import "strings"

const (
	codeIndent  = 4
	maxHeadings = 6
)

// fence describes an opening code fence.
type fence struct {
	char byte
	size int
}

// openFence reports whether line opens a fenced code block.
func openFence(line string) (fence, bool) {
	trimmed, ok := stripIndent(line, codeIndent-1)
	if !ok || trimmed == "" {
		return fence{}, false
	}
	char := trimmed[0]
	if char != '`' && char != '~' {
		return fence{}, false
	}
	size := 0
	for size < len(trimmed) && trimmed[size] == char {
		size++
	}
	if size < 3 {
		return fence{}, false
	}
	if char == '`' && strings.ContainsRune(trimmed[size:], '`') {
		return fence{}, false
	}
	return fence{char: char, size: size}, true
}

// closes reports whether line closes the fence f.
func (f fence) closes(line string) bool {
	trimmed, ok := stripIndent(line, codeIndent-1)
	if !ok {
		return false
	}
	size := 0
	for size < len(trimmed) && trimmed[size] == f.char {
		size++
	}
	return size >= f.size && IsBlank(trimmed[size:])
}

// isIndentedCode reports whether line is a non-blank line indented as code.
func isIndentedCode(line string) bool {
	if IsBlank(line) {
		return false
	}
	if strings.HasPrefix(line, "\t") {
		return true
	}
	return strings.HasPrefix(line, strings.Repeat(" ", codeIndent))
}

// stripIndent removes up to max leading spaces. It fails if more remain.
func stripIndent(line string, maxSpaces int) (string, bool) {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n > maxSpaces {
		return "", false
	}
	return line[n:], true
}

// IsCodeBlockStart reports whether line opens a fenced or indented code block.
func IsCodeBlockStart(line string) bool {
	if _, ok := openFence(line); ok {
		return true
	}
	return isIndentedCode(line)
}

// CodeBlock measures the code block starting at off. It returns the offset of
// the line after the block and whether the block holds any non-blank content.
// When off is not the start of a code block the returned offset equals off.
// An unterminated fence runs to end.
func CodeBlock(text string, off, end int) (int, bool) {
	if off >= end {
		return off, false
	}

	first := Line(text, off)
	if f, ok := openFence(first); ok {
		content := false
		for pos := NextLine(text, off); pos < end; pos = NextLine(text, pos) {
			line := Line(text, pos)
			if f.closes(line) {
				return NextLine(text, pos), content
			}
			if !IsBlank(line) {
				content = true
			}
		}
		return end, content
	}

	if !isIndentedCode(first) {
		return off, false
	}

	after := NextLine(text, off)
	for pos := after; pos < end; pos = NextLine(text, pos) {
		line := Line(text, pos)
		if isIndentedCode(line) {
			after = NextLine(text, pos)
			continue
		}
		if !IsBlank(line) {
			break
		}
	}
	if after > end {
		after = end
	}
	return after, true
}

// CodeBlockEnd returns the offset of the line after the code block at off,
// or off when no code block starts there.
func CodeBlockEnd(text string, off, end int) int {
	next, _ := CodeBlock(text, off, end)
	return next
}

// Heading parses an ATX heading line and returns its level and text.
func Heading(line string) (int, string, bool) {
	trimmed, ok := stripIndent(line, codeIndent-1)
	if !ok {
		return 0, "", false
	}
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadings {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\r' {
		return 0, "", false
	}

	text := strings.TrimSpace(rest)
	if closing := strings.TrimRight(text, "#"); closing != text {
		if closing == "" || strings.HasSuffix(closing, " ") || strings.HasSuffix(closing, "\t") {
			text = strings.TrimSpace(closing)
		}
	}
	return level, text, true
}
