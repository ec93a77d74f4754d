// Package source holds input files together with a line index for mapping
// byte offsets to the line and column positions used in warnings.
package source

import "sort"

// LineInfo describes one line of a file.
type LineInfo struct {
	// StartOffset is the byte index of the first byte of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins,
	// or the end of content for a final unterminated line.
	NewlineStart int

	// EndOffset is the byte index just past the line terminator.
	EndOffset int
}

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position points into a file.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// File is the content of one input file.
type File struct {
	Path    string
	Content string
	Lines   []LineInfo
}

// NewFile indexes content for path.
func NewFile(path, content string) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata for content. Both LF and CRLF endings
// are recognised.
func BuildLines(content string) []LineInfo {
	if content == "" {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := range len(content) {
		if content[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Returns (0, 0) if the offset is out of range.
func (f *File) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		lastLine := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - lastLine.StartOffset + 1
	}

	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	lineInfo := f.Lines[lineIdx]
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - lineInfo.StartOffset + 1
}

// PositionAt is LineAt returning a Position.
func (f *File) PositionAt(offset int) Position {
	line, col := f.LineAt(offset)
	return Position{Line: line, Column: col}
}

// Offset converts 1-based line and column numbers to a byte offset.
func (f *File) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	lineInfo := f.Lines[line-1]
	offset := lineInfo.StartOffset + col - 1
	if offset > lineInfo.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns a 1-based line without its terminator, or "" when the
// line is out of range.
func (f *File) LineContent(line int) string {
	if line < 1 || line > len(f.Lines) {
		return ""
	}

	lineInfo := f.Lines[line-1]
	return f.Content[lineInfo.StartOffset:lineInfo.NewlineStart]
}
