package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/source"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []source.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []source.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "CRLF",
			content: "a\r\nb\n",
			expected: []source.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 5, EndOffset: 5},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, source.BuildLines(testCase.content))
		})
	}
}

func TestFileLineAt(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "line1\nline2\nline3")

	tests := []struct {
		name         string
		offset       int
		expectedLine int
		expectedCol  int
	}{
		{"start of file", 0, 1, 1},
		{"newline of line 1", 5, 1, 6},
		{"start of line 2", 6, 2, 1},
		{"middle of line 2", 8, 2, 3},
		{"end of file", 16, 3, 5},
		{"past end of file", 17, 3, 6},
		{"negative offset", -1, 0, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, col := file.LineAt(testCase.offset)
			assert.Equal(t, testCase.expectedLine, line)
			assert.Equal(t, testCase.expectedCol, col)
		})
	}

	assert.Equal(t, source.Position{Line: 2, Column: 1}, file.PositionAt(6))
	assert.False(t, file.PositionAt(-1).IsValid())
}

func TestFileOffsetAndContent(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.c", "ab\r\ncd\n")
	require.Equal(t, 3, file.LineCount())

	off, ok := file.Offset(2, 2)
	require.True(t, ok)
	assert.Equal(t, 5, off)

	_, ok = file.Offset(4, 1)
	assert.False(t, ok)

	assert.Equal(t, "ab", file.LineContent(1))
	assert.Equal(t, "cd", file.LineContent(2))
	assert.Empty(t, file.LineContent(9))
}
