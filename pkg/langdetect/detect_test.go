package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdoc/pkg/langdetect"
)

func TestForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"src/main.c", "c"},
		{"lib/widget.CPP", "cpp"},
		{"x.c++", "cpp"},
		{"App.cs", "csharp"},
		{"pkg/doc.go", "go"},
		{"tool.py", "python"},
		{"lib.rs", "rust"},
		{"index.ts", "typescript"},
		{"script.rb", "ruby"},
		{"init.lua", "lua"},
		{"README", ""},
		{"notes.zzzz", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, langdetect.ForPath(testCase.path))
		})
	}
}

func TestForSourcePrefersTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c", langdetect.ForSource("api.h", []byte("int f(void);\n")))
	assert.Equal(t, "go", langdetect.ForSource("x.go", nil))
}
