// Package langdetect derives the code fence language of a source file.
// Well known source extensions map directly; anything else is resolved with
// go-enry.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// fenceTags maps extensions to fence tags where enry is ambiguous or its
// language name does not work as a fence tag.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fenceTags = map[string]string{
	".c":     "c",
	".h":     "c",
	".c++":   "cpp",
	".cc":    "cpp",
	".cpp":   "cpp",
	".cxx":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".java":  "java",
	".js":    "javascript",
	".py":    "python",
	".rs":    "rust",
	".swift": "swift",
	".ts":    "typescript",
}

// ForPath returns the fence tag for a file, or "" when the extension is unknown.
func ForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	if tag, ok := fenceTags[ext]; ok {
		return tag
	}
	lang, _ := enry.GetLanguageByExtension(path)
	return normalize(lang)
}

// ForSource is ForPath with content used to break ties between candidate
// languages.
func ForSource(path string, content []byte) string {
	if tag, ok := fenceTags[strings.ToLower(filepath.Ext(path))]; ok {
		return tag
	}
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return normalize(lang)
	}
	return normalize(enry.GetLanguage(filepath.Base(path), content))
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	switch lang {
	case "":
		return ""
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	case "Objective-C":
		return "objc"
	}
	return strings.ReplaceAll(strings.ToLower(lang), " ", "-")
}
