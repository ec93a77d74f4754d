// Package config defines the configuration of a gomdoc run.
// These types are pure data structures; discovery and layering live in
// internal/configloader.
package config

import "strings"

// OutputFormat selects the renderer used by gomdoc build.
type OutputFormat string

const (
	FormatHTML     OutputFormat = "html"
	FormatMarkdown OutputFormat = "markdown"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatHTML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// ReportFormat selects how warnings and statistics are printed.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportJSON ReportFormat = "json"
)

// IsValid returns true if the report format is known.
func (f ReportFormat) IsValid() bool {
	switch f {
	case ReportText, ReportJSON:
		return true
	default:
		return false
	}
}

// Defaults.
const (
	DefaultExtensions         = ".c.c++.cc.cpp.cxx.cs.go.java.js.py.rs.swift.ts"
	DefaultMarkdownExtensions = ".md.mdown.markdown"
	DefaultImageExtensions    = ".jpg.jpeg.png.gif"
	DefaultMaxDepth           = 3
	DefaultOutput             = "docs"
	DefaultVerbose            = 2
	MaxVerbose                = 2
)

// Config is the root configuration structure for gomdoc.
type Config struct {
	// Name names the project. The Markdown renderer writes <output>/<name>.md.
	// Empty means the base name of the output folder.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Sort orders modules, classes, functions and documents alphabetically
	// ignoring case. Nil means true.
	Sort *bool `toml:"sort,omitempty" yaml:"sort,omitempty"`

	// Extensions, MarkdownExtensions and ImageExtensions are dot separated
	// lists such as ".c.h.py".
	Extensions         string `toml:"extensions,omitempty"          yaml:"extensions,omitempty"`
	MarkdownExtensions string `toml:"markdown_extensions,omitempty" yaml:"markdown_extensions,omitempty"`
	ImageExtensions    string `toml:"image_extensions,omitempty"    yaml:"image_extensions,omitempty"`

	// MaxDepth limits how many folder levels are walked below an input folder.
	MaxDepth int `toml:"max_depth,omitempty" yaml:"max_depth,omitempty"`

	// Ignore contains glob patterns for files and folders to skip.
	Ignore []string `toml:"ignore,omitempty" yaml:"ignore,omitempty"`

	// Output is the folder gomdoc build writes to.
	Output string `toml:"output,omitempty" yaml:"output,omitempty"`

	// Format selects the renderer.
	Format OutputFormat `toml:"format,omitempty" yaml:"format,omitempty"`

	// LocalCSS links a local w3.css instead of the CDN copy.
	LocalCSS bool `toml:"local_css,omitempty" yaml:"local_css,omitempty"`

	// NoIndex suppresses index.html.
	NoIndex bool `toml:"no_index,omitempty" yaml:"no_index,omitempty"`

	// Verbose is 0 (silent), 1 (warnings) or 2 (warnings and statistics).
	// Nil means DefaultVerbose.
	Verbose *int `toml:"verbose,omitempty" yaml:"verbose,omitempty"`

	// ReportFormat selects how warnings and statistics are printed.
	ReportFormat ReportFormat `toml:"report_format,omitempty" yaml:"report_format,omitempty"`

	// Jobs is the number of parallel page writers. 0 means GOMAXPROCS.
	Jobs int `toml:"jobs,omitempty" yaml:"jobs,omitempty"`

	// CLI-level options (not persisted to config files).

	// Yes answers overwrite prompts with yes.
	Yes bool `toml:"-" yaml:"-"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Sort:               Bool(true),
		Extensions:         DefaultExtensions,
		MarkdownExtensions: DefaultMarkdownExtensions,
		ImageExtensions:    DefaultImageExtensions,
		MaxDepth:           DefaultMaxDepth,
		Output:             DefaultOutput,
		Format:             FormatHTML,
		Verbose:            Int(DefaultVerbose),
		ReportFormat:       ReportText,
		Jobs:               0, // 0 means use GOMAXPROCS
	}
}

// SortEnabled reports whether alphabetical ordering is on.
func (c *Config) SortEnabled() bool {
	if c == nil || c.Sort == nil {
		return true
	}
	return *c.Sort
}

// VerboseLevel returns the verbosity, defaulting to DefaultVerbose.
func (c *Config) VerboseLevel() int {
	if c == nil || c.Verbose == nil {
		return DefaultVerbose
	}
	return *c.Verbose
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// SplitExtensions splits a dot separated extension list into lowercase
// extensions with a leading dot. Commas and spaces are accepted as
// separators too.
func SplitExtensions(list string) []string {
	parts := strings.FieldsFunc(list, func(r rune) bool {
		return r == '.' || r == ',' || r == ' '
	})
	exts := make([]string, 0, len(parts))
	for _, part := range parts {
		exts = append(exts, "."+strings.ToLower(part))
	}
	return exts
}
