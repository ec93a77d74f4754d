package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value.
	// If false, generates a commented minimal template.
	Full bool

	// Format is the file encoding: FileYAML or FileTOML.
	Format FileFormat
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FileYAML
	}
	if opts.Format != FileYAML && opts.Format != FileTOML {
		return nil, fmt.Errorf("unknown config format %q", opts.Format)
	}

	if opts.Full {
		return generateFullTemplate(opts.Format)
	}
	if opts.Format == FileTOML {
		return []byte(minimalTOML), nil
	}
	return []byte(minimalYAML), nil
}

// generateFullTemplate encodes the defaults under the standard header.
func generateFullTemplate(format FileFormat) ([]byte, error) {
	body, err := NewConfig().Encode(format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}

// DefaultTemplateHeader returns the comment written at the top of generated
// configuration files.
func DefaultTemplateHeader() string {
	return `# gomdoc configuration
# See: https://github.com/yaklabco/gomdoc
`
}

const minimalYAML = `# gomdoc configuration
# See: https://github.com/yaklabco/gomdoc

# Output folder and renderer: html or markdown
output: docs
format: html

# Sort modules, classes, functions and documents alphabetically
# sort: true

# Source, Markdown and image file extensions
# extensions: .c.c++.cc.cpp.cxx.cs.go.java.js.py.rs.swift.ts
# markdown_extensions: .md.mdown.markdown
# image_extensions: .jpg.jpeg.png.gif

# Folder levels walked below each input folder
# max_depth: 3

# File patterns to skip (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# HTML output: link a local w3.css, skip index.html
# local_css: false
# no_index: false

# 0 = silent, 1 = warnings, 2 = warnings and statistics
# verbose: 2

# Warning output: text or json
# report_format: text

# Number of parallel page writers (0 = auto)
# jobs: 0
`

const minimalTOML = `# gomdoc configuration
# See: https://github.com/yaklabco/gomdoc

# Output folder and renderer: html or markdown
output = "docs"
format = "html"

# Sort modules, classes, functions and documents alphabetically
# sort = true

# Source, Markdown and image file extensions
# extensions = ".c.c++.cc.cpp.cxx.cs.go.java.js.py.rs.swift.ts"
# markdown_extensions = ".md.mdown.markdown"
# image_extensions = ".jpg.jpeg.png.gif"

# Folder levels walked below each input folder
# max_depth = 3

# File patterns to skip (glob patterns)
# ignore = ["vendor/**", "node_modules/**"]

# HTML output: link a local w3.css, skip index.html
# local_css = false
# no_index = false

# 0 = silent, 1 = warnings, 2 = warnings and statistics
# verbose = 2

# Warning output: text or json
# report_format = "text"

# Number of parallel page writers (0 = auto)
# jobs = 0
`
