// Package runner drives a documentation run: it expands the inputs, collects
// candidate images, and feeds every source and Markdown file to the extractor.
package runner

import (
	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/diag"
)

// Options controls a run.
type Options struct {
	// Inputs are files, folders or glob patterns, processed in order.
	Inputs []string

	// WorkingDir resolves relative inputs. Empty means the process working
	// directory.
	WorkingDir string

	// SourceExtensions, MarkdownExtensions and ImageExtensions select how a
	// file is handled. Each entry is lowercase with a leading dot. Other
	// files are ignored.
	SourceExtensions   []string
	MarkdownExtensions []string
	ImageExtensions    []string

	// ExcludeGlobs skip matching files and folders found while walking.
	ExcludeGlobs []string

	// MaxDepth limits how many folder levels are walked below an input
	// folder. Zero means DefaultMaxDepth.
	MaxDepth int

	// Sort orders modules, classes, functions and documents alphabetically.
	Sort bool

	// OnWarning is called for every warning as it is reported.
	OnWarning diag.Handler
}

// DefaultMaxDepth is the folder depth walked when Options.MaxDepth is zero.
const DefaultMaxDepth = 3

// OptionsFromConfig builds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config, inputs []string) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Inputs:             inputs,
		SourceExtensions:   config.SplitExtensions(cfg.Extensions),
		MarkdownExtensions: config.SplitExtensions(cfg.MarkdownExtensions),
		ImageExtensions:    config.SplitExtensions(cfg.ImageExtensions),
		ExcludeGlobs:       cfg.Ignore,
		MaxDepth:           cfg.MaxDepth,
		Sort:               cfg.SortEnabled(),
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// kind is how a discovered file is handled.
type kind int

const (
	kindOther kind = iota
	kindSource
	kindMarkdown
	kindImage
)

func (o Options) kindOf(path string) kind {
	switch {
	case hasMatchingExtension(path, o.SourceExtensions):
		return kindSource
	case hasMatchingExtension(path, o.MarkdownExtensions):
		return kindMarkdown
	case hasMatchingExtension(path, o.ImageExtensions):
		return kindImage
	default:
		return kindOther
	}
}
