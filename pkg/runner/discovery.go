package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gomdoc/pkg/diag"
)

// Discover expands opts.Inputs into the files of a run, in processing order:
// inputs in the order given, folder contents depth first in lexical order.
// Files of no known kind are left out. An input that matches nothing is
// reported as W007 on sink.
func Discover(ctx context.Context, opts Options, sink *diag.Sink) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if opts.kindOf(path) == kindOther {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, input := range opts.Inputs {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		paths, ok := expandInput(opts.WorkingDir, input)
		if !ok {
			sink.Warn(diag.NotFound, input)
			continue
		}

		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				sink.Warn(diag.NotFound, path)
				continue
			}
			if !info.IsDir() {
				add(path)
				continue
			}

			found, err := walkDirectory(ctx, path, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
		}
	}

	return files, nil
}

// expandInput resolves input against workDir and expands glob patterns.
// It reports false when nothing matches.
func expandInput(workDir, input string) ([]string, bool) {
	path := input
	if workDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	if !strings.ContainsAny(input, "*?[") {
		if _, err := os.Stat(path); err != nil {
			return nil, false
		}
		return []string{path}, true
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, false
	}

	// Wildcards do not match hidden names unless the pattern asks for them.
	if !strings.HasPrefix(filepath.Base(path), ".") {
		visible := matches[:0]
		for _, m := range matches {
			if !strings.HasPrefix(filepath.Base(m), ".") {
				visible = append(visible, m)
			}
		}
		matches = visible
	}
	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}

// walkDirectory returns the files under root, skipping hidden entries,
// excluded entries and folders nested deeper than the depth limit.
func walkDirectory(ctx context.Context, root string, opts Options) ([]string, error) {
	var files []string
	maxDepth := opts.maxDepth()

	excludes, err := compileExcludes(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}
		if path == root {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		hidden := strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || depthOf(relPath) >= maxDepth || excludes.match(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden || excludes.match(relPath, false) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil || info.IsDir() {
				return nil //nolint:nilerr // Broken and folder symlinks are skipped
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// depthOf is the number of folders in relPath, a path relative to the walk root.
func depthOf(relPath string) int {
	return strings.Count(filepath.ToSlash(relPath), "/") + 1
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// excludeRule is one compiled ignore pattern. "*" stops at "/" and "**"
// crosses it; a pattern without "/" is matched against the base name.
type excludeRule struct {
	pattern glob.Glob
	base    bool
}

type excludeRules []excludeRule

func compileExcludes(patterns []string) (excludeRules, error) {
	rules := make(excludeRules, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		rules = append(rules, excludeRule{pattern: g, base: !strings.Contains(pattern, "/")})
	}
	return rules, nil
}

// match reports whether relPath, relative to the walk root, is excluded.
// A folder also matches patterns ending in "/**".
func (r excludeRules) match(relPath string, dir bool) bool {
	relPath = filepath.ToSlash(relPath)
	base := relPath[strings.LastIndex(relPath, "/")+1:]
	for _, rule := range r {
		switch {
		case rule.pattern.Match(relPath):
			return true
		case dir && rule.pattern.Match(relPath+"/"):
			return true
		case rule.base && rule.pattern.Match(base):
			return true
		}
	}
	return false
}
