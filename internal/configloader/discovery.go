package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the configuration files found for each layer. A layer
// without a file has an empty path.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	// projectConfigFiles are tried in order in every folder of the upward search.
	projectConfigFiles = []string{
		".gomdoc.yml", ".gomdoc.yaml", ".gomdoc.toml",
		"gomdoc.yml", "gomdoc.yaml", "gomdoc.toml",
	}

	// layerConfigFiles are tried in the system and user config folders.
	layerConfigFiles = []string{"config.yaml", "config.yml", "config.toml"}

	// vcsRootMarkers end the upward search.
	vcsRootMarkers = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project configuration files.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), layerConfigFiles),
		User:    firstFile(userConfigDir(), layerConfigFiles),
		Project: project,
	}, nil
}

// systemConfigDir is /etc/gomdoc, or %ProgramData%\gomdoc on Windows.
func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/gomdoc"
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "gomdoc")
}

// userConfigDir is $XDG_CONFIG_HOME/gomdoc, falling back to ~/.config/gomdoc.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gomdoc")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gomdoc")
}

// FindProjectConfig walks from startDir towards the root and returns the
// first project config file. The walk stops after a VCS root or the home
// folder has been searched. An empty startDir means the working directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, _ := os.UserHomeDir()
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}
		if dir == home || firstDir(dir, vcsRootMarkers) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// firstDir reports whether any of names is a folder in dir.
func firstDir(dir string, names []string) bool {
	for _, name := range names {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
