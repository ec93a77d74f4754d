package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/config"
)

// projectDir returns a temp directory marked as a VCS root so the upward
// config search stops there.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o750))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(projectDir(t)))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	cfg := result.Config
	assert.Equal(t, config.FormatHTML, cfg.Format)
	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
	assert.True(t, cfg.SortEnabled())
	assert.Equal(t, config.DefaultVerbose, cfg.VerboseLevel())
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		file    string
		content string
	}

	tests := []testCase{
		{
			name: "yaml",
			file: ".gomdoc.yml",
			content: `
output: site
format: markdown
sort: false
verbose: 0
ignore:
  - vendor/**
`,
		},
		{
			name: "toml",
			file: ".gomdoc.toml",
			content: `
output = "site"
format = "markdown"
sort = false
verbose = 0
ignore = ["vendor/**"]
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := projectDir(t)
			writeFile(t, filepath.Join(dir, tc.file), tc.content)

			result, err := Load(context.Background(), isolated(dir))
			require.NoError(t, err)

			cfg := result.Config
			assert.Equal(t, "site", cfg.Output)
			assert.Equal(t, config.FormatMarkdown, cfg.Format)
			assert.False(t, cfg.SortEnabled())
			assert.Equal(t, 0, cfg.VerboseLevel())
			assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
			assert.Equal(t, config.DefaultMaxDepth, cfg.MaxDepth)
			assert.Equal(t, []string{filepath.Join(dir, tc.file)}, result.LoadedFrom)
		})
	}
}

func TestLoad_ProjectConfigFromParent(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdoc.yml"), "name: parent\n")
	sub := filepath.Join(dir, "src", "lib")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	result, err := Load(context.Background(), isolated(sub))
	require.NoError(t, err)
	assert.Equal(t, "parent", result.Config.Name)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdoc.yml"), "output: project\nmax_depth: 5\n")
	explicit := filepath.Join(dir, "custom", "docs.toml")
	writeFile(t, explicit, "output = \"explicit\"\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, "explicit", result.Config.Output)
	assert.Equal(t, 5, result.Config.MaxDepth)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdoc.yml"), "output: project\nformat: markdown\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		Output:  "cli",
		NoIndex: true,
		Sort:    config.Bool(false),
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "cli", cfg.Output)
	assert.Equal(t, config.FormatMarkdown, cfg.Format)
	assert.True(t, cfg.NoIndex)
	assert.False(t, cfg.SortEnabled())
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		content string
		want    string
	}

	tests := []testCase{
		{name: "format", content: "format: pdf\n", want: "format"},
		{name: "report format", content: "report_format: xml\n", want: "report_format"},
		{name: "jobs", content: "jobs: -1\n", want: "jobs"},
		{name: "verbose", content: "verbose: 7\n", want: "verbose"},
		{name: "ignore", content: "ignore: [\"[\"]\n", want: "ignore[0]"},
		{name: "syntax", content: "output: [\n", want: ".gomdoc.yml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := projectDir(t)
			writeFile(t, filepath.Join(dir, ".gomdoc.yml"), tc.content)

			_, err := Load(context.Background(), isolated(dir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolated(projectDir(t)))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GOMDOC_OUTPUT", "from-env")
	t.Setenv("GOMDOC_SORT", "false")
	t.Setenv("GOMDOC_MAX_DEPTH", "6")
	t.Setenv("GOMDOC_IGNORE", "build/**, tmp/*")

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gomdoc.yml"), "output: project\n")

	opts := isolated(dir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{MaxDepth: 2}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	cfg := result.Config
	assert.Equal(t, "from-env", cfg.Output)
	assert.False(t, cfg.SortEnabled())
	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, []string{"build/**", "tmp/*"}, cfg.Ignore)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	type testCase struct {
		name  string
		key   string
		value string
	}

	tests := []testCase{
		{name: "bool", key: "GOMDOC_NO_INDEX", value: "maybe"},
		{name: "int", key: "GOMDOC_JOBS", value: "many"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			err := LoadFromEnv(config.NewConfig())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestGetEnvVarName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "GOMDOC_MARKDOWN_EXTENSIONS", GetEnvVarName("markdown_extensions"))
	assert.Empty(t, GetEnvVarName("nope"))

	vars := ListEnvVars()
	for suffix := range envMappings {
		assert.Contains(t, vars, envVarPrefix+suffix)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a"}

	merged := MergeAll(base, &config.Config{Verbose: config.Int(0)}, &config.Config{Jobs: 4})

	assert.Equal(t, 0, merged.VerboseLevel())
	assert.Equal(t, 4, merged.Jobs)
	assert.Equal(t, []string{"a"}, merged.Ignore)
	assert.Equal(t, config.DefaultVerbose, base.VerboseLevel())
	assert.Nil(t, MergeAll())
}

func TestValidate_ExtensionOverlap(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.MarkdownExtensions = ".md.txt"
	cfg.Extensions = ".c.txt"

	result := Validate(cfg)
	assert.True(t, result.Valid())
	require.True(t, result.HasWarnings())
	assert.Equal(t, "markdown_extensions", result.Warnings[0].Field)
	assert.Contains(t, result.AllMessages()[0], ".txt")
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "jobs", Message: "bad", FilePath: "x.yml", Line: 3}
	assert.Equal(t, "x.yml:3: jobs: bad", err.Error())
}
