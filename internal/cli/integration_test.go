package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdoc/internal/cli"
)

const netSource = "/// @defgroup Net  Networking\n" +
	"///\n" +
	"/// Sockets.\n" +
	"\n" +
	"/// Opens a socket.\n" +
	"int net_open(const char *host);\n"

// project writes a source file, a Markdown document and an isolating config
// file under a temp dir and returns the dir and the config path.
func project(t *testing.T, files map[string]string) (string, string) {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	cfg := filepath.Join(root, "gomdoc.yml")
	require.NoError(t, os.WriteFile(cfg, []byte("sort: true\n"), 0o600))
	return root, cfg
}

func TestIntegration_BuildHTML(t *testing.T) {
	t.Parallel()

	root, cfg := project(t, map[string]string{
		"src/net.c": netSource,
		"guide.md":  "# Guide\n\nRead me.\n\n## Setup\n",
	})
	out := filepath.Join(root, "site")

	output, err := execute(t, "build", "--config", cfg, "--color", "never", "-o", out,
		filepath.Join(root, "src"), filepath.Join(root, "guide.md"))
	require.NoError(t, err, output)

	for _, name := range []string{"index.html", "Net.html", "guide.html", "gomdoc_home.png"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.Contains(t, output, "1 module")
	assert.Contains(t, output, "1 function")
	assert.Contains(t, output, "2 files processed")
	assert.Contains(t, output, "0 warnings")
}

func TestIntegration_BuildMarkdown(t *testing.T) {
	t.Parallel()

	root, cfg := project(t, map[string]string{"src/net.c": netSource})
	out := filepath.Join(root, "api")

	output, err := execute(t, "build", "--config", cfg, "--color", "never", "--markdown", "-v", "1",
		"-o", out, filepath.Join(root, "src"))
	require.NoError(t, err, output)

	content, err := os.ReadFile(filepath.Join(out, "api.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Net\n\nNetworking\n")
	assert.Contains(t, string(content), "## net_open\n\nOpens a socket.\n")
	assert.Equal(t, "1 module from 1 file, no warnings\n", output)
}

func TestIntegration_Warnings(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		files    map[string]string
		args     []string
		contains []string
	}

	tests := []testCase{
		{
			name:     "missing input",
			files:    map[string]string{"net.c": netSource},
			args:     []string{"gone.c", "net.c"},
			contains: []string{"W007 - file or folder doesn't exist: ", "1 warning"},
		},
		{
			name:     "nothing to do",
			files:    map[string]string{"plain.c": "int x;\n"},
			args:     []string{"plain.c"},
			contains: []string{"Warning: W011 - no objects or documents defined. Nothing to do"},
		},
		{
			name:  "function without module",
			files: map[string]string{"lone.c": "/// Does things.\nint lone(void);\n"},
			args:  []string{"lone.c"},
			contains: []string{
				"lone.c:1:",
				"W001 - no module or class defined",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root, cfg := project(t, testCase.files)
			args := []string{"check", "--config", cfg, "--color", "never"}
			for _, arg := range testCase.args {
				args = append(args, filepath.Join(root, arg))
			}

			output, err := execute(t, args...)
			require.ErrorIs(t, err, cli.ErrWarningsFound)
			for _, want := range testCase.contains {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestIntegration_NoInputs(t *testing.T) {
	t.Parallel()

	_, cfg := project(t, nil)
	for _, command := range []string{"build", "check"} {
		_, err := execute(t, command, "--config", cfg)
		require.ErrorIs(t, err, cli.ErrNoInputs, command)
	}
}

func TestIntegration_CheckDump(t *testing.T) {
	t.Parallel()

	root, cfg := project(t, map[string]string{"net.c": netSource})

	output, err := execute(t, "check", "--config", cfg, "--dump", "yaml", "-v", "0", filepath.Join(root, "net.c"))
	require.NoError(t, err)

	var dumped struct {
		Modules []struct {
			Title     string `yaml:"title"`
			Functions []struct {
				Name string `yaml:"name"`
			} `yaml:"functions"`
		} `yaml:"modules"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(output), &dumped))
	require.Len(t, dumped.Modules, 1)
	assert.Equal(t, "Net", dumped.Modules[0].Title)
	require.Len(t, dumped.Modules[0].Functions, 1)
	assert.Equal(t, "net_open", dumped.Modules[0].Functions[0].Name)

	_, err = execute(t, "check", "--config", cfg, "--dump", "xml", filepath.Join(root, "net.c"))
	require.Error(t, err)
}

func TestIntegration_JSONReport(t *testing.T) {
	t.Parallel()

	root, cfg := project(t, map[string]string{"doc.md": "# Doc\n\n![x](nope.png)\n"})

	output, err := execute(t, "check", "--config", cfg, "--report-format", "json", filepath.Join(root, "doc.md"))
	require.ErrorIs(t, err, cli.ErrWarningsFound)

	var report struct {
		Warnings []struct {
			Code  string `json:"code"`
			Extra string `json:"extra"`
			Line  int    `json:"line"`
		} `json:"warnings"`
		Stats struct {
			Documents int `json:"documents"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &report))
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "W012", report.Warnings[0].Code)
	assert.Equal(t, "nope.png", report.Warnings[0].Extra)
	assert.Equal(t, 3, report.Warnings[0].Line)
	assert.Equal(t, 1, report.Stats.Documents)
}

func TestIntegration_Show(t *testing.T) {
	t.Parallel()

	root, cfg := project(t, map[string]string{"net.c": netSource})
	input := filepath.Join(root, "net.c")

	output, err := execute(t, "show", "--config", cfg, "--color", "never", "--raw", "--title", "net", input)
	require.NoError(t, err)
	assert.Contains(t, output, "# Net\n\nNetworking\n")
	assert.Contains(t, output, "1 module from 1 file, no warnings")

	output, err = execute(t, "show", "--config", cfg, "--style", "notty", "--title", "Net", input)
	require.NoError(t, err)
	assert.Contains(t, output, "net_open")

	_, err = execute(t, "show", "--config", cfg, "--title", "nothing", input)
	require.ErrorIs(t, err, cli.ErrSectionNotFound)
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		file     string
		contains string
	}{
		{"yaml", nil, "config.yml", "# gomdoc configuration"},
		{"toml full", []string{"--format", "toml", "--full"}, "config.toml", "max_depth = 3"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), testCase.file)
			args := append([]string{"init", "--output", path}, testCase.args...)

			_, err := execute(t, args...)
			require.NoError(t, err)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(content), testCase.contains)

			_, err = execute(t, args...)
			require.Error(t, err, "existing file needs --force")

			_, err = execute(t, append(args, "--force")...)
			require.NoError(t, err)
		})
	}

	_, err := execute(t, "init", "--format", "json", "--output", filepath.Join(t.TempDir(), "x.json"))
	require.Error(t, err)
}
