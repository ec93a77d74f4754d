package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	require.NotNil(t, cmd)

	assert.Equal(t, "gomdoc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"build", "check", "show", "slug", "guide", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	inputFlags := []string{
		"exts", "markdown-exts", "image-exts", "sort", "verbose",
		"ignore", "max-depth", "report-format", "no-context",
	}

	tests := []struct {
		command string
		flags   []string
	}{
		{"build", append([]string{"output", "name", "format", "markdown", "local", "noindex", "yes", "jobs"}, inputFlags...)},
		{"check", append([]string{"dump"}, inputFlags...)},
		{"show", append([]string{"title", "width", "style", "raw"}, inputFlags...)},
		{"init", []string{"force", "full", "format", "output"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.command, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo())
			sub, _, err := cmd.Find([]string{testCase.command})
			require.NoError(t, err)

			for _, name := range testCase.flags {
				assert.NotNil(t, sub.Flags().Lookup(name), "flag %q on %s", name, testCase.command)
			}
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "gomdoc")
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestSlugCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "slug", "Hello World", "Example: Dial")
	require.NoError(t, err)
	assert.Equal(t, "hello-world\nexample-dial\n", out)

	_, err = execute(t, "slug")
	require.Error(t, err)
}

func TestGuideCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "guide")
	require.NoError(t, err)
	assert.Contains(t, out, "# gomdoc user guide")
	assert.Contains(t, out, "@defgroup")
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
}

func TestHelp(t *testing.T) {
	t.Parallel()

	output, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Commands:")
	assert.Contains(t, output, "build")
	assert.Contains(t, output, "--config")
	assert.Contains(t, output, `Run "gomdoc guide" for the doc comment syntax`)

	output, err = execute(t, "build", "--help")
	require.NoError(t, err)
	assert.Contains(t, output, "gomdoc build [inputs...]")
	assert.Contains(t, output, "--output")
	assert.NotContains(t, output, "gomdoc guide")
}
