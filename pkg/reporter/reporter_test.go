package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/reporter"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

func sampleResult(root string) *runner.Result {
	doc := docmodel.New(docmodel.Options{Sort: true})
	doc.AddModule(&docmodel.Module{Section: docmodel.Section{Title: "Net"}}, false)

	return &runner.Result{
		Doc:   doc,
		Files: []string{filepath.Join(root, "src", "net.c")},
		Warnings: []diag.Warning{
			{Code: diag.NotFound, Extra: "gone.c"},
			{
				Code:   diag.ImageNotFound,
				Extra:  "lake.png",
				Path:   filepath.Join(root, "src", "net.c"),
				Line:   2,
				Column: 5,
				Source: "/// ![lake](lake.png)",
			},
		},
		Stats: docmodel.Stats{Modules: 1, Files: 1, DocComments: 1, Warnings: 2},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}

	tests := []testCase{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "sarif", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.False(t, reporter.Format(tc.input).IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml", Writer: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		verbose  int
		contains []string
		excludes []string
	}

	tests := []testCase{
		{
			name:     "silent",
			verbose:  reporter.VerboseSilent,
			excludes: []string{"W007", "module"},
		},
		{
			name:    "warnings",
			verbose: reporter.VerboseWarnings,
			contains: []string{
				"Warning: W007 - file or folder doesn't exist: gone.c\n",
				"src/net.c:2:5: W012 - image file not found: lake.png\n",
				"    /// ![lake](lake.png)\n",
				"1 module from 1 file, 2 warnings\n",
			},
			excludes: []string{"processed"},
		},
		{
			name:    "stats",
			verbose: reporter.VerboseStats,
			contains: []string{
				"W007",
				"  1 module\n",
				"  1 doc comment processed\n",
				"  2 warnings\n",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{
				Writer:      &buf,
				Format:      reporter.FormatText,
				Color:       "never",
				ShowContext: true,
				Verbose:     tc.verbose,
				WorkingDir:  root,
			})
			require.NoError(t, err)

			n, err := rep.Report(context.Background(), sampleResult(root))
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			out := filepath.ToSlash(buf.String())
			for _, want := range tc.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tc.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatJSON,
		Compact:    true,
		WorkingDir: root,
	})
	require.NoError(t, err)

	n, err := rep.Report(context.Background(), sampleResult(root))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, []string{filepath.Join("src", "net.c")}, out.Files)
	require.Len(t, out.Warnings, 2)
	assert.Equal(t, "W007", out.Warnings[0].Code)
	assert.Empty(t, out.Warnings[0].Path)
	assert.Equal(t, "W012", out.Warnings[1].Code)
	assert.Equal(t, "image file not found: ", out.Warnings[1].Message)
	assert.Equal(t, 2, out.Warnings[1].Line)
	assert.Equal(t, 1, out.Stats.Modules)
	assert.Equal(t, 1, out.Objects)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), `"warnings": []`)
}
