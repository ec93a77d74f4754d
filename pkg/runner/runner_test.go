package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/runner"
)

const moduleSource = "/// @defgroup Net  Networking\n" +
	"///\n" +
	"/// Sockets.\n" +
	"\n" +
	"/// Opens a socket.\n" +
	"int net_open(const char *host);\n"

func TestRun(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/net.c":      moduleSource,
		"guide.md":       "# Guide\n\n![Lake](lake.png)\n\n## Setup\n",
		"img/lake.png":   "png",
		"img/unused.gif": "gif",
	})

	var seen []diag.Warning
	opts := defaultOptions(root, "guide.md", "src", "img")
	opts.OnWarning = func(w diag.Warning) { seen = append(seen, w) }

	result, err := runner.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.False(t, result.HasWarnings())
	assert.Empty(t, seen)
	assert.False(t, result.NothingToDo())
	assert.Equal(t, []string{"guide.md", "src/net.c"}, relPaths(t, root, result.Files))

	doc := result.Doc
	require.Len(t, doc.Modules, 1)
	assert.Equal(t, "Net", doc.Modules[0].Title)
	require.Len(t, doc.Documents, 1)
	assert.Equal(t, "guide", doc.Documents[0].Title)

	require.Len(t, doc.ImageFiles, 2)
	assert.True(t, doc.ImageFiles[0].Referenced)
	assert.False(t, doc.ImageFiles[1].Referenced)

	stats := result.Stats
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Modules)
	assert.Equal(t, 1, stats.Functions)
	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, 1, stats.Images)
	assert.Equal(t, 0, stats.Warnings)
}

func TestRun_Warnings(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		files     map[string]string
		inputs    []string
		codes     []diag.Code
		wantFiles int
	}

	tests := []testCase{
		{
			name:      "empty file",
			files:     map[string]string{"empty.c": "", "net.c": moduleSource},
			inputs:    []string{"empty.c", "net.c"},
			codes:     []diag.Code{diag.ReadFile},
			wantFiles: 2,
		},
		{
			name:      "nothing to do",
			files:     map[string]string{"plain.c": "int x;\n"},
			inputs:    []string{"plain.c"},
			codes:     []diag.Code{diag.NothingToDo},
			wantFiles: 1,
		},
		{
			name:      "missing input",
			files:     map[string]string{"net.c": moduleSource},
			inputs:    []string{"gone.c", "net.c"},
			codes:     []diag.Code{diag.NotFound},
			wantFiles: 1,
		},
		{
			name:      "missing image",
			files:     map[string]string{"doc.md": "# Doc\n\n![x](nope.png)\n"},
			inputs:    []string{"doc.md"},
			codes:     []diag.Code{diag.ImageNotFound},
			wantFiles: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeFiles(t, root, tc.files)

			var handled int
			opts := defaultOptions(root, tc.inputs...)
			opts.OnWarning = func(diag.Warning) { handled++ }

			result, err := runner.Run(context.Background(), opts)
			require.NoError(t, err)

			codes := make([]diag.Code, 0, len(result.Warnings))
			for _, w := range result.Warnings {
				codes = append(codes, w.Code)
			}
			assert.Equal(t, tc.codes, codes)
			assert.Equal(t, len(tc.codes), handled)
			assert.Equal(t, len(tc.codes), result.Stats.Warnings)
			assert.Equal(t, tc.wantFiles, result.Stats.Files)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"net.c": moduleSource})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, defaultOptions(root, "net.c"))
	require.ErrorIs(t, err, context.Canceled)
}
