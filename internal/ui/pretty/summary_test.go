package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdoc/internal/ui/pretty"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
)

func TestFormatStats(t *testing.T) {
	t.Parallel()

	stats := docmodel.Stats{
		Modules:     12,
		Functions:   1,
		Classes:     2,
		Methods:     0,
		Examples:    1,
		Documents:   3,
		Images:      1,
		Files:       14,
		DocComments: 1,
		Warnings:    1,
	}

	want := "\n" +
		"  12 modules\n" +
		"   1 function\n" +
		"   2 classes\n" +
		"   0 methods\n" +
		"   1 example\n" +
		"   3 documents\n" +
		"   1 image\n" +
		"\n" +
		"  14 files processed\n" +
		"   1 doc comment processed\n" +
		"   1 warning\n"

	assert.Equal(t, want, pretty.NewStyles(false).FormatStats(stats))
}

func TestFormatStats_WidthFromWarnings(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatStats(docmodel.Stats{Warnings: 100})
	assert.Contains(t, out, "    0 modules\n")
	assert.Contains(t, out, "  100 warnings\n")
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		stats docmodel.Stats
		want  string
	}

	tests := []testCase{
		{
			name:  "clean",
			stats: docmodel.Stats{Modules: 2, Documents: 1, Files: 3},
			want:  "2 modules, 1 document from 3 files, no warnings\n",
		},
		{
			name:  "warnings",
			stats: docmodel.Stats{Classes: 1, Files: 1, Warnings: 2},
			want:  "1 class from 1 file, 2 warnings\n",
		},
		{
			name:  "empty",
			stats: docmodel.Stats{Files: 2, Warnings: 1},
			want:  "nothing documented from 2 files, 1 warning\n",
		},
	}

	styles := pretty.NewStyles(false)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, styles.FormatSummaryOneLine(tc.stats))
		})
	}
}
