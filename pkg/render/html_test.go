package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/render"
)

func fullDoc() *docmodel.Document {
	doc := docmodel.New(docmodel.Options{})
	doc.MainPage = &docmodel.Section{Title: "Main", Subtitle: "The project", Text: "Welcome.  \n"}
	doc.AddModule(netModule(), false)
	doc.AddModule(&docmodel.Module{Section: docmodel.Section{Title: "Shape", Subtitle: "Geometry"}}, true)
	doc.AddDocument(&docmodel.MarkdownDocument{
		Section:  docmodel.Section{Title: "guide", Subtitle: "Guide", Text: "# Guide\n\nIntro\n\n## Install Steps\n\nRun it.\n"},
		Headings: []docmodel.MdHeading{{Title: "Install Steps", Level: 2}},
	})
	return doc
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	result, err := render.WriteHTML(context.Background(), fullDoc(), render.Options{Output: out, Jobs: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(out, "index.html"),
		filepath.Join(out, "net.html"),
		filepath.Join(out, "Shape.html"),
		filepath.Join(out, "guide.html"),
		filepath.Join(out, "gomdoc_home.png"),
	}, result.Written)
	assert.NoFileExists(t, filepath.Join(out, "w3.css"))

	index := readFile(t, filepath.Join(out, "index.html"))
	assert.Contains(t, index, `<link rel="stylesheet" href="https://www.w3schools.com/w3css/4/w3.css">`)
	assert.Contains(t, index, `<div class="w3-container w3-cell w3-mobile w3-blue">`)
	assert.Contains(t, index, `<p><img src="gomdoc_home.png" alt="Home" class="w3-round"></p>`)
	assert.Contains(t, index, "<h1>Main</h1>")
	assert.Contains(t, index, "<h3>The project</h3>")
	assert.Contains(t, index, "<h2>Modules &amp; Classes</h2>")
	assert.Contains(t, index, "<p><b>1 Module</b></p>")
	assert.Contains(t, index, `<p><a href="net.html">net</a> - Networking</p>`)
	assert.Contains(t, index, `<p><a href="Shape.html">Shape</a> - Geometry</p>`)
	assert.Contains(t, index, "<p><b>Module net Example(s)</b></p>")
	assert.Contains(t, index, `<p><a href="net.html#example-dial">Example: Dial</a></p>`)
	assert.Contains(t, index, `<p><a href="guide.html">guide</a> - Guide</p>`)

	page := readFile(t, filepath.Join(out, "net.html"))
	assert.Contains(t, page, "<title>net</title>")
	assert.Contains(t, page, `<a href="index.html"><img src="gomdoc_home.png" alt="Home" class="w3-round"></a>`)
	assert.Contains(t, page, `<div class="w3-container w3-cell w3-mobile w3-black">`)
	assert.Contains(t, page, `<a href="#dial">Dial</a><br>`)
	assert.Contains(t, page, "<h2>Networking</h2>")
	assert.Contains(t, page, `<h5 id="example-dial" class="w3-text-blue">Example: Dial</h5>`)
	assert.Contains(t, page, `<h3 id="dial" class="w3-text-blue">Dial</h3>`)
	assert.Contains(t, page, "<p>Dials.</p>")
	assert.Contains(t, page, "int Dial(void);<br>")
	assert.Contains(t, page, "<p><b>Notes</b></p>")

	guide := readFile(t, filepath.Join(out, "guide.html"))
	assert.Contains(t, guide, `<a href="#install-steps">Install&nbsp;Steps</a><br>`)
	assert.Contains(t, guide, `<h2 id="install-steps" class="w3-text-blue">Install Steps</h2>`)
}

func TestWriteHTML_Options(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		doc         func() *docmodel.Document
		opts        render.Options
		wantFiles   []string
		absentFiles []string
		contains    map[string]string
	}

	single := func() *docmodel.Document {
		doc := docmodel.New(docmodel.Options{})
		doc.AddModule(netModule(), false)
		return doc
	}

	tests := []testCase{
		{
			name:        "single page has no index",
			doc:         single,
			wantFiles:   []string{"net.html"},
			absentFiles: []string{"index.html"},
			contains:    map[string]string{"net.html": `<p><img src="gomdoc_home.png"`},
		},
		{
			name:        "no index",
			doc:         fullDoc,
			opts:        render.Options{NoIndex: true},
			wantFiles:   []string{"net.html", "guide.html"},
			absentFiles: []string{"index.html"},
		},
		{
			name:      "local css",
			doc:       single,
			opts:      render.Options{LocalCSS: true},
			wantFiles: []string{"net.html", "w3.css"},
			contains:  map[string]string{"net.html": `<link rel="stylesheet" href="w3.css">`},
		},
		{
			name: "custom logo and font",
			doc: func() *docmodel.Document {
				doc := single()
				doc.MainPage = &docmodel.Section{Title: "Main", Style: docmodel.Style{
					Logo:     `![Logo](logo.png)`,
					FontBody: "Georgia",
					Version:  "2.0",
				}}
				return doc
			},
			wantFiles:   []string{"index.html", "net.html"},
			absentFiles: []string{"gomdoc_home.png"},
			contains: map[string]string{
				"net.html":   `<a href="index.html"><img src="logo.png" alt="Logo"></a>`,
				"index.html": "<center><p>version 2.0</p></center>",
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out := t.TempDir()
			opts := testCase.opts
			opts.Output = out

			_, err := render.WriteHTML(context.Background(), testCase.doc(), opts)
			require.NoError(t, err)

			for _, name := range testCase.wantFiles {
				assert.FileExists(t, filepath.Join(out, name))
			}
			for _, name := range testCase.absentFiles {
				assert.NoFileExists(t, filepath.Join(out, name))
			}
			for name, want := range testCase.contains {
				assert.Contains(t, readFile(t, filepath.Join(out, name)), want)
			}
		})
	}
}

func TestWriteHTML_FontStyle(t *testing.T) {
	t.Parallel()

	doc := docmodel.New(docmodel.Options{})
	mod := netModule()
	mod.Style = docmodel.Style{FontBody: "Georgia", FontHeadings: "Arial"}
	doc.AddModule(mod, false)

	out := t.TempDir()
	_, err := render.WriteHTML(context.Background(), doc, render.Options{Output: out})
	require.NoError(t, err)

	assert.Contains(t, readFile(t, filepath.Join(out, "net.html")),
		"<style>body{font-family:Georgia}h1,h2,h3,h4,h5,h6{font-family:Arial}</style>")
}

func TestWriteHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := render.WriteHTML(ctx, fullDoc(), render.Options{Output: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}
