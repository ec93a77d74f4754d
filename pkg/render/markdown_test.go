package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdoc/pkg/config"
	"github.com/yaklabco/gomdoc/pkg/diag"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/render"
)

func netModule() *docmodel.Module {
	m := &docmodel.Module{Section: docmodel.Section{
		Title:    "net",
		Subtitle: "Networking",
		Text:     "Sockets.  \n\n@example Dial  \n\n    dial();\n",
	}}
	m.AddExample("Example: Dial")
	m.Functions = []*docmodel.Function{{
		Name:      "Dial",
		Brief:     "Dials.",
		Prototype: "int Dial(void);\n",
		Notes:     "Returns 0.  \n",
		Language:  "c",
	}}
	return m
}

func TestMarkdown_SingleModule(t *testing.T) {
	t.Parallel()

	doc := docmodel.New(docmodel.Options{})
	doc.AddModule(netModule(), false)

	want := "# net\n\nNetworking\n\n" +
		"Sockets.  \n\n**Example: Dial**\n\n    dial();\n\n" +
		"## Dial\n\nDials.\n\n" +
		"### Prototype\n\n```c\nint Dial(void);\n```\n\n" +
		"### Notes\n\nReturns 0.  \n\n"
	assert.Equal(t, want, render.Markdown(doc, "demo"))
}

func TestMarkdown_ProjectHeader(t *testing.T) {
	t.Parallel()

	doc := docmodel.New(docmodel.Options{})
	doc.AddModule(&docmodel.Module{Section: docmodel.Section{Title: "alpha"}}, false)
	doc.AddModule(&docmodel.Module{Section: docmodel.Section{Title: "beta"}}, false)
	doc.AddModule(&docmodel.Module{Section: docmodel.Section{Title: "Shape"}}, true)
	doc.AddDocument(&docmodel.MarkdownDocument{
		Section: docmodel.Section{Title: "guide"},
		Content: "# Guide\n\n```\n# not a heading\n```\n\n## Part\nText\n",
	})
	doc.AddDocument(&docmodel.MarkdownDocument{
		Section: docmodel.Section{Title: "notes"},
		Content: "Last",
	})

	out := render.Markdown(doc, "demo")
	assert.Equal(t, "# Project demo\n\n"+
		"2 Modules\n1 Classes\n2 Markdown Documents\n0 Examples\n\n"+
		"## alpha\n\n## beta\n\n## Class Shape\n\n"+
		"## Guide\n\n```\n# not a heading\n```\n\n### Part\nText\n\n"+
		"Last", out)
}

func TestMarkdown_MainPage(t *testing.T) {
	t.Parallel()

	doc := docmodel.New(docmodel.Options{})
	doc.MainPage = &docmodel.Section{
		Title:    "Main",
		Subtitle: "All about it",
		Text:     "Welcome.  \n",
		Style:    docmodel.Style{Version: "1.2"},
	}
	doc.AddModule(netModule(), false)

	out := render.Markdown(doc, "demo")
	assert.Contains(t, out, "# Main\n\nAll about it\n\nversion 1.2\n\nWelcome.  \n\n## net\n\n")
	assert.Contains(t, out, "### Dial\n\n")
	assert.Contains(t, out, "#### Prototype\n\n")
	assert.NotContains(t, out, "# Project")
}

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	lake := filepath.Join(dir, "lake.png")
	require.NoError(t, os.WriteFile(lake, []byte("png"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sea.png"), []byte("png"), 0o600))

	doc := docmodel.New(docmodel.Options{})
	doc.AddModule(netModule(), false)
	doc.AddImageFile(lake)
	doc.AddImageFile(filepath.Join(dir, "sea.png"))
	doc.ImageFiles[0].Referenced = true

	out := filepath.Join(dir, "site")
	result, err := render.Write(context.Background(), doc, render.Options{
		Output: out,
		Format: config.FormatMarkdown,
	})
	require.NoError(t, err)

	mdPath := filepath.Join(out, "site.md")
	assert.Equal(t, []string{mdPath}, result.Written)
	assert.Equal(t, []string{filepath.Join(out, "lake.png")}, result.Copied)

	content, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, render.Markdown(doc, "site"), string(content))
	assert.NoFileExists(t, filepath.Join(out, "sea.png"))
}

func TestWriteMarkdown_Confirm(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	mdPath := filepath.Join(out, "api.md")
	require.NoError(t, os.WriteFile(mdPath, []byte("keep"), 0o600))

	doc := docmodel.New(docmodel.Options{})
	doc.AddModule(netModule(), false)

	var asked []string
	result, err := render.WriteMarkdown(context.Background(), doc, render.Options{
		Output: out,
		Name:   "api",
		Confirm: func(path string) bool {
			asked = append(asked, path)
			return false
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{mdPath}, asked)
	assert.Equal(t, []string{mdPath}, result.Skipped)
	assert.Empty(t, result.Written)

	content, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(content))
}

func TestWrite_CreateFolderFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	sink := diag.NewSink(nil)
	doc := docmodel.New(docmodel.Options{})
	doc.AddModule(netModule(), false)

	for _, format := range []config.OutputFormat{config.FormatHTML, config.FormatMarkdown} {
		result, err := render.Write(context.Background(), doc, render.Options{
			Output: filepath.Join(blocker, "out"),
			Format: format,
			Sink:   sink,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Written)
	}
	assert.Equal(t, 2, sink.CountByCode(diag.CreateFolder))
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := render.Write(context.Background(), docmodel.New(docmodel.Options{}), render.Options{
		Output: t.TempDir(),
		Format: "pdf",
	})
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}
