package render

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/keyword"
	"github.com/yaklabco/gomdoc/pkg/markdown"
)

const maxHeadingLevel = 6

// WriteMarkdown writes doc to <Output>/<Name>.md and copies the referenced
// images next to it.
func WriteMarkdown(ctx context.Context, doc *docmodel.Document, opts Options) (*Result, error) {
	w := newWriter(opts)
	if !w.prepare() {
		return &w.result, nil
	}

	name := projectName(opts)
	path := filepath.Join(opts.Output, name+".md")
	logging.FromContext(ctx).Debug("writing markdown", logging.FieldPath, path)

	if w.claim(path) {
		if err := w.write(ctx, path, []byte(Markdown(doc, name))); err != nil {
			return nil, err
		}
	}
	if err := w.copyImages(ctx, doc); err != nil {
		return nil, err
	}
	return &w.result, nil
}

// Markdown returns doc as one Markdown file. name titles the synthetic
// project heading written when there is no mainpage.
func Markdown(doc *docmodel.Document, name string) string {
	var b strings.Builder
	level := 0

	if main := doc.MainPage; main != nil {
		writeMainPage(&b, main, doc.StyleFor(main).Version)
		level++
	} else if doc.PageCount() != 1 {
		stats := doc.ComputeStats()
		fmt.Fprintf(&b, "# Project %s\n\n", name)
		fmt.Fprintf(&b, "%d Modules\n", stats.Modules)
		fmt.Fprintf(&b, "%d Classes\n", stats.Classes)
		fmt.Fprintf(&b, "%d Markdown Documents\n", stats.Documents)
		fmt.Fprintf(&b, "%d Examples\n\n", stats.Examples)
		level++
	}

	for _, m := range doc.Modules {
		writeModule(&b, m, "", level)
	}
	for _, c := range doc.Classes {
		writeModule(&b, c, "Class ", level)
	}
	for i, md := range doc.Documents {
		writeDocument(&b, md, level, i < len(doc.Documents)-1)
	}

	return b.String()
}

func writeMainPage(b *strings.Builder, main *docmodel.Section, version string) {
	fmt.Fprintf(b, "# %s\n\n", main.Title)
	if main.Subtitle != "" {
		fmt.Fprintf(b, "%s\n\n", main.Subtitle)
	}
	if version != "" {
		fmt.Fprintf(b, "version %s\n\n", version)
	}
	if main.Text != "" {
		writeText(b, main.Text)
		b.WriteByte('\n')
	}
}

func writeModule(b *strings.Builder, m *docmodel.Module, prefix string, level int) {
	level++
	fmt.Fprintf(b, "%s %s%s\n\n", hashes(level), prefix, m.Title)
	if m.Subtitle != "" {
		fmt.Fprintf(b, "%s\n\n", m.Subtitle)
	}
	if m.Text != "" {
		writeText(b, m.Text)
		b.WriteByte('\n')
	}

	level++
	for _, fn := range m.Functions {
		fmt.Fprintf(b, "%s %s\n\n", hashes(level), fn.Name)
		if fn.Brief != "" {
			fmt.Fprintf(b, "%s\n\n", fn.Brief)
		}
		if fn.Prototype != "" {
			fmt.Fprintf(b, "%s Prototype\n\n", hashes(level+1))
			fmt.Fprintf(b, "```%s\n%s", fn.Language, fn.Prototype)
			if !strings.HasSuffix(fn.Prototype, "\n") {
				b.WriteByte('\n')
			}
			b.WriteString("```\n\n")
		}
		if fn.Notes != "" {
			fmt.Fprintf(b, "%s Notes\n\n", hashes(level+1))
			writeText(b, fn.Notes)
			b.WriteByte('\n')
		}
	}
}

// writeDocument copies a Markdown document with every heading pushed down
// by level. A blank line separates it from the next one.
func writeDocument(b *strings.Builder, md *docmodel.MarkdownDocument, level int, more bool) {
	content := md.Content
	if level == 0 {
		b.WriteString(content)
	} else {
		for off := 0; off < len(content); {
			if next := markdown.CodeBlockEnd(content, off, len(content)); next > off {
				b.WriteString(content[off:next])
				off = next
				continue
			}

			next := markdown.NextLine(content, off)
			line := content[off:next]
			if n, _, ok := markdown.Heading(markdown.Line(content, off)); ok {
				rest := strings.TrimLeft(strings.TrimLeft(line, " "), "#")
				line = hashes(n+level) + rest
			}
			b.WriteString(line)
			off = next
		}
	}

	if !more || content == "" {
		return
	}
	if !strings.HasSuffix(content, "\n") {
		b.WriteByte('\n')
	}
	if !strings.HasSuffix(content, "\n\n") {
		b.WriteByte('\n')
	}
}

// writeText copies section text, turning @example lines into bold titles.
func writeText(b *strings.Builder, text string) {
	for _, line := range markdown.SplitLines(text) {
		if title, ok := exampleTitle(line); ok {
			fmt.Fprintf(b, "**Example: %s**\n", title)
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// exampleTitle returns the title of an @example line.
func exampleTitle(line string) (string, bool) {
	kw, arg, ok := keyword.Match(line)
	if !ok || kw != keyword.Example {
		return "", false
	}
	return strings.TrimSpace(line[arg:]), true
}

func hashes(level int) string {
	return strings.Repeat("#", min(max(level, 1), maxHeadingLevel))
}
