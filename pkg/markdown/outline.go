package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// OutlineHeading is a heading found in a Markdown document.
type OutlineHeading struct {
	Level int
	Text  string

	// Offset is the byte offset of the heading text in the source, or -1
	// for a heading without text.
	Offset int
}

// Outline returns the headings of src in document order. Headings inside code
// blocks, block quotes and lists are not part of the outline.
func Outline(src []byte) []OutlineHeading {
	doc := newGFM().Parser().Parse(text.NewReader(src))

	var headings []OutlineHeading
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok {
			continue
		}
		headings = append(headings, outlineHeading(heading, src))
	}
	return headings
}

func outlineHeading(heading *ast.Heading, src []byte) OutlineHeading {
	lines := heading.Lines()
	if lines.Len() == 0 {
		return OutlineHeading{Level: heading.Level, Offset: -1}
	}

	var buf bytes.Buffer
	for i := range lines.Len() {
		seg := lines.At(i)
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.Write(bytes.TrimSpace(seg.Value(src)))
	}

	return OutlineHeading{
		Level:  heading.Level,
		Text:   strings.TrimSpace(buf.String()),
		Offset: lines.At(0).Start,
	}
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGFM(opts ...goldmark.Option) goldmark.Markdown {
	opts = append([]goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, opts...)
	return goldmark.New(opts...)
}
