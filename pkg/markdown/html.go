package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/gomdoc/pkg/slug"
)

// Anchor is a heading id handed out during conversion.
type Anchor struct {
	// Title is the heading text as written.
	Title string
	ID    string
}

// Converter renders Markdown to HTML. Heading anchors come from the shared
// slug set so that anchors stay unique across every fragment converted.
type Converter struct {
	md      goldmark.Markdown
	ids     *headingIDs
	options converterOptions
}

type converterOptions struct {
	headingClass string
}

// ConverterOption configures a Converter.
type ConverterOption func(*converterOptions)

// WithHeadingClass sets the class attribute of every heading, e.g. a W3.CSS
// text color.
func WithHeadingClass(class string) ConverterOption {
	return func(o *converterOptions) {
		o.headingClass = class
	}
}

// NewConverter returns a Converter that numbers anchors through slugs.
// A nil slugs starts a fresh set.
func NewConverter(slugs *slug.Set, opts ...ConverterOption) *Converter {
	if slugs == nil {
		slugs = slug.NewSet()
	}

	var options converterOptions
	for _, opt := range opts {
		opt(&options)
	}

	gmOpts := []goldmark.Option{goldmark.WithRendererOptions(html.WithUnsafe())}
	if options.headingClass != "" {
		gmOpts = append(gmOpts, goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(&headingClass{class: options.headingClass}, 100)),
		))
	}

	return &Converter{
		md:      newGFM(gmOpts...),
		ids:     &headingIDs{slugs: slugs},
		options: options,
	}
}

// ToHTML converts src to an HTML fragment.
func (c *Converter) ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(c.ids))
	if err := c.md.Convert([]byte(src), &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Anchors returns the heading anchors generated so far, in document order.
func (c *Converter) Anchors() []Anchor {
	out := make([]Anchor, len(c.ids.anchors))
	copy(out, c.ids.anchors)
	return out
}

// ToHTML converts src with a fresh anchor set.
func ToHTML(src string) (string, error) {
	return NewConverter(nil).ToHTML(src)
}

// headingIDs adapts a slug.Set to goldmark's parser.IDs.
type headingIDs struct {
	slugs   *slug.Set
	anchors []Anchor
}

func (ids *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	id := ids.slugs.Add(string(value))
	ids.anchors = append(ids.anchors, Anchor{Title: string(value), ID: id})
	return []byte(id)
}

func (ids *headingIDs) Put(value []byte) {
	ids.slugs.Reserve(string(value))
}

// headingClass sets a class attribute on every heading.
type headingClass struct {
	class string
}

func (h *headingClass) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if heading, ok := node.(*ast.Heading); ok && entering {
			heading.SetAttributeString("class", []byte(h.class))
		}
		return ast.WalkContinue, nil
	})
}
