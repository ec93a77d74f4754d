package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html"
	"html/template"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/yaklabco/gomdoc/internal/logging"
	"github.com/yaklabco/gomdoc/pkg/docmodel"
	"github.com/yaklabco/gomdoc/pkg/markdown"
	"github.com/yaklabco/gomdoc/pkg/slug"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once, read-only.
var pageTemplates = template.Must(template.New("pages").ParseFS(templateFS, "templates/*.html.tmpl"))

type pageView struct {
	Title      string
	Subtitle   string
	CSS        string
	Font       template.CSS
	TitleColor string
	Logo       template.HTML
	Version    string
	Text       template.HTML
}

type indexView struct {
	Page    pageView
	Columns []indexColumn
}

type indexColumn struct {
	Heading string
	Groups  []indexGroup
}

type indexGroup struct {
	Label string
	Links []indexLink
}

type indexLink struct {
	Href     string
	Title    string
	Subtitle string
}

// sectionView is a module, class or document page.
type sectionView struct {
	Page         pageView
	BarColor     string
	HeadingColor string
	Subtitle     string
	Links        []sideLink
	Functions    []functionView
}

type sideLink struct {
	Href  string
	Title template.HTML
}

type functionView struct {
	ID        string
	Name      string
	Brief     string
	Prototype []string
	Notes     template.HTML
}

// htmlPage is a page ready to be executed and written.
type htmlPage struct {
	path     string
	template string
	data     any
}

// site collects the pages of one HTML build.
type site struct {
	doc   *docmodel.Document
	opts  Options
	index bool

	// examples maps an example title on a page to its anchor.
	examples map[string]map[string]string

	usesHomeLogo bool
}

// WriteHTML writes one page per module, class and document plus index.html,
// then the assets the pages link to and the referenced images.
func WriteHTML(ctx context.Context, doc *docmodel.Document, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	w := newWriter(opts)
	if !w.prepare() {
		return &w.result, nil
	}

	s := &site{
		doc:      doc,
		opts:     opts,
		index:    !opts.NoIndex && (doc.MainPage != nil || doc.PageCount() != 1),
		examples: make(map[string]map[string]string),
	}

	pages, err := s.pages()
	if err != nil {
		return nil, err
	}
	if opts.LocalCSS {
		pages = append(pages, htmlPage{path: w3CSSName, data: w3CSS})
	}
	if s.usesHomeLogo {
		pages = append(pages, htmlPage{path: homeLogoName, data: homeLogo})
	}

	var claimed []htmlPage
	for _, page := range pages {
		page.path = filepath.Join(opts.Output, page.path)
		if w.claim(page.path) {
			claimed = append(claimed, page)
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	logger.Debug("writing html", logging.FieldOutput, opts.Output, logging.FieldPages, len(claimed), logging.FieldJobs, jobs)

	p := pool.New().WithMaxGoroutines(jobs).WithErrors().WithContext(ctx)
	for _, page := range claimed {
		p.Go(func(ctx context.Context) error {
			content, err := page.render()
			if err != nil {
				return err
			}
			return w.write(ctx, page.path, content)
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	w.result.Written = orderLike(w.result.Written, claimed)

	if err := w.copyImages(ctx, doc); err != nil {
		return nil, err
	}
	return &w.result, nil
}

func (p htmlPage) render() ([]byte, error) {
	if raw, ok := p.data.([]byte); ok {
		return raw, nil
	}
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, p.template, p.data); err != nil {
		return nil, fmt.Errorf("render %s: %w", filepath.Base(p.path), err)
	}
	return buf.Bytes(), nil
}

// orderLike sorts written into the order of pages.
func orderLike(written []string, pages []htmlPage) []string {
	done := make(map[string]bool, len(written))
	for _, path := range written {
		done[path] = true
	}
	out := make([]string, 0, len(written))
	for _, page := range pages {
		if done[page.path] {
			out = append(out, page.path)
		}
	}
	return out
}

// pages builds every page. The index comes last since it links to the
// example anchors generated for the other pages.
func (s *site) pages() ([]htmlPage, error) {
	var pages []htmlPage

	for _, m := range s.doc.Modules {
		page, err := s.modulePage(m)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	for _, c := range s.doc.Classes {
		page, err := s.modulePage(c)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	for _, md := range s.doc.Documents {
		page, err := s.documentPage(md)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	if s.index {
		page, err := s.indexPage()
		if err != nil {
			return nil, err
		}
		pages = append([]htmlPage{page}, pages...)
	}
	return pages, nil
}

func (s *site) modulePage(m *docmodel.Module) (htmlPage, error) {
	style := s.doc.StyleFor(&m.Section)
	slugs := slug.NewSet()
	conv := markdown.NewConverter(slugs, markdown.WithHeadingClass(style.HeadingColor))

	view := sectionView{
		BarColor:     style.BarColor,
		HeadingColor: style.HeadingColor,
		Subtitle:     m.Subtitle,
	}
	for _, fn := range m.Functions {
		id := slugs.Add(fn.Name)
		view.Links = append(view.Links, sideLink{Href: "#" + id, Title: template.HTML(html.EscapeString(fn.Name))}) //nolint:gosec // Escaped.
		view.Functions = append(view.Functions, functionView{
			ID:        id,
			Name:      fn.Name,
			Brief:     fn.Brief,
			Prototype: prototypeLines(fn.Prototype),
		})
	}

	text, err := conv.ToHTML(htmlText(m.Text))
	if err != nil {
		return htmlPage{}, err
	}
	for i, fn := range m.Functions {
		if fn.Notes == "" {
			continue
		}
		notes, err := conv.ToHTML(htmlText(fn.Notes))
		if err != nil {
			return htmlPage{}, err
		}
		view.Functions[i].Notes = template.HTML(notes) //nolint:gosec // Converter output.
	}

	file := pageFile(m.Title)
	s.recordExamples(file, &m.Section, conv.Anchors())
	view.Page = s.pageView(&m.Section, style, false)
	view.Page.Subtitle = ""
	view.Page.Text = template.HTML(text) //nolint:gosec // Converter output.

	return htmlPage{path: file, template: "module", data: view}, nil
}

func (s *site) documentPage(md *docmodel.MarkdownDocument) (htmlPage, error) {
	style := s.doc.StyleFor(&md.Section)
	conv := markdown.NewConverter(slug.NewSet(), markdown.WithHeadingClass(style.HeadingColor))

	text, err := conv.ToHTML(htmlText(md.Text))
	if err != nil {
		return htmlPage{}, err
	}
	anchors := conv.Anchors()

	view := sectionView{BarColor: style.BarColor, HeadingColor: style.HeadingColor}
	next := 0
	for _, h := range md.Headings {
		for i := next; i < len(anchors); i++ {
			if anchors[i].Title != h.Title {
				continue
			}
			title := strings.ReplaceAll(html.EscapeString(h.Title), " ", "&nbsp;")
			view.Links = append(view.Links, sideLink{Href: "#" + anchors[i].ID, Title: template.HTML(title)}) //nolint:gosec // Escaped.
			next = i + 1
			break
		}
	}

	file := pageFile(md.Title)
	s.recordExamples(file, &md.Section, anchors)
	view.Page = s.pageView(&md.Section, style, false)
	view.Page.Subtitle = ""
	view.Page.Text = template.HTML(text) //nolint:gosec // Converter output.

	return htmlPage{path: file, template: "document", data: view}, nil
}

func (s *site) indexPage() (htmlPage, error) {
	section := s.doc.MainPage
	if section == nil {
		section = &docmodel.Section{Title: "Table of Contents"}
	}
	style := s.doc.StyleFor(section)
	conv := markdown.NewConverter(slug.NewSet(), markdown.WithHeadingClass(style.HeadingColor))

	text, err := conv.ToHTML(htmlText(section.Text))
	if err != nil {
		return htmlPage{}, err
	}
	s.recordExamples(indexName, section, conv.Anchors())

	view := indexView{Page: s.pageView(section, style, true), Columns: s.indexColumns()}
	view.Page.Text = template.HTML(text) //nolint:gosec // Converter output.

	return htmlPage{path: indexName, template: "index", data: view}, nil
}

func (s *site) pageView(section *docmodel.Section, style docmodel.Style, main bool) pageView {
	view := pageView{
		Title:      section.Title,
		Subtitle:   section.Subtitle,
		CSS:        w3CSSCDN,
		Font:       fontCSS(style),
		TitleColor: style.TitleColor,
		Version:    style.Version,
	}
	if s.opts.LocalCSS {
		view.CSS = w3CSSName
	}
	if main {
		view.TitleColor = style.BarColor
	}

	logo := style.Logo
	if logo == docmodel.DefaultLogo {
		s.usesHomeLogo = true
	}
	link := ""
	if s.index && !main {
		link = indexName
	}
	view.Logo = logoHTML(logo, link)
	return view
}

// indexColumns lays out at most three columns. Modules and classes share
// one when examples and documents are present too.
func (s *site) indexColumns() []indexColumn {
	stats := s.doc.ComputeStats()
	modules := indexGroup{Label: count(stats.Modules, "Module", "Modules"), Links: s.moduleLinks(s.doc.Modules)}
	classes := indexGroup{Label: count(stats.Classes, "Class", "Classes"), Links: s.moduleLinks(s.doc.Classes)}

	var columns []indexColumn
	if stats.Modules > 0 && stats.Classes > 0 && stats.Examples > 0 && stats.Documents > 0 {
		columns = append(columns, indexColumn{Heading: "Modules & Classes", Groups: []indexGroup{modules, classes}})
	} else {
		if stats.Modules > 0 {
			columns = append(columns, indexColumn{Heading: "Modules", Groups: []indexGroup{modules}})
		}
		if stats.Classes > 0 {
			columns = append(columns, indexColumn{Heading: "Classes", Groups: []indexGroup{classes}})
		}
	}
	if stats.Examples > 0 {
		columns = append(columns, indexColumn{Heading: "Examples", Groups: s.exampleGroups(stats.Examples)})
	}
	if stats.Documents > 0 {
		group := indexGroup{Label: count(stats.Documents, "Document", "Documents")}
		for _, md := range s.doc.Documents {
			group.Links = append(group.Links, indexLink{Href: pageHref(md.Title), Title: md.Title, Subtitle: md.Subtitle})
		}
		columns = append(columns, indexColumn{Heading: "Documents", Groups: []indexGroup{group}})
	}
	return columns
}

func (s *site) moduleLinks(list []*docmodel.Module) []indexLink {
	links := make([]indexLink, 0, len(list))
	for _, m := range list {
		links = append(links, indexLink{Href: pageHref(m.Title), Title: m.Title, Subtitle: m.Subtitle})
	}
	return links
}

func (s *site) exampleGroups(total int) []indexGroup {
	groups := []indexGroup{{Label: count(total, "Example", "Examples")}}
	add := func(label, file string, section *docmodel.Section) {
		if len(section.Examples) == 0 {
			return
		}
		group := indexGroup{Label: label + " Example(s)"}
		for _, ex := range section.Examples {
			href := url.PathEscape(file)
			if id := s.examples[file][ex.Title]; id != "" {
				href += "#" + id
			}
			group.Links = append(group.Links, indexLink{Href: href, Title: ex.Title})
		}
		groups = append(groups, group)
	}

	if s.doc.MainPage != nil {
		add("Main Page", indexName, s.doc.MainPage)
	}
	for _, m := range s.doc.Modules {
		add("Module "+m.Title, pageFile(m.Title), &m.Section)
	}
	for _, c := range s.doc.Classes {
		add("Class "+c.Title, pageFile(c.Title), &c.Section)
	}
	for _, md := range s.doc.Documents {
		add("Document "+md.Title, pageFile(md.Title), &md.Section)
	}
	return groups
}

// recordExamples maps the examples of section to the anchors generated on
// file, matching titles in document order.
func (s *site) recordExamples(file string, section *docmodel.Section, anchors []markdown.Anchor) {
	ids := make(map[string]string, len(section.Examples))
	next := 0
	for _, ex := range section.Examples {
		for i := next; i < len(anchors); i++ {
			if anchors[i].Title == ex.Title {
				ids[ex.Title] = anchors[i].ID
				next = i + 1
				break
			}
		}
	}
	s.examples[file] = ids
}

// htmlText prepares section text for conversion: @example lines become
// headings so the index can link to them.
func htmlText(text string) string {
	var b strings.Builder
	for _, line := range markdown.SplitLines(text) {
		if title, ok := exampleTitle(line); ok {
			fmt.Fprintf(&b, "\n##### Example: %s\n\n", title)
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func prototypeLines(prototype string) []string {
	if prototype == "" {
		return nil
	}
	return markdown.SplitLines(strings.TrimRight(prototype, "\r\n"))
}

func fontCSS(style docmodel.Style) template.CSS {
	if style.FontBody == "" {
		return ""
	}
	css := "body{font-family:" + style.FontBody + "}"
	if style.FontHeadings != "" {
		css += "h1,h2,h3,h4,h5,h6{font-family:" + style.FontHeadings + "}"
	}
	return template.CSS(css) //nolint:gosec // Font names come from the author's own doc comments.
}

// logoHTML turns a Markdown image into an <img>, linked to href when set.
// The image title becomes its class.
func logoHTML(logo, href string) template.HTML {
	img, ok := markdown.ParseImage(logo)
	if !ok {
		img, _ = markdown.ParseImage(docmodel.DefaultLogo)
	}

	tag := fmt.Sprintf(`<img src="%s" alt="%s"`, html.EscapeString(img.Link), html.EscapeString(img.Alt))
	if img.Title != "" {
		tag += fmt.Sprintf(` class="%s"`, html.EscapeString(img.Title))
	}
	tag += ">"
	if href != "" {
		tag = fmt.Sprintf(`<a href="%s">%s</a>`, href, tag)
	}
	return template.HTML(tag) //nolint:gosec // Escaped.
}

func count(n int, singular, pluralWord string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, pluralWord)
}

func pageFile(title string) string {
	return title + ".html"
}

func pageHref(title string) string {
	return url.PathEscape(pageFile(title))
}
