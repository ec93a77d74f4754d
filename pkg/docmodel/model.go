// Package docmodel defines the document model assembled during extraction and
// consumed by the renderers.
package docmodel

// Style holds the per-section presentation overrides. Empty fields inherit.
type Style struct {
	BarColor     string `json:"bar_color,omitempty"     yaml:"bar_color,omitempty"`
	TitleColor   string `json:"title_color,omitempty"   yaml:"title_color,omitempty"`
	HeadingColor string `json:"heading_color,omitempty" yaml:"heading_color,omitempty"`
	FontBody     string `json:"font_body,omitempty"     yaml:"font_body,omitempty"`
	FontHeadings string `json:"font_headings,omitempty" yaml:"font_headings,omitempty"`
	Logo         string `json:"logo,omitempty"          yaml:"logo,omitempty"`
	Version      string `json:"version,omitempty"       yaml:"version,omitempty"`
}

// Example is a cross reference to an @example block. The example's code stays
// inline in the owning section's text.
type Example struct {
	// Title always begins with "Example: ".
	Title string `json:"title" yaml:"title"`
}

// Section is the part shared by the main page, modules, classes and Markdown
// documents.
type Section struct {
	Title    string     `json:"title"              yaml:"title"`
	Subtitle string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Text     string     `json:"text,omitempty"     yaml:"text,omitempty"`
	Style    Style      `json:"style"              yaml:"style"`
	Examples []*Example `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// AddExample appends an example titled title.
func (s *Section) AddExample(title string) *Example {
	ex := &Example{Title: title}
	s.Examples = append(s.Examples, ex)
	return ex
}

// Function is a documented function owned by a module or class.
type Function struct {
	Name      string `json:"name"               yaml:"name"`
	Brief     string `json:"brief,omitempty"    yaml:"brief,omitempty"`
	Prototype string `json:"prototype"          yaml:"prototype"`
	Notes     string `json:"notes,omitempty"    yaml:"notes,omitempty"`
	Language  string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Module is a module (@defgroup) or a class (@class).
type Module struct {
	Section   `yaml:",inline"`
	Functions []*Function `json:"functions,omitempty" yaml:"functions,omitempty"`

	// Stub is set while the module is known only from @ingroup or @inclass.
	Stub bool `json:"stub,omitempty" yaml:"stub,omitempty"`
}

// HasContent reports whether a definition gave m a subtitle or text. Only
// such a module makes a later definition of the same title a duplicate.
func (m *Module) HasContent() bool {
	return m.Subtitle != "" || m.Text != ""
}

// MdHeading is a level 2 to 6 heading of a Markdown document.
type MdHeading struct {
	Title string `json:"title" yaml:"title"`
	Level int    `json:"level" yaml:"level"`
}

// MarkdownDocument is a standalone Markdown file.
type MarkdownDocument struct {
	Section  `yaml:",inline"`
	Path     string      `json:"path"               yaml:"path"`
	Content  string      `json:"-"                  yaml:"-"`
	Headings []MdHeading `json:"headings,omitempty" yaml:"headings,omitempty"`
}

// ImageReference is an image link as written in Markdown.
type ImageReference struct {
	Link string `json:"link" yaml:"link"`
}

// IsLocal reports whether the link is a bare file name.
func (r ImageReference) IsLocal() bool {
	for i := range len(r.Link) {
		if r.Link[i] == '/' {
			return false
		}
	}
	return true
}

// InputImageFile is an image found among the inputs.
type InputImageFile struct {
	Path       string `json:"path"       yaml:"path"`
	Referenced bool   `json:"referenced" yaml:"referenced"`
}

// Options controls how the document is assembled.
type Options struct {
	// Sort orders modules, classes, functions and documents
	// alphabetically, ignoring ASCII case. Otherwise encounter order is kept.
	Sort bool `json:"sort" yaml:"sort"`
}

// Document is the result of a parse session.
type Document struct {
	Options Options `json:"options" yaml:"options"`

	MainPage   *Section            `json:"mainpage,omitempty"    yaml:"mainpage,omitempty"`
	Modules    []*Module           `json:"modules,omitempty"     yaml:"modules,omitempty"`
	Classes    []*Module           `json:"classes,omitempty"     yaml:"classes,omitempty"`
	Documents  []*MarkdownDocument `json:"documents,omitempty"   yaml:"documents,omitempty"`
	Images     []ImageReference    `json:"images,omitempty"      yaml:"images,omitempty"`
	ImageFiles []*InputImageFile   `json:"image_files,omitempty" yaml:"image_files,omitempty"`

	// Files counts the inputs dispatched to a parser; DocComments counts the
	// doc comment headers found in them.
	Files       int `json:"files"        yaml:"files"`
	DocComments int `json:"doc_comments" yaml:"doc_comments"`
}

// New returns an empty document.
func New(opts Options) *Document {
	return &Document{Options: opts}
}
