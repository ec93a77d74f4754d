package docmodel

import (
	"path"
	"slices"
	"strings"
)

// FindModule returns the entry of list titled name, ignoring ASCII case.
func FindModule(list []*Module, name string) *Module {
	for _, m := range list {
		if EqualFold(m.Title, name) {
			return m
		}
	}
	return nil
}

// Collection returns the class list when class is set, else the module list.
func (d *Document) Collection(class bool) []*Module {
	if class {
		return d.Classes
	}
	return d.Modules
}

// AddModule inserts m into the module or class list.
func (d *Document) AddModule(m *Module, class bool) {
	if class {
		d.Classes = insert(d.Classes, m, d.Options.Sort, func(x *Module) string { return x.Title })
		return
	}
	d.Modules = insert(d.Modules, m, d.Options.Sort, func(x *Module) string { return x.Title })
}

// AddDocument inserts a Markdown document.
func (d *Document) AddDocument(doc *MarkdownDocument) {
	d.Documents = insert(d.Documents, doc, d.Options.Sort, func(x *MarkdownDocument) string { return x.Title })
}

// AddFunction inserts fn into the function list of m.
func (d *Document) AddFunction(m *Module, fn *Function) {
	m.Functions = insert(m.Functions, fn, d.Options.Sort, func(x *Function) string { return x.Name })
}

// AddImageFile registers a candidate image found among the inputs.
func (d *Document) AddImageFile(p string) {
	d.ImageFiles = append(d.ImageFiles, &InputImageFile{Path: p})
}

// FindImageFile returns the first input image whose base name equals name.
func (d *Document) FindImageFile(name string) *InputImageFile {
	for _, img := range d.ImageFiles {
		if path.Base(toSlash(img.Path)) == name {
			return img
		}
	}
	return nil
}

// insert appends item, or places it after every entry that sorts before or
// equal to it when sorted is set.
func insert[T any](list []T, item T, sorted bool, key func(T) string) []T {
	if !sorted {
		return append(list, item)
	}
	k := key(item)
	idx := len(list)
	for i, existing := range list {
		if CompareFold(k, key(existing)) < 0 {
			idx = i
			break
		}
	}
	return slices.Insert(list, idx, item)
}

// EqualFold compares a and b ignoring ASCII case only.
func EqualFold(a, b string) bool {
	return len(a) == len(b) && CompareFold(a, b) == 0
}

// CompareFold orders a and b ignoring ASCII case only.
func CompareFold(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// StripExt removes the extension from the last element of name.
func StripExt(name string) string {
	base := name
	if idx := strings.LastIndexAny(base, `/\`); idx >= 0 {
		base = base[idx+1:]
	}
	if dot := strings.LastIndexByte(base, '.'); dot > 0 {
		return name[:len(name)-len(base)+dot]
	}
	return name
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
