package docmodel

// Stats summarises a document.
type Stats struct {
	Modules     int `json:"modules"`
	Functions   int `json:"functions"`
	Classes     int `json:"classes"`
	Methods     int `json:"methods"`
	Examples    int `json:"examples"`
	Documents   int `json:"documents"`
	Images      int `json:"images"`
	Files       int `json:"files"`
	DocComments int `json:"doc_comments"`
	Warnings    int `json:"warnings"`
}

// ComputeStats counts the objects in d. Warnings is left for the caller.
func (d *Document) ComputeStats() Stats {
	stats := Stats{
		Modules:     len(d.Modules),
		Classes:     len(d.Classes),
		Documents:   len(d.Documents),
		Images:      len(d.Images),
		Files:       d.Files,
		DocComments: d.DocComments,
	}

	if d.MainPage != nil {
		stats.Examples += len(d.MainPage.Examples)
	}
	for _, m := range d.Modules {
		stats.Functions += len(m.Functions)
		stats.Examples += len(m.Examples)
	}
	for _, c := range d.Classes {
		stats.Methods += len(c.Functions)
		stats.Examples += len(c.Examples)
	}
	for _, doc := range d.Documents {
		stats.Examples += len(doc.Examples)
	}

	return stats
}

// ObjectCount is the number of renderable objects: the main page, modules,
// functions, classes, methods, examples and documents.
func (d *Document) ObjectCount() int {
	s := d.ComputeStats()
	n := s.Modules + s.Functions + s.Classes + s.Methods + s.Examples + s.Documents
	if d.MainPage != nil {
		n++
	}
	return n
}

// PageCount is the number of pages other than the index: one per module,
// class and document.
func (d *Document) PageCount() int {
	return len(d.Modules) + len(d.Classes) + len(d.Documents)
}
