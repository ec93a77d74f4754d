package markdown

import "strings"

// Image is an inline Markdown image reference such as ![alt](link "title").
type Image struct {
	// Offset is the byte index of the '!' within the scanned line.
	Offset int

	// Len is the length of the whole reference in bytes.
	Len int

	Alt   string
	Link  string
	Title string
}

// Markup returns the reference exactly as written.
func (img Image) Markup(line string) string {
	return line[img.Offset : img.Offset+img.Len]
}

// ParseImage parses an image reference at the very start of s.
func ParseImage(s string) (Image, bool) {
	if !strings.HasPrefix(s, "![") {
		return Image{}, false
	}

	altEnd := strings.IndexByte(s[2:], ']')
	if altEnd < 0 {
		return Image{}, false
	}
	altEnd += 2
	if altEnd+1 >= len(s) || s[altEnd+1] != '(' {
		return Image{}, false
	}

	pos := altEnd + 2
	pos = skipInlineSpace(s, pos)

	linkStart := pos
	if pos < len(s) && s[pos] == '<' {
		closeIdx := strings.IndexByte(s[pos:], '>')
		if closeIdx < 0 {
			return Image{}, false
		}
		linkStart = pos + 1
		pos += closeIdx + 1
	} else {
		for pos < len(s) && s[pos] != ')' && s[pos] != ' ' && s[pos] != '\t' {
			pos++
		}
	}
	link := strings.TrimSuffix(s[linkStart:pos], ">")
	if link == "" {
		return Image{}, false
	}

	pos = skipInlineSpace(s, pos)

	var title string
	if pos < len(s) && (s[pos] == '"' || s[pos] == '\'') {
		quote := s[pos]
		closeIdx := strings.IndexByte(s[pos+1:], quote)
		if closeIdx < 0 {
			return Image{}, false
		}
		title = s[pos+1 : pos+1+closeIdx]
		pos += closeIdx + 2
		pos = skipInlineSpace(s, pos)
	}

	if pos >= len(s) || s[pos] != ')' {
		return Image{}, false
	}

	return Image{
		Len:   pos + 1,
		Alt:   s[2:altEnd],
		Link:  link,
		Title: title,
	}, true
}

// FindImages returns every image reference in line, skipping inline code spans.
func FindImages(line string) []Image {
	var images []Image
	for pos := 0; pos < len(line); {
		switch line[pos] {
		case '`':
			pos = skipCodeSpan(line, pos)
		case '!':
			if img, ok := ParseImage(line[pos:]); ok {
				img.Offset = pos
				images = append(images, img)
				pos += img.Len
				continue
			}
			pos++
		default:
			pos++
		}
	}
	return images
}

// skipCodeSpan returns the index after the code span opened at pos, or pos+run
// when the span is never closed.
func skipCodeSpan(line string, pos int) int {
	run := 0
	for pos+run < len(line) && line[pos+run] == '`' {
		run++
	}
	delim := strings.Repeat("`", run)
	if closeIdx := strings.Index(line[pos+run:], delim); closeIdx >= 0 {
		return pos + run + closeIdx + run
	}
	return pos + run
}

func skipInlineSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}
