// Package slug builds the anchor names used to link headings in generated
// documentation.
package slug

import (
	"strconv"
	"strings"
	"unicode"
)

// Make converts a heading title into an anchor slug. Letters are lowercased,
// spaces, hyphens and underscores become '-', other ASCII punctuation is
// dropped, and non-ASCII letters and digits are kept.
func Make(title string) string {
	var builder strings.Builder
	builder.Grow(len(title))

	for _, r := range strings.TrimSpace(title) {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '\t':
			builder.WriteByte('-')
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			builder.WriteRune(unicode.ToLower(r))
		case r < unicode.MaxASCII:
			// punctuation and control characters
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(unicode.ToLower(r))
		}
	}

	return builder.String()
}

// Set hands out unique slugs, suffixing repeats with -1, -2 and so on.
type Set struct {
	seen map[string]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{seen: make(map[string]int)}
}

// Add returns a slug for title that has not been returned before.
func (s *Set) Add(title string) string {
	return s.Reserve(Make(title))
}

// Reserve marks base as used and returns it, or a suffixed variant if it was
// already taken.
func (s *Set) Reserve(base string) string {
	if base == "" {
		base = "section"
	}
	if _, taken := s.seen[base]; !taken {
		s.seen[base] = 1
		return base
	}
	for {
		n := s.seen[base]
		s.seen[base] = n + 1
		candidate := base + "-" + strconv.Itoa(n)
		if _, dup := s.seen[candidate]; !dup {
			s.seen[candidate] = 1
			return candidate
		}
	}
}
