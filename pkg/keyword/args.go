package keyword

import "strings"

// Fields splits a directive argument into whitespace separated tokens.
func Fields(arg string) []string {
	return strings.Fields(arg)
}

// NameDescription splits "name description..." into the leading token and the
// remainder of the line with surrounding whitespace removed.
func NameDescription(arg string) (string, string) {
	arg = strings.TrimLeft(arg, " \t")
	end := 0
	for end < len(arg) && !isSpace(arg[end]) {
		end++
	}
	return arg[:end], strings.TrimSpace(arg[end:])
}

// CNameLen returns the length of the C identifier at the start of s, or 0.
func CNameLen(s string) int {
	if s == "" || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentChar(s[n]) {
		n++
	}
	return n
}

// CName returns the C identifier at the start of s, or "".
func CName(s string) string {
	return s[:CNameLen(s)]
}

// IsCName reports whether s is exactly one C identifier.
func IsCName(s string) bool {
	return s != "" && CNameLen(s) == len(s)
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
