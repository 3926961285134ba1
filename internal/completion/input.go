package completion

import (
	"strings"
	"unicode"
)

// isPathRune reports whether r can be part of a path typed in the editor.
func isPathRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '/' || r == '.' || r == '+' || r == '_' || r == '-':
		return true
	}
	return unicode.IsSpace(r)
}

// CurrentInput returns the run of path characters ending just before column.
// Column counts runes; values outside the line are clamped.
func CurrentInput(line string, column int) string {
	runes := []rune(line)
	if column > len(runes) {
		column = len(runes)
	}

	start := column
	for start > 0 && isPathRune(runes[start-1]) {
		start--
	}
	if start >= column {
		return ""
	}
	return string(runes[start:column])
}

// ParentDir strips the file name from a file path or URI.
func ParentDir(filePath string) string {
	idx := strings.LastIndex(filePath, "/")
	if idx < 0 {
		return ""
	}
	return filePath[:idx]
}

// SplitInput splits a typed path into the directory part, up to and including
// the last slash, and the fragment after it.
func SplitInput(input string) (dir, fragment string) {
	idx := strings.LastIndex(input, "/")
	if idx < 0 {
		return "", input
	}
	return input[:idx+1], input[idx+1:]
}
