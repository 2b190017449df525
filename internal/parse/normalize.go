package parse

import (
	"regexp"
	"strings"
)

var (
	reCRLF     = regexp.MustCompile(`\r\n?`)
	reInlineWS = regexp.MustCompile(`[ \t]+`)
)

// normalizeText collapses runs of spaces and tabs inside each line to a
// single space while keeping line breaks intact. OCR output often carries
// irregular column padding that would otherwise defeat single-line patterns.
func normalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(reInlineWS.ReplaceAllString(lines[i], " "))
	}
	return strings.Join(lines, "\n")
}

// splitLines returns the normalized, trimmed lines of s in document order.
func splitLines(s string) []string {
	return strings.Split(normalizeText(s), "\n")
}
