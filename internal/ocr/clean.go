package ocr

import (
	"regexp"
	"strings"
)

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	blankLines = regexp.MustCompile(`\n\s*\n`)
)

// CleanText normalizes raw OCR- or PDF-extracted text: runs of horizontal
// whitespace collapse to a single space, runs of blank lines collapse to a
// single line break, and the ends are trimmed.
//
// It never substitutes characters. Mapping visually similar glyphs
// (0 <-> O, 1 <-> I) would corrupt dosage tokens like "500mg", so digits
// pass through untouched.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = multiSpace.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n")

	return strings.TrimSpace(text)
}
