package collection

import (
	"strings"
	"unicode"
)

// Hyphen, en dash and em dash all read as word separators.
var dashReplacer = strings.NewReplacer(
	"-", " ",
	"–", " ",
	"—", " ",
)

// Normalize replaces dashes with spaces, collapses every whitespace run to a
// single space and trims the result. Normalize("") is "".
func Normalize(text string) string {
	text = dashReplacer.Replace(text)
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace is unicode.IsSpace widened with the ASCII information separators
// (FS, GS, RS, US), which source files occasionally use as line breaks.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
