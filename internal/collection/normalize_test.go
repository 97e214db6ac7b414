package collection

import (
	"strings"
	"testing"
	"unicode"
)

func TestNormalize_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"hyphen", "sun-lit meadow", "sun lit meadow"},
		{"en dash", "1990–2000", "1990 2000"},
		{"em dash", "wait—what", "wait what"},
		{"dash run", "a --------- b", "a b"},
		{"collapse newlines", "line one\nline two\n\tline three", "line one line two line three"},
		{"trim", "  padded  ", "padded"},
		{"no break space", "a\u00a0\u00a0b", "a b"},
		{"line separator", "a\u2028b", "a b"},
		{"information separator", "a\x1fb", "a b"},
		{"keeps punctuation", "Hello, world! (ok)", "Hello, world! (ok)"},
		{"keeps non-ascii", "café  naïve", "café naïve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
			}
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"multi\n\n\nline\r\ntext",
		"dash-dash–dash—dash",
		"- - -",
		"\t—\t",
		"x\u3000y z",
		"end-",
		"mixed  -– spacing",
	}
	for _, in := range inputs {
		got := Normalize(in)
		if strings.ContainsAny(got, "-–—") {
			t.Errorf("Normalize(%q) = %q still contains a dash", in, got)
		}
		if got != strings.TrimFunc(got, unicode.IsSpace) {
			t.Errorf("Normalize(%q) = %q has leading or trailing whitespace", in, got)
		}
		prevSpace := false
		for _, r := range got {
			space := isSpace(r)
			if space && r != ' ' {
				t.Errorf("Normalize(%q) = %q contains non-space whitespace %U", in, got, r)
			}
			if space && prevSpace {
				t.Errorf("Normalize(%q) = %q contains a whitespace run", in, got)
				break
			}
			prevSpace = space
		}
		if again := Normalize(got); again != got {
			t.Errorf("Normalize is not idempotent for %q: %q then %q", in, got, again)
		}
	}
}
