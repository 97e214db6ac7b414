package collection

import (
	"regexp"
	"strings"
)

var (
	// A run of ten or more hyphens separates sections, wherever it appears.
	sectionDelimiter = regexp.MustCompile(`-{10,}`)

	// Header line plus exactly one blank line. Not anchored to lines: ^ is the
	// start of the segment.
	headerLine = regexp.MustCompile(`^[^\n]+\n\n`)
)

// SplitSegments cuts content on section delimiters and returns the trimmed,
// non-empty segments in source order.
func SplitSegments(content string) []string {
	parts := sectionDelimiter.Split(content, -1)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = trimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Classify returns the tier whose header the segment starts with. The match
// is a case-sensitive literal prefix.
func Classify(segment string) (Tier, bool) {
	for _, ti := range tierTable {
		if strings.HasPrefix(segment, ti.header) {
			return ti.tier, true
		}
	}
	return "", false
}

// ExtractParagraphs strips the header line and the blank line after it, then
// returns every remaining blank-line separated block, normalized.
//
// A segment whose header is not followed by an empty line is kept whole, so a
// header-only segment yields the header itself as its single paragraph.
func ExtractParagraphs(segment string) []string {
	body := segment
	if loc := headerLine.FindStringIndex(segment); loc != nil {
		body = segment[loc[1]:]
	}

	var paragraphs []string
	for _, block := range strings.Split(body, "\n\n") {
		if trimSpace(block) == "" {
			continue
		}
		paragraphs = append(paragraphs, Normalize(block))
	}
	return paragraphs
}

// firstLine returns the segment's first line, used to describe skipped
// sections in reports.
func firstLine(segment string) string {
	if i := strings.IndexByte(segment, '\n'); i >= 0 {
		return strings.TrimSpace(segment[:i])
	}
	return segment
}
