// Package collection turns tiered word-list text into paragraphs grouped by
// tier and encodes the result.
package collection

import (
	"bytes"
)

// Collection maps every tier to its paragraphs. All tiers are always present;
// paragraphs keep source order.
type Collection struct {
	paragraphs map[Tier][]string
}

// New returns a collection with every tier mapped to an empty list.
func New() *Collection {
	c := &Collection{paragraphs: make(map[Tier][]string, len(Tiers))}
	for _, t := range Tiers {
		c.paragraphs[t] = []string{}
	}
	return c
}

// Add appends a paragraph to tier t. Unknown tiers are ignored.
func (c *Collection) Add(t Tier, paragraph string) {
	if _, ok := c.paragraphs[t]; !ok {
		return
	}
	c.paragraphs[t] = append(c.paragraphs[t], paragraph)
}

// Paragraphs returns a copy of the paragraphs stored under t.
func (c *Collection) Paragraphs(t Tier) []string {
	ps := c.paragraphs[t]
	out := make([]string, len(ps))
	copy(out, ps)
	return out
}

// Count returns the number of paragraphs under t.
func (c *Collection) Count(t Tier) int {
	return len(c.paragraphs[t])
}

// Counts returns the paragraph count of every tier.
func (c *Collection) Counts() map[Tier]int {
	counts := make(map[Tier]int, len(Tiers))
	for _, t := range Tiers {
		counts[t] = len(c.paragraphs[t])
	}
	return counts
}

// Total returns the number of paragraphs across all tiers.
func (c *Collection) Total() int {
	n := 0
	for _, t := range Tiers {
		n += len(c.paragraphs[t])
	}
	return n
}

// Report describes what Build saw while reading the content.
type Report struct {
	Segments int      // Non-empty segments found.
	Skipped  []string // First lines of segments with no recognized header.
}

// Build splits content into segments, classifies each one and collects the
// normalized paragraphs of every recognized section.
func Build(content string) (*Collection, Report) {
	c := New()
	var report Report

	for _, segment := range SplitSegments(content) {
		report.Segments++
		tier, ok := Classify(segment)
		if !ok {
			report.Skipped = append(report.Skipped, firstLine(segment))
			continue
		}
		for _, p := range ExtractParagraphs(segment) {
			c.Add(tier, p)
		}
	}

	return c, report
}

// MarshalJSON encodes the collection with tiers in their fixed order.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
