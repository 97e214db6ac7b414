package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/wordcollect/internal/collection"
)

// CSVParser handles two-column CSV files: a tier (label or header form) and
// a paragraph. Consecutive rows with the same tier form one section. Rows
// whose first cell is not a tier, such as a header row, end up in sections
// that are skipped later like any unrecognized section.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}

	var out layout
	current := ""
	started := false
	for _, row := range records {
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if tier, err := collection.ParseTier(label); err == nil {
			label = tier.Header()
		}

		if !started || label != current {
			if started {
				out.sectionBreak()
			}
			out.block(label)
			current = label
			started = true
		}
		out.block(strings.Join(row[1:], " "))
	}

	return out.String(), nil
}
