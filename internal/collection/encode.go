package collection

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const hexDigits = "0123456789abcdef"

// WriteJSON writes the collection as a JSON object indented by two spaces,
// tiers in fixed order, empty tiers as []. Only quotes, backslashes and
// control characters are escaped; everything else is written as UTF-8. No
// trailing newline is written.
func (c *Collection) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var buf []byte

	buf = append(buf, "{\n"...)
	for i, t := range Tiers {
		buf = append(buf, "  "...)
		buf = appendQuoted(buf, string(t))
		buf = append(buf, ": "...)

		ps := c.paragraphs[t]
		if len(ps) == 0 {
			buf = append(buf, "[]"...)
		} else {
			buf = append(buf, "[\n"...)
			for j, p := range ps {
				buf = append(buf, "    "...)
				buf = appendQuoted(buf, p)
				if j < len(ps)-1 {
					buf = append(buf, ',')
				}
				buf = append(buf, '\n')
			}
			buf = append(buf, "  ]"...)
		}

		if i < len(Tiers)-1 {
			buf = append(buf, ',')
		}
		buf = append(buf, '\n')

		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		buf = buf[:0]
	}
	if _, err := bw.WriteString("}"); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return bw.Flush()
}

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		default:
			if b < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
			} else {
				buf = append(buf, b)
			}
		}
	}
	return append(buf, '"')
}

// WriteYAML writes the collection as a YAML mapping with the same key order
// as WriteJSON.
func (c *Collection) WriteYAML(w io.Writer) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, t := range Tiers {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(c.paragraphs[t]) == 0 {
			seq.Style = yaml.FlowStyle
		}
		for _, p := range c.paragraphs[t] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p})
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(t)},
			seq,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("write yaml: %w", err)
	}
	return enc.Close()
}
