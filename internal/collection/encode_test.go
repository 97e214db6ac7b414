package collection

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestWriteJSON_Layout(t *testing.T) {
	c, _ := Build(twoSections)
	var buf bytes.Buffer
	if err := c.WriteJSON(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "20_words": [
    "apple banana cherry"
  ],
  "50_words": [
    "sun lit meadow"
  ],
  "100_words": [],
  "200_words": [],
  "500_words": [],
  "1000_words": []
}`
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := New().WriteJSON(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n" +
		"  \"20_words\": [],\n" +
		"  \"50_words\": [],\n" +
		"  \"100_words\": [],\n" +
		"  \"200_words\": [],\n" +
		"  \"500_words\": [],\n" +
		"  \"1000_words\": []\n" +
		"}"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteJSON_MultipleParagraphs(t *testing.T) {
	c := New()
	c.Add(Tier200, "first")
	c.Add(Tier200, "second")
	var buf bytes.Buffer
	if err := c.WriteJSON(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "  \"200_words\": [\n    \"first\",\n    \"second\"\n  ],\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected output to contain %q, got %q", want, buf.String())
	}
}

func TestAppendQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", `"bell\u0007"`},
		{"esc\x1b", `"esc\u001b"`},
		{"bs\b ff\f", `"bs\b ff\f"`},
		{"<b>&amp;</b>", `"<b>&amp;</b>"`},
		{"café", `"café"`},
		{"line\u2028sep", "\"line\u2028sep\""},
		{"emoji 🙂", `"emoji 🙂"`},
	}
	for _, tt := range tests {
		if got := string(appendQuoted(nil, tt.in)); got != tt.want {
			t.Errorf("appendQuoted(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestMarshalJSON_RoundTrip(t *testing.T) {
	c := New()
	c.Add(Tier20, `quote " and <tag>`)
	c.Add(Tier1000, "naïve")

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string][]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != len(Tiers) {
		t.Fatalf("expected %d keys, got %d", len(Tiers), len(decoded))
	}
	if got := decoded["20_words"]; len(got) != 1 || got[0] != `quote " and <tag>` {
		t.Errorf("unexpected 20_words: %v", got)
	}
	if got := decoded["1000_words"]; len(got) != 1 || got[0] != "naïve" {
		t.Errorf("unexpected 1000_words: %v", got)
	}
}

func TestWriteYAML_KeyOrder(t *testing.T) {
	c, _ := Build(twoSections)
	var buf bytes.Buffer
	if err := c.WriteYAML(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	last := -1
	for _, tier := range Tiers {
		idx := strings.Index(out, string(tier)+":")
		if idx < 0 {
			t.Fatalf("expected key %s in output:\n%s", tier, out)
		}
		if idx < last {
			t.Errorf("key %s out of order in output:\n%s", tier, out)
		}
		last = idx
	}
	if !strings.Contains(out, "100_words: []") {
		t.Errorf("expected empty tier as flow sequence, got:\n%s", out)
	}

	var decoded map[string][]string
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := decoded["50_words"]; len(got) != 1 || got[0] != "sun lit meadow" {
		t.Errorf("unexpected 50_words: %v", got)
	}
}
