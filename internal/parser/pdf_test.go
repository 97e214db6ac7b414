package parser

import (
	"strings"
	"testing"
)

func TestPDFParser_InvalidInputWithoutFallback(t *testing.T) {
	p := &PDFParser{FallbackPdftotext: false}
	_, err := p.Parse(strings.NewReader("definitely not a pdf"), "words.pdf")
	if err == nil {
		t.Fatal("expected error for invalid pdf")
	}
	if !strings.Contains(err.Error(), "extract pdf text") {
		t.Errorf("expected extract pdf text error, got %v", err)
	}
}

func TestPDFParser_InvalidInputWithFallback(t *testing.T) {
	// pdftotext rejects the input too, or is missing; either way it fails.
	p := &PDFParser{FallbackPdftotext: true}
	if _, err := p.Parse(strings.NewReader("definitely not a pdf"), "words.pdf"); err == nil {
		t.Fatal("expected error for invalid pdf")
	}
}
