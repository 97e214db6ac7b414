package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no parser handles.
	ErrUnsupportedFormat = errors.New("parser: unsupported file extension")

	// ErrInvalidEncoding is returned when text input is not valid UTF-8.
	ErrInvalidEncoding = errors.New("parser: input is not valid UTF-8")
)

// SectionBreak is the delimiter line emitted between sections.
const SectionBreak = "----------"

// Parser renders a source document as word-list text: blocks separated by a
// blank line and sections separated by a SectionBreak line.
type Parser interface {
	Parse(r io.Reader, filename string) (string, error)
}

// Options tunes the parsers returned by ForFile.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this tool can read. Any of them
// may carry an extra ".xz" suffix.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	name, compressed := stripXZ(filename)

	var p Parser
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".txt":
		p = &TextParser{}
	case ".md", ".markdown":
		p = &MarkdownParser{}
	case ".csv":
		p = &CSVParser{}
	case ".html", ".htm":
		p = &HTMLParser{}
	case ".pdf":
		p = &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}
	case ".docx":
		p = &DOCXParser{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if compressed {
		return &xzParser{inner: p}, nil
	}
	return p, nil
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	name, _ := stripXZ(filename)
	return SupportedExtensions[strings.ToLower(filepath.Ext(name))]
}

func stripXZ(filename string) (string, bool) {
	ext := filepath.Ext(filename)
	if strings.EqualFold(ext, ".xz") {
		return strings.TrimSuffix(filename, ext), true
	}
	return filename, false
}

// xzParser decompresses its input before handing it to the wrapped parser.
type xzParser struct {
	inner Parser
}

func (p *xzParser) Parse(r io.Reader, filename string) (string, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return "", fmt.Errorf("open xz stream: %w", err)
	}
	name, _ := stripXZ(filename)
	return p.inner.Parse(zr, name)
}

// layout accumulates blocks in word-list form.
type layout struct {
	buf strings.Builder
}

// block appends trimmed text as its own paragraph; empty text is dropped.
func (l *layout) block(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if l.buf.Len() > 0 {
		l.buf.WriteString("\n\n")
	}
	l.buf.WriteString(text)
}

func (l *layout) sectionBreak() {
	l.block(SectionBreak)
}

func (l *layout) String() string {
	return l.buf.String()
}
