package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/dgallion1/wordcollect/internal/collection"
	"github.com/dgallion1/wordcollect/internal/parser"
)

// Result is the outcome of building one collection.
type Result struct {
	Input       string
	Output      string
	Collection  *collection.Collection
	Segments    int
	Skipped     []string
	Fingerprint Fingerprint
}

// Converter reads source documents and builds collections from them.
type Converter struct {
	log  *slog.Logger
	opts parser.Options
}

func NewConverter(log *slog.Logger, opts parser.Options) *Converter {
	return &Converter{log: log, opts: opts}
}

// Build parses r as the document named filename and collects its
// paragraphs. Nothing is written.
func (c *Converter) Build(r io.Reader, filename string) (*Result, error) {
	p, err := parser.ForFile(filename, c.opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}

	text, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: %s", parser.ErrInvalidEncoding, filename)
	}

	coll, report := collection.Build(text)
	for _, header := range report.Skipped {
		c.log.Warn("skipping section with unrecognized header", "file", filename, "header", header)
	}

	return &Result{
		Input:       filename,
		Collection:  coll,
		Segments:    report.Segments,
		Skipped:     report.Skipped,
		Fingerprint: FingerprintOf(data),
	}, nil
}

// Convert builds the collection for the file at input and writes it to
// output, replacing any existing file.
func (c *Converter) Convert(ctx context.Context, input, output string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	res, err := c.Build(f, filepath.Base(input))
	if err != nil {
		return nil, err
	}
	res.Input = input

	if err := WriteFile(output, res.Collection); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	res.Output = output

	c.log.Info("conversion complete",
		"input", input,
		"output", output,
		"segments", res.Segments,
		"skipped", len(res.Skipped),
		"paragraphs", res.Collection.Total(),
		"sha256", res.Fingerprint.SHA256,
		"blake3", res.Fingerprint.BLAKE3,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
