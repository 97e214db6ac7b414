package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/wordcollect/internal/collection"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatYAML Format = "YAML"
)

// FormatFor picks the encoding from the output path: YAML for .yaml/.yml,
// JSON for everything else.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes coll to w in the given format.
func Encode(w io.Writer, coll *collection.Collection, format Format) error {
	if format == FormatYAML {
		return coll.WriteYAML(w)
	}
	return coll.WriteJSON(w)
}

// WriteFile encodes coll into path. The data goes to a temp file in the same
// directory which is then renamed over path. An existing file keeps its
// permissions; a new one gets 0644.
func WriteFile(path string, coll *collection.Collection) error {
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".wordcollect-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if err := Encode(tmp, coll, FormatFor(path)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
