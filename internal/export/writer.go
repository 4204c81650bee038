package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Writer encodes entries into one output document.
type Writer interface {
	Write(w io.Writer, entries []Entry) error
	ContentType() string
	Extension() string
}

// NewWriter returns the Writer for format.
func NewWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return CSVWriter{}, nil
	case FormatXLSX:
		return XLSXWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// OutputName returns file with its extension replaced by the writer's.
func OutputName(file string, w Writer) string {
	ext := filepath.Ext(file)
	if strings.EqualFold(ext, w.Extension()) {
		return file
	}
	return strings.TrimSuffix(file, ext) + w.Extension()
}

// WriteFile writes entries to path through a temporary file in the same
// directory, so readers never observe a partially written output.
func WriteFile(path string, w Writer, entries []Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := w.Write(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("publish output %s: %w", path, err)
	}
	return nil
}
