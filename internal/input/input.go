// Package input turns CSV, JSON and TOML documents into records.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/young1lin/tablo/internal/grid/records"
)

// Format names a supported document format.
type Format string

const (
	CSV  Format = "csv"
	TSV  Format = "tsv"
	JSON Format = "json"
	TOML Format = "toml"
)

// ErrUnsupportedFormat is returned for a format or file extension without a reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Formats lists the supported formats.
func Formats() []Format { return []Format{CSV, TSV, JSON, TOML} }

// ParseFormat parses a format name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case CSV, TSV, JSON, TOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Detect guesses the format of path from its extension.
func Detect(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Source returns a single pass source over the document in r.
// CSV and TSV are streamed; JSON and TOML are decoded in full first.
func Source(r io.Reader, f Format) (records.Source, error) {
	switch f {
	case CSV:
		return NewCSV(r, ','), nil
	case TSV:
		return NewCSV(r, '\t'), nil
	case JSON:
		rows, err := DecodeJSON(r)
		if err != nil {
			return nil, err
		}
		return records.NewSliceSource(rows), nil
	case TOML:
		rows, err := DecodeTOML(r)
		if err != nil {
			return nil, err
		}
		return records.NewSliceSource(rows), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Read decodes the document in r into a Matrix.
func Read(r io.Reader, f Format) (*records.Matrix, error) {
	src, err := Source(r, f)
	if err != nil {
		return nil, err
	}
	m, err := records.Collect(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f, err)
	}
	return m, nil
}

// ReadFile reads path. An empty format is detected from the extension.
func ReadFile(path string, f Format) (*records.Matrix, error) {
	if f == "" {
		var err error
		if f, err = Detect(path); err != nil {
			return nil, err
		}
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()
	return Read(file, f)
}

// TableName derives a SQL table name from a file path.
func TableName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "data"
	}
	return b.String()
}
