package export

import (
	"errors"
	"fmt"
)

// Compile-time interface conformance checks.
var (
	_ Exporter = (*CSVExporter)(nil)
	_ Exporter = (*ParquetExporter)(nil)
)

// Format represents the export file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// ErrUnknownFormat is returned for format selectors outside the closed set.
var ErrUnknownFormat = errors.New("unsupported export format")

// ParseFormat parses a format selector string. "columnar" is accepted as
// an alias for the parquet format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "parquet", "columnar":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("%w: %q (use 'parquet' or 'csv')", ErrUnknownFormat, s)
	}
}

// Valid reports whether the format is one of the supported values.
func (f Format) Valid() bool {
	return f == FormatCSV || f == FormatParquet
}

// Exporter serializes a commit table to a file in a directory.
type Exporter interface {
	// Filename returns the fixed output filename for the format.
	Filename() string
	// Export writes the table into dir and returns the absolute path of
	// the written file. The write is atomic: on error no file is left at
	// the destination path.
	Export(table *CommitTable, dir string) (string, error)
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatCSV:
		return &CSVExporter{}, nil
	case FormatParquet:
		return &ParquetExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
