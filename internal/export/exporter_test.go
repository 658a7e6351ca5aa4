package export

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "csv", input: "csv", expected: FormatCSV},
		{name: "parquet", input: "parquet", expected: FormatParquet},
		{name: "columnar alias", input: "columnar", expected: FormatParquet},
		{name: "sql is not supported", input: "sql", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "xml", wantErr: true},
		{name: "case sensitive", input: "CSV", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got %q", tt.input, got)
				}
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("error = %v, expected ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormat_Valid(t *testing.T) {
	if !FormatCSV.Valid() || !FormatParquet.Valid() {
		t.Error("supported formats reported invalid")
	}
	if Format("xml").Valid() || Format("").Valid() {
		t.Error("unsupported formats reported valid")
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		filename string
		wantErr  bool
	}{
		{name: "csv", format: FormatCSV, filename: "commits.csv"},
		{name: "parquet", format: FormatParquet, filename: "commits.parquet.gzip"},
		{name: "unknown", format: Format("xml"), wantErr: true},
		{name: "empty", format: Format(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := NewExporter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("error = %v, expected ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewExporter returned error: %v", err)
			}
			if exp.Filename() != tt.filename {
				t.Errorf("Filename() = %q, expected %q", exp.Filename(), tt.filename)
			}
		})
	}
}

func TestCommitTable_PreservesInsertionOrder(t *testing.T) {
	table := NewCommitTable()
	hashes := []string{"c3", "a1", "b2"}
	for _, h := range hashes {
		table.Append(CommitRecord{Hash: h})
	}

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", table.Len())
	}
	for i, rec := range table.Records() {
		if rec.Hash != hashes[i] {
			t.Errorf("record %d hash = %q, expected %q", i, rec.Hash, hashes[i])
		}
	}
}
