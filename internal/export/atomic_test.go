package export

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic_Success(t *testing.T) {
	dir := t.TempDir()

	path, err := writeAtomic(dir, "out.txt", func(w io.Writer) error {
		_, err := w.Write([]byte("payload"))
		return err
	})
	if err != nil {
		t.Fatalf("writeAtomic returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("contents = %q, expected %q", data, "payload")
	}
}

func TestWriteAtomic_FailureLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("serialization failed")

	_, err := writeAtomic(dir, "out.txt", func(w io.Writer) error {
		w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, expected the write error", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("Failed to read dir: %v", readErr)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory not empty after failed write: %v", names)
	}
}

func TestWriteAtomic_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatalf("Failed to seed file: %v", err)
	}

	// A failed write keeps the previous file intact
	_, err := writeAtomic(dir, "out.txt", func(w io.Writer) error {
		return errors.New("nope")
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "old" {
		t.Errorf("contents after failed write = %q, expected untouched %q", data, "old")
	}

	// A successful write replaces it
	if _, err := writeAtomic(dir, "out.txt", func(w io.Writer) error {
		_, err := w.Write([]byte("new"))
		return err
	}); err != nil {
		t.Fatalf("writeAtomic returned error: %v", err)
	}
	data, _ = os.ReadFile(dest)
	if string(data) != "new" {
		t.Errorf("contents after rewrite = %q, expected %q", data, "new")
	}
}
