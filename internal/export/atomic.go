package export

import (
	"io"
	"os"
	"path/filepath"
)

// writeAtomic writes through a temporary file in the target directory and
// renames it over the destination only after a successful write and sync.
// On any failure the temporary file is removed and the destination is
// left untouched.
func writeAtomic(dir, filename string, write func(io.Writer) error) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+filename+"-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	dest := filepath.Join(dir, filename)
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	return filepath.Abs(dest)
}
