package extract

import (
	"errors"
	"fmt"

	"github.com/mkrebs/commit-extractor/internal/export"
)

// ErrNoCommits signals that zero commits matched the traversal scope.
// It is an intentional early termination, not a failure; callers report
// it to the user and exit successfully without writing a file.
var ErrNoCommits = errors.New("no commits found")

// ResolutionError means the repository locator was invalid or the
// repository unreachable at construction time.
type ResolutionError struct {
	Locator string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve repository %q: %v", e.Locator, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ConfigurationError means the export format selector was missing or
// not one of the supported values.
type ConfigurationError struct {
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid export configuration %q: %v", e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ExportError means the commit table could not be written to disk.
// The atomic write guarantees no partial file is left behind.
type ExportError struct {
	Format export.Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export commits as %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
