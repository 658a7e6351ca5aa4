package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mkrebs/commit-extractor/config"
	"github.com/mkrebs/commit-extractor/internal/export"
	"github.com/mkrebs/commit-extractor/internal/git"
	"github.com/mkrebs/commit-extractor/internal/progress"
)

// Extractor owns the end-to-end pipeline: read a commit stream, flatten
// each commit into a record, accumulate records into a table, and write
// the table to a file in the working directory.
type Extractor struct {
	format       export.Format
	exporter     export.Exporter
	source       git.RepositoryReader
	locator      string
	workDir      string
	showProgress bool
	cleanup      func() error
}

// New constructs an extractor and resolves its commit source. The format
// is validated before any repository work happens; with today set, the
// source is scoped to commits on or after the local start of day.
func New(format export.Format, today bool, locator string, cfg *config.Config) (*Extractor, error) {
	e, err := newExtractor(format)
	if err != nil {
		return nil, err
	}

	var since *time.Time
	if today {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		since = &startOfDay
	}

	reader, err := git.NewHistoryReader(git.ReadOptions{
		Locator:       locator,
		Since:         since,
		Include:       cfg.Filters.Include,
		Exclude:       cfg.Filters.Exclude,
		MainBranches:  cfg.MainBranches,
		IncludeSource: cfg.IncludeSource,
	})
	if err != nil {
		return nil, &ResolutionError{Locator: locator, Err: err}
	}

	e.source = reader
	e.locator = locator
	e.showProgress = cfg.Progress
	e.cleanup = reader.Close
	return e, nil
}

// NewWithSource constructs an extractor around an already-resolved commit
// source. The format is validated before the source is touched.
func NewWithSource(format export.Format, source git.RepositoryReader) (*Extractor, error) {
	e, err := newExtractor(format)
	if err != nil {
		return nil, err
	}
	e.source = source
	return e, nil
}

func newExtractor(format export.Format) (*Extractor, error) {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return nil, &ConfigurationError{Value: string(format), Err: err}
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Extractor{format: format, exporter: exporter, workDir: workDir}, nil
}

// Close releases resources held by the commit source (a temporary clone
// directory for remote repositories).
func (e *Extractor) Close() error {
	if e.cleanup != nil {
		return e.cleanup()
	}
	return nil
}

// Extract runs the pipeline once: traverse, flatten, buffer, serialize.
// It returns the absolute path of the written file, or ErrNoCommits when
// zero commits matched the traversal scope (in which case no file is
// written).
func (e *Extractor) Extract(ctx context.Context) (string, error) {
	if e.source == nil {
		return "", &ResolutionError{Locator: e.locator, Err: errors.New("no repository source resolved")}
	}

	var spinner *progress.Spinner
	if e.showProgress {
		spinner = progress.NewSpinner("Reading commit history")
	}
	commits, err := e.source.ReadCommits(ctx)
	if spinner != nil {
		spinner.Finish()
	}
	if err != nil {
		return "", fmt.Errorf("failed to read history: %w", err)
	}

	table := export.NewCommitTable()
	for _, c := range commits {
		table.Append(FlattenCommit(c))
	}

	if table.Len() == 0 {
		return "", ErrNoCommits
	}

	path, err := e.exporter.Export(table, e.workDir)
	if err != nil {
		return "", &ExportError{Format: e.format, Err: err}
	}
	return path, nil
}
