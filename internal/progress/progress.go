// Package progress wraps a terminal spinner for long-running reads.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const tickInterval = 100 * time.Millisecond

// Spinner shows activity for operations with an unknown total count.
// It renders a first frame on construction and advances itself on a
// ticker until Finish is called, so a single blocking operation still
// gets visible feedback.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

// NewSpinner creates a spinner that renders on stderr and clears itself
// when finished.
func NewSpinner(label string) *Spinner {
	return newSpinner(label, os.Stderr)
}

func newSpinner(label string, w io.Writer) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	s := &Spinner{bar: bar, done: make(chan struct{})}
	s.wg.Add(1)
	go s.spin()
	return s
}

func (s *Spinner) spin() {
	defer s.wg.Done()
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			_ = s.bar.Add(1)
		}
	}
}

// Finish stops the ticker and clears the spinner. It must be called
// exactly once.
func (s *Spinner) Finish() {
	close(s.done)
	s.wg.Wait()
	_ = s.bar.Finish()
}
