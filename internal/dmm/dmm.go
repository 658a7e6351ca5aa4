// Package dmm estimates delta-maintainability metrics for a commit.
//
// The three values follow the Delta Maintainability Model: each is the
// proportion of low-risk change volume in the commit, in [0, 1], where
// higher is better. Without language-aware parsing the unit boundaries
// are approximated per changed file: unit size from the file's churn,
// unit complexity from the number of changed hunks, and unit interfacing
// from whether the change leaves the file's surface in place (a plain
// modification rather than an addition, deletion or rename).
package dmm

import "github.com/mkrebs/commit-extractor/internal/git"

const (
	// lowRiskChurn is the largest per-file churn still considered a
	// small, low-risk change.
	lowRiskChurn = 15
	// lowRiskHunks is the largest number of changed hunks in one file
	// still considered a focused change.
	lowRiskHunks = 2
)

// Metrics holds the three delta-maintainability values for one commit.
// A nil value means the metric is undefined for the commit (no line
// changes to judge).
type Metrics struct {
	UnitSize        *float64
	UnitComplexity  *float64
	UnitInterfacing *float64
}

// Compute calculates the metrics for a commit's file changes.
func Compute(changes []git.FileChange) Metrics {
	return Metrics{
		UnitSize: proportion(changes, func(fc git.FileChange) bool {
			return fc.Churn() <= lowRiskChurn
		}),
		UnitComplexity: proportion(changes, func(fc git.FileChange) bool {
			return fc.Hunks <= lowRiskHunks
		}),
		UnitInterfacing: proportion(changes, func(fc git.FileChange) bool {
			return fc.Kind == git.ChangeKindModified
		}),
	}
}

// proportion returns the churn-weighted share of changes satisfying
// lowRisk, or nil when the commit has no churn at all.
func proportion(changes []git.FileChange, lowRisk func(git.FileChange) bool) *float64 {
	var good, total int
	for _, fc := range changes {
		churn := fc.Churn()
		total += churn
		if lowRisk(fc) {
			good += churn
		}
	}
	if total == 0 {
		return nil
	}
	v := float64(good) / float64(total)
	return &v
}
