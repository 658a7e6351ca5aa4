package git

import "time"

// Signature identifies the author or committer of a commit.
type Signature struct {
	Name  string
	Email string
}

// Absent reports whether the signature carries no attribution at all.
func (s Signature) Absent() bool {
	return s.Name == "" && s.Email == ""
}

// ChangeKind represents the type of file change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileChange represents a file change within a commit.
type FileChange struct {
	Filename     string // Base name of the changed file
	OldPath      string // Path before the change; empty for additions
	NewPath      string // Path after the change; empty for deletions
	Kind         ChangeKind
	AddedLines   int
	DeletedLines int
	Hunks        int     // Number of changed chunks in the diff
	Source       *string // File contents after the change, nil if unavailable
	SourceBefore *string // File contents before the change, nil if unavailable
}

// Churn returns total lines changed (added + deleted).
func (f FileChange) Churn() int {
	return f.AddedLines + f.DeletedLines
}

// Commit holds everything the extractor needs to know about one commit.
type Commit struct {
	Hash    string
	Message string

	// Author and Committer are nil when the commit lacks attribution.
	Author    *Signature
	Committer *Signature

	AuthorDate        time.Time
	AuthorTZOffset    int // Seconds east of UTC
	CommitterDate     time.Time
	CommitterTZOffset int

	Branches     []string // Sorted names of local branches containing the commit
	InMainBranch bool
	Merge        bool

	ModifiedFiles []FileChange
	Parents       []string

	ProjectName string
	ProjectPath string

	// Aggregates over ModifiedFiles.
	Insertions int
	Deletions  int
	Lines      int
	Files      int
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	Locator       string // Local path or remote URL of the repository
	Since         *time.Time
	Include       []string // Glob patterns to include
	Exclude       []string // Glob patterns to exclude
	MainBranches  []string // Branch names treated as main; defaults to the HEAD branch
	IncludeSource bool     // Capture before/after file contents
}
