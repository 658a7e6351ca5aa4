package export

import (
	"fmt"
	"time"
)

// Identity is a name/email pair for an author or committer.
type Identity struct {
	Name  string `parquet:"name"`
	Email string `parquet:"email"`
}

// String returns the stringified form used by the csv export.
func (i Identity) String() string {
	return fmt.Sprintf("{name: %s, email: %s}", i.Name, i.Email)
}

// FileChangeRecord is one file change within a commit, flattened for export.
type FileChangeRecord struct {
	Filename         string  `parquet:"filename"`
	OldPath          *string `parquet:"old_path,optional"`
	NewPath          *string `parquet:"new_path,optional"`
	ChangeType       string  `parquet:"change_type"`
	AddedLines       int     `parquet:"added_lines"`
	DeletedLines     int     `parquet:"deleted_lines"`
	SourceCode       *string `parquet:"source_code,optional"`
	SourceCodeBefore *string `parquet:"source_code_before,optional"`
}

// String returns the stringified form used by the csv export. Source
// contents are left out; they only travel in the parquet export.
func (f FileChangeRecord) String() string {
	return fmt.Sprintf("{filename: %s, old_path: %s, new_path: %s, change_type: %s, added_lines: %d, deleted_lines: %d}",
		f.Filename, deref(f.OldPath), deref(f.NewPath), f.ChangeType, f.AddedLines, f.DeletedLines)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CommitRecord is the flattened unit produced per commit. Optional fields
// are pointers; nil means the value is absent on the underlying commit.
type CommitRecord struct {
	Hash               string             `parquet:"hash"`
	Message            string             `parquet:"msg"`
	Author             *Identity          `parquet:"author,optional"`
	Committer          *Identity          `parquet:"committer,optional"`
	AuthorDate         time.Time          `parquet:"author_date"`
	AuthorTimezone     int                `parquet:"author_timezone"`
	CommitterDate      time.Time          `parquet:"committer_date"`
	CommitterTimezone  int                `parquet:"committer_timezone"`
	Branches           []string           `parquet:"branches,list"`
	InMainBranch       bool               `parquet:"in_main_branch"`
	Merge              bool               `parquet:"merge"`
	ModifiedFiles      []FileChangeRecord `parquet:"modified_files,list"`
	Parents            []string           `parquet:"parents,list"`
	ProjectName        string             `parquet:"project_name"`
	ProjectPath        string             `parquet:"project_path"`
	Deletions          int                `parquet:"deletions"`
	Insertions         int                `parquet:"insertions"`
	Lines              int                `parquet:"lines"`
	Files              int                `parquet:"files"`
	DMMUnitSize        *float64           `parquet:"dmm_unit_size,optional"`
	DMMUnitComplexity  *float64           `parquet:"dmm_unit_complexity,optional"`
	DMMUnitInterfacing *float64           `parquet:"dmm_unit_interfacing,optional"`
}

// CommitTable is an ordered collection of commit records, built once per
// run by appending in traversal order and never mutated afterwards.
type CommitTable struct {
	records []CommitRecord
}

// NewCommitTable creates an empty table.
func NewCommitTable() *CommitTable {
	return &CommitTable{}
}

// Append adds a record at the end of the table.
func (t *CommitTable) Append(rec CommitRecord) {
	t.records = append(t.records, rec)
}

// Len returns the number of records in the table.
func (t *CommitTable) Len() int {
	return len(t.records)
}

// Records returns the records in insertion order.
func (t *CommitTable) Records() []CommitRecord {
	return t.records
}
