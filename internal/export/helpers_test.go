package export

import (
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

// sampleTable builds a three-commit table: two regular commits and one
// merge commit with two parents.
func sampleTable() *CommitTable {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	table := NewCommitTable()
	table.Append(CommitRecord{
		Hash:      "aaa111",
		Message:   "initial commit",
		Author:    &Identity{Name: "Alice", Email: "alice@example.com"},
		Committer: &Identity{Name: "Alice", Email: "alice@example.com"},
		AuthorDate: base, CommitterDate: base,
		Branches:     []string{"main"},
		InMainBranch: true,
		ModifiedFiles: []FileChangeRecord{{
			Filename:   "a.go",
			NewPath:    strPtr("src/a.go"),
			ChangeType: "added",
			AddedLines: 10,
			SourceCode: strPtr("package a\n"),
		}},
		ProjectName: "demo", ProjectPath: "/tmp/demo",
		Insertions: 10, Lines: 10, Files: 1,
		DMMUnitSize: floatPtr(1.0),
	})
	table.Append(CommitRecord{
		Hash:       "bbb222",
		Message:    "second commit, with a comma",
		AuthorDate: base.Add(time.Hour), CommitterDate: base.Add(time.Hour),
		Branches: []string{"main"}, InMainBranch: true,
		Parents:     []string{"aaa111"},
		ProjectName: "demo", ProjectPath: "/tmp/demo",
	})
	table.Append(CommitRecord{
		Hash:      "ccc333",
		Message:   "merge branch side",
		Author:    &Identity{Name: "Bob", Email: "bob@example.com"},
		Committer: &Identity{Name: "Bob", Email: "bob@example.com"},
		AuthorDate: base.Add(2 * time.Hour), CommitterDate: base.Add(2 * time.Hour),
		Branches: []string{"main", "side"}, InMainBranch: true,
		Merge:       true,
		Parents:     []string{"bbb222", "ddd444"},
		ProjectName: "demo", ProjectPath: "/tmp/demo",
	})
	return table
}
