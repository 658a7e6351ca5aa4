package extract

import (
	"github.com/mkrebs/commit-extractor/internal/dmm"
	"github.com/mkrebs/commit-extractor/internal/export"
	"github.com/mkrebs/commit-extractor/internal/git"
)

// FlattenCommit maps one commit to its flat export record. The mapping
// is pure: the same commit always flattens to an identical record, and
// the record shares no mutable state with the input.
func FlattenCommit(c git.Commit) export.CommitRecord {
	metrics := dmm.Compute(c.ModifiedFiles)

	files := make([]export.FileChangeRecord, 0, len(c.ModifiedFiles))
	for _, fc := range c.ModifiedFiles {
		files = append(files, export.FileChangeRecord{
			Filename:         fc.Filename,
			OldPath:          optional(fc.OldPath),
			NewPath:          optional(fc.NewPath),
			ChangeType:       fc.Kind.String(),
			AddedLines:       fc.AddedLines,
			DeletedLines:     fc.DeletedLines,
			SourceCode:       fc.Source,
			SourceCodeBefore: fc.SourceBefore,
		})
	}

	return export.CommitRecord{
		Hash:               c.Hash,
		Message:            c.Message,
		Author:             identityOf(c.Author),
		Committer:          identityOf(c.Committer),
		AuthorDate:         c.AuthorDate,
		AuthorTimezone:     c.AuthorTZOffset,
		CommitterDate:      c.CommitterDate,
		CommitterTimezone:  c.CommitterTZOffset,
		Branches:           append([]string(nil), c.Branches...),
		InMainBranch:       c.InMainBranch,
		Merge:              c.Merge,
		ModifiedFiles:      files,
		Parents:            append([]string(nil), c.Parents...),
		ProjectName:        c.ProjectName,
		ProjectPath:        c.ProjectPath,
		Deletions:          c.Deletions,
		Insertions:         c.Insertions,
		Lines:              c.Lines,
		Files:              c.Files,
		DMMUnitSize:        metrics.UnitSize,
		DMMUnitComplexity:  metrics.UnitComplexity,
		DMMUnitInterfacing: metrics.UnitInterfacing,
	}
}

func identityOf(s *git.Signature) *export.Identity {
	if s == nil {
		return nil
	}
	return &export.Identity{Name: s.Name, Email: s.Email}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
