package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

const csvFilename = "commits.csv"

const csvDateLayout = "2006-01-02 15:04:05 -0700"

// CSVExporter writes the commit table as csv.
type CSVExporter struct{}

// Filename returns the fixed csv output filename.
func (e *CSVExporter) Filename() string {
	return csvFilename
}

// Export writes one row per commit with a zero-based index as the
// leftmost column. Nested values (author, committer, branches, modified
// files, parents) are written in their default stringified form.
func (e *CSVExporter) Export(table *CommitTable, dir string) (string, error) {
	return writeAtomic(dir, e.Filename(), func(w io.Writer) error {
		writer := csv.NewWriter(w)

		headers := []string{"", "hash", "msg", "author", "committer",
			"author_date", "author_timezone", "committer_date", "committer_timezone",
			"branches", "in_main_branch", "merge", "modified_files", "parents",
			"project_name", "project_path", "deletions", "insertions", "lines", "files",
			"dmm_unit_size", "dmm_unit_complexity", "dmm_unit_interfacing"}
		if err := writer.Write(headers); err != nil {
			return err
		}

		for i, rec := range table.Records() {
			row := []string{
				fmt.Sprintf("%d", i),
				rec.Hash,
				rec.Message,
				formatIdentity(rec.Author),
				formatIdentity(rec.Committer),
				rec.AuthorDate.Format(csvDateLayout),
				fmt.Sprintf("%d", rec.AuthorTimezone),
				rec.CommitterDate.Format(csvDateLayout),
				fmt.Sprintf("%d", rec.CommitterTimezone),
				fmt.Sprint(rec.Branches),
				fmt.Sprintf("%t", rec.InMainBranch),
				fmt.Sprintf("%t", rec.Merge),
				fmt.Sprint(rec.ModifiedFiles),
				fmt.Sprint(rec.Parents),
				rec.ProjectName,
				rec.ProjectPath,
				fmt.Sprintf("%d", rec.Deletions),
				fmt.Sprintf("%d", rec.Insertions),
				fmt.Sprintf("%d", rec.Lines),
				fmt.Sprintf("%d", rec.Files),
				formatMetric(rec.DMMUnitSize),
				formatMetric(rec.DMMUnitComplexity),
				formatMetric(rec.DMMUnitInterfacing),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}

		writer.Flush()
		return writer.Error()
	})
}

func formatIdentity(id *Identity) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func formatMetric(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.6f", *v)
}
