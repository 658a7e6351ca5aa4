package export

import (
	"io"

	"github.com/parquet-go/parquet-go"
)

const parquetFilename = "commits.parquet.gzip"

// ParquetExporter writes the commit table as gzip-compressed parquet.
// Author/committer become optional nested groups and modified files a
// repeated group, mirroring the record structure.
type ParquetExporter struct{}

// Filename returns the fixed parquet output filename.
func (e *ParquetExporter) Filename() string {
	return parquetFilename
}

// Export writes all records into a single parquet file.
func (e *ParquetExporter) Export(table *CommitTable, dir string) (string, error) {
	return writeAtomic(dir, e.Filename(), func(w io.Writer) error {
		writer := parquet.NewGenericWriter[CommitRecord](w, parquet.Compression(&parquet.Gzip))
		if _, err := writer.Write(table.Records()); err != nil {
			writer.Close()
			return err
		}
		return writer.Close()
	})
}
