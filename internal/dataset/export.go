package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/amishk599/jobpulse/internal/model"
)

// DefaultExportName is the file name offered for downloads.
const DefaultExportName = "job_market_insights.csv"

// WriteCSV serializes the table in the same layout it was read from: the
// original header followed by one record per row. Applicants are written in
// normalized numeric form, empty when null.
func WriteCSV(w io.Writer, table *model.Table) error {
	cw := csv.NewWriter(w)
	if err := writeRecord(w, cw, table.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for i, p := range table.Rows {
		for j, col := range table.Columns {
			record[j] = p.Field(col)
		}
		if err := writeRecord(w, cw, record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// writeRecord writes one record through cw. A record holding a single empty
// field is written as "" since csv.Writer emits a blank line for it, which
// readers skip.
func writeRecord(w io.Writer, cw *csv.Writer, record []string) error {
	if len(record) != 1 || record[0] != "" {
		return cw.Write(record)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"\"\n")
	return err
}

// ExportFile writes the table as CSV to path, replacing any existing file.
func ExportFile(path string, table *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, table); err != nil {
		f.Close()
		return fmt.Errorf("exporting to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
