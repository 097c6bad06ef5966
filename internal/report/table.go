package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/recommend"
)

// Ensure TableReporter implements model.Reporter.
var _ model.Reporter = (*TableReporter)(nil)

// TableReporter prints recommended postings as a terminal table.
type TableReporter struct {
	w io.Writer
}

// NewTableReporter returns a reporter writing to w.
func NewTableReporter(w io.Writer) *TableReporter {
	return &TableReporter{w: w}
}

// Report prints a heading with the match count and the shown postings, or
// the no-match warning when total is zero.
func (r *TableReporter) Report(total int, postings []model.Posting) error {
	if total == 0 {
		_, err := fmt.Fprintln(r.w, pterm.Warning.Sprint(recommend.NoMatchMessage))
		return err
	}

	heading := pterm.DefaultSection.Sprint(fmt.Sprintf("%s Matching Jobs Found", humanize.Comma(int64(total))))
	if _, err := fmt.Fprint(r.w, heading); err != nil {
		return err
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(PostingRows(postings, model.DisplayColumns)).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(r.w, out)
	return err
}

// PostingRows lays postings out as a header row followed by one row per
// posting, restricted to columns.
func PostingRows(postings []model.Posting, columns []string) [][]string {
	rows := make([][]string, 0, len(postings)+1)
	rows = append(rows, columns)
	for _, p := range postings {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = p.Field(col)
		}
		rows = append(rows, row)
	}
	return rows
}
