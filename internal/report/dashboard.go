package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
)

// PrintDashboard writes the metrics, one horizontal bar chart per
// distribution and, when table is non-nil, the raw table.
func PrintDashboard(w io.Writer, d *insights.Dashboard, table *model.Table) error {
	if _, err := fmt.Fprint(w, pterm.DefaultSection.Sprint("Key Metrics")); err != nil {
		return err
	}
	metrics := pterm.TableData{
		{"Total Jobs", "Unique Companies", "Avg Applicants"},
		{
			humanize.Comma(int64(d.Summary.TotalJobs)),
			humanize.Comma(int64(d.Summary.UniqueCompanies)),
			insights.FormatAvg(d.Summary.AvgApplicants),
		},
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(metrics).Srender()
	if err != nil {
		return fmt.Errorf("rendering metrics: %w", err)
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}

	for _, c := range d.Charts {
		if _, err := fmt.Fprint(w, pterm.DefaultSection.Sprint(c.Title)); err != nil {
			return err
		}
		if len(c.Bars) == 0 {
			if _, err := fmt.Fprintln(w, "  (no data)"); err != nil {
				return err
			}
			continue
		}
		bars := make(pterm.Bars, 0, len(c.Bars))
		for _, b := range c.Bars {
			bars = append(bars, pterm.Bar{Label: b.Value, Value: b.Count})
		}
		out, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Srender()
		if err != nil {
			return fmt.Errorf("rendering chart %q: %w", c.Title, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	if table == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, pterm.DefaultSection.Sprint("Job Listings Data")); err != nil {
		return err
	}
	out, err = pterm.DefaultTable.WithHasHeader().WithData(PostingRows(table.Rows, table.Columns)).Srender()
	if err != nil {
		return fmt.Errorf("rendering raw table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
