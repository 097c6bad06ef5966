package insights

import (
	"fmt"

	"github.com/amishk599/jobpulse/internal/model"
)

// DefaultTopN caps the company and location charts.
const DefaultTopN = 10

// ChartSpec describes one bar chart of the dashboard.
type ChartSpec struct {
	Title  string
	Column string
	XLabel string
	Capped bool // show only the top N values
}

// Charts lists the dashboard charts in display order.
var Charts = []ChartSpec{
	{Title: "Jobs by Seniority Level", Column: model.ColSeniority, XLabel: "Seniority Level"},
	{Title: "Jobs by Employment Type", Column: model.ColEmploymentType, XLabel: "Employment Type"},
	{Title: "Jobs by Function", Column: model.ColFunction, XLabel: "Job Function"},
	{Title: "Jobs by Industry", Column: model.ColIndustry, XLabel: "Industry"},
	{Title: "Top Hiring Companies", Column: model.ColCompany, XLabel: "Company", Capped: true},
	{Title: "Job Count by Location", Column: model.ColLocation, XLabel: "Location", Capped: true},
}

// Chart is a rendered-ready frequency distribution.
type Chart struct {
	Title  string  `json:"title"`
	Column string  `json:"column"`
	XLabel string  `json:"x_label"`
	YLabel string  `json:"y_label"`
	Bars   []Count `json:"bars"`
}

// Dashboard bundles everything the insights view shows except the raw table.
type Dashboard struct {
	Summary Summary `json:"summary"`
	Charts  []Chart `json:"charts"`
}

// Build computes the summary and all charts. topN <= 0 uses DefaultTopN.
func Build(t *model.Table, topN int) (*Dashboard, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	summary, err := Summarize(t)
	if err != nil {
		return nil, fmt.Errorf("summarizing: %w", err)
	}

	d := &Dashboard{Summary: summary}
	for _, cs := range Charts {
		counts, err := Frequencies(t, cs.Column)
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", cs.Title, err)
		}
		if cs.Capped {
			counts = Top(counts, topN)
		}
		if counts == nil {
			counts = []Count{}
		}
		d.Charts = append(d.Charts, Chart{
			Title:  cs.Title,
			Column: cs.Column,
			XLabel: cs.XLabel,
			YLabel: "Number of Jobs",
			Bars:   counts,
		})
	}
	return d, nil
}

// FormatAvg renders the average applicants metric with one decimal place.
func FormatAvg(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}
