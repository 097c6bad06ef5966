package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
)

const maxBarLabelWidth = 28

// renderBarChart draws a horizontal bar chart scaled to width columns.
func renderBarChart(c insights.Chart, width int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(c.Title))
	b.WriteByte('\n')

	if len(c.Bars) == 0 {
		b.WriteString(countStyle.Render("  (no data)"))
		b.WriteByte('\n')
		return b.String()
	}

	labelWidth, maxCount, countWidth := 0, 0, 0
	for _, bar := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(truncate(bar.Value, maxBarLabelWidth)))
		maxCount = max(maxCount, bar.Count)
		countWidth = max(countWidth, len(fmt.Sprint(bar.Count)))
	}
	barSpace := max(width-labelWidth-countWidth-6, 10)

	for _, bar := range c.Bars {
		n := bar.Count * barSpace / maxCount
		if n == 0 && bar.Count > 0 {
			n = 1
		}
		label := truncate(bar.Value, maxBarLabelWidth)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		b.WriteString("  ")
		b.WriteString(barLabelStyle.Render(label + pad))
		b.WriteByte(' ')
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
		b.WriteByte(' ')
		b.WriteString(countStyle.Render(fmt.Sprint(bar.Count)))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderMetrics draws the three headline numbers side by side.
func renderMetrics(s insights.Summary) string {
	box := func(label, value string) string {
		return metricBoxStyle.Render(metricLabelStyle.Render(label) + "\n" + metricValueStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Total Jobs", humanize.Comma(int64(s.TotalJobs))),
		box("Unique Companies", humanize.Comma(int64(s.UniqueCompanies))),
		box("Avg Applicants", insights.FormatAvg(s.AvgApplicants)),
	)
}

// renderTable draws postings restricted to columns as a bordered grid.
func renderTable(postings []model.Posting, columns []string, cellWidth int) string {
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(columns...)
	for _, p := range postings {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = truncate(p.Field(col), cellWidth)
		}
		t.Row(row...)
	}
	return t.String()
}

// truncate shortens s to at most n display runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 1 {
		return s
	}
	return string(r[:n-1]) + "…"
}
