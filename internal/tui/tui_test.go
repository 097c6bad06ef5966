package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/recommend"
	"github.com/amishk599/jobpulse/internal/report"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTable(t *testing.T) *model.Table {
	t.Helper()
	table, err := dataset.ReadCSV(strings.NewReader(`job_title,company_name,location,seniority_level,employment_type,job_function,industry,posted,applicants_num
Python Developer,Acme,Remote,Entry level,Full-time,Engineering,Software,1 day ago,40 applicants
Data Analyst,Beta,NYC,Internship,Internship,Analyst,Finance,2 days ago,applicants
`))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return table
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderBarChart_ScalesBars(t *testing.T) {
	c := insights.Chart{
		Title: "Jobs by Industry",
		Bars:  []insights.Count{{Value: "Software", Count: 8}, {Value: "Finance", Count: 2}},
	}
	out := renderBarChart(c, 60)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	software := strings.Count(lines[1], "█")
	finance := strings.Count(lines[2], "█")
	if software <= finance || finance == 0 {
		t.Errorf("bar lengths software=%d finance=%d", software, finance)
	}
	if software < 3*finance {
		t.Errorf("bars not proportional: software=%d finance=%d", software, finance)
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	out := renderBarChart(insights.Chart{Title: "Jobs by Function"}, 60)
	if !strings.Contains(out, "(no data)") {
		t.Errorf("expected no-data marker, got %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Software Engineer", 8); got != "Softwar…" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("Go", 8); got != "Go" {
		t.Errorf("truncate() = %q", got)
	}
}

func TestRecommendModel_FindJobs(t *testing.T) {
	r := recommend.NewRecommender(testTable(t), 10, report.NewNopReporter(), discardLogger())
	var m tea.Model = newRecommendModel(r)

	for _, k := range []string{"p", "y", "t", "h", "o", "n"} {
		m, _ = m.Update(key(k))
	}
	// skills → location → function → button
	for i := 0; i < 3; i++ {
		m, _ = m.Update(key("tab"))
	}
	m, _ = m.Update(key("enter"))

	rm := m.(recommendModel)
	if rm.err != nil {
		t.Fatalf("unexpected error: %v", rm.err)
	}
	if rm.result == nil || rm.result.Total != 1 || rm.result.Postings[0].Title != "Python Developer" {
		t.Fatalf("result = %+v", rm.result)
	}
	if !strings.Contains(rm.View(), "1 Matching Jobs Found") {
		t.Errorf("view missing match heading:\n%s", rm.View())
	}
}

func TestRecommendModel_NoMatchShowsWarning(t *testing.T) {
	r := recommend.NewRecommender(testTable(t), 10, report.NewNopReporter(), discardLogger())
	var m tea.Model = newRecommendModel(r)

	m, _ = m.Update(key("rust"))
	for i := 0; i < 3; i++ {
		m, _ = m.Update(key("tab"))
	}
	m, _ = m.Update(key("enter"))

	if !strings.Contains(m.View(), recommend.NoMatchMessage) {
		t.Errorf("view missing no-match warning:\n%s", m.View())
	}
}

func TestInsightsModel_Export(t *testing.T) {
	table := testTable(t)
	d, err := insights.Build(table, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := filepath.Join(t.TempDir(), dataset.DefaultExportName)

	var m tea.Model = newInsightsModel(table, d, path)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(m.View(), "Key Metrics") {
		t.Errorf("view missing metrics:\n%s", m.View())
	}

	m, cmd := m.Update(key("e"))
	if cmd == nil {
		t.Fatal("expected export command")
	}
	m, _ = m.Update(cmd())

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file: %v", err)
	}
	if im := m.(insightsModel); !strings.Contains(im.status, "exported 2 rows") {
		t.Errorf("status = %q", im.status)
	}
}

func TestPickerModel(t *testing.T) {
	var m tea.Model = pickerModel{}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(key("enter"))
	if got := m.(pickerModel).chosen; got != ViewInsights {
		t.Errorf("chosen = %v, want ViewInsights", got)
	}
}

func TestLoader_DeliversTable(t *testing.T) {
	table := testTable(t)
	m := newLoaderModel("jobs.csv", func(context.Context) (*model.Table, error) { return table, nil })
	if !strings.Contains(m.View(), "jobs.csv") {
		t.Errorf("loader view should name the file, got %q", m.View())
	}

	updated, cmd := m.Update(tableLoadedMsg{table: table})
	lm := updated.(loaderModel)
	if cmd == nil {
		t.Error("expected quit command after load")
	}
	if lm.table != table || lm.err != nil {
		t.Errorf("table=%p err=%v", lm.table, lm.err)
	}
	if lm.View() != "" {
		t.Errorf("finished loader should render nothing, got %q", lm.View())
	}
}

func TestLoader_CtrlCCancels(t *testing.T) {
	m := newLoaderModel("jobs.csv", func(context.Context) (*model.Table, error) { return nil, nil })
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if err := updated.(loaderModel).err; !errors.Is(err, errLoadCancelled) {
		t.Errorf("err = %v, want errLoadCancelled", err)
	}
}
