package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobpulse/internal/dataset"
	"github.com/amishk599/jobpulse/internal/insights"
	"github.com/amishk599/jobpulse/internal/model"
)

const rawCellWidth = 24

// exportDoneMsg is sent when an async CSV export completes.
type exportDoneMsg struct {
	path string
	err  error
}

type insightsModel struct {
	table      *model.Table
	dashboard  *insights.Dashboard
	exportPath string
	viewport   viewport.Model
	status     string
	exporting  bool
	ready      bool
	width      int
	height     int
}

func newInsightsModel(table *model.Table, d *insights.Dashboard, exportPath string) insightsModel {
	return insightsModel{
		table:      table,
		dashboard:  d,
		exportPath: exportPath,
	}
}

func (m insightsModel) Init() tea.Cmd {
	return nil
}

func (m insightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Title (1 line) + status bar (1 line) = 2 lines overhead.
		vpHeight := max(m.height-2, 5)
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderContent())
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("exported %d rows to %s", m.table.Len(), msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "e":
			if m.exporting {
				return m, nil
			}
			m.exporting = true
			m.status = "exporting..."
			return m, m.exportCmd()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m insightsModel) exportCmd() tea.Cmd {
	table, path := m.table, m.exportPath
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: dataset.ExportFile(path, table)}
	}
}

func (m insightsModel) renderContent() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Key Metrics"))
	b.WriteByte('\n')
	b.WriteString(renderMetrics(m.dashboard.Summary))
	b.WriteByte('\n')

	for _, c := range m.dashboard.Charts {
		b.WriteString(renderBarChart(c, m.width))
	}

	b.WriteString(sectionStyle.Render("Job Listings Data"))
	b.WriteByte('\n')
	b.WriteString(renderTable(m.table.Rows, m.table.Columns, rawCellWidth))
	b.WriteByte('\n')
	return b.String()
}

func (m insightsModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := titleStyle.UnsetPadding().Render(" Early Career Job Market Insights")
	statusText := " ↑/↓ pgup/pgdn scroll  e export CSV  q quit"
	if m.status != "" {
		statusText += "    " + m.status
	}
	statusBar := statusBarStyle.Width(m.width).Render(statusText)

	return title + "\n" + m.viewport.View() + "\n" + statusBar
}

// RunInsightsTUI launches the dashboard. Pressing e writes the table to exportPath.
func RunInsightsTUI(table *model.Table, d *insights.Dashboard, exportPath string) error {
	p := tea.NewProgram(newInsightsModel(table, d, exportPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
