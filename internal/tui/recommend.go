package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/amishk599/jobpulse/internal/filter"
	"github.com/amishk599/jobpulse/internal/model"
	"github.com/amishk599/jobpulse/internal/recommend"
)

const (
	inputSkills = iota
	inputLocation
	inputFunction
	focusButton // the "Find Jobs" action, after the three inputs
)

const resultCellWidth = 22

var inputPrompts = []string{
	"What skills do you have? (comma-separated, e.g. Python, React)",
	"Where would you like to work? (optional)",
	"What job function interests you? (optional)",
}

type recommendModel struct {
	recommender *recommend.Recommender
	inputs      []textinput.Model
	focus       int
	results     table.Model
	result      *recommend.Result
	err         error
	width       int
	height      int
}

func newRecommendModel(r *recommend.Recommender) recommendModel {
	inputs := make([]textinput.Model, len(inputPrompts))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 200
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[inputSkills].Placeholder = "Python, SQL"
	inputs[inputSkills].Focus()

	return recommendModel{
		recommender: r,
		inputs:      inputs,
		results:     newResultsTable(nil, 10),
	}
}

func newResultsTable(postings []model.Posting, height int) table.Model {
	cols := make([]table.Column, len(model.DisplayColumns))
	for i, c := range model.DisplayColumns {
		cols[i] = table.Column{Title: c, Width: resultCellWidth}
	}
	rows := make([]table.Row, len(postings))
	for i, p := range postings {
		row := make(table.Row, len(model.DisplayColumns))
		for j, c := range model.DisplayColumns {
			row[j] = truncate(p.Field(c), resultCellWidth)
		}
		rows[i] = row
	}
	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
}

func (m recommendModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m recommendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % (focusButton + 1))
		case "shift+tab":
			return m, m.setFocus((m.focus + focusButton) % (focusButton + 1))
		case "enter":
			if m.focus == focusButton {
				m.runSearch()
				return m, nil
			}
			return m, m.setFocus(m.focus + 1)
		}

		if m.focus == focusButton {
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus < focusButton {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *recommendModel) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *recommendModel) criteria() filter.Criteria {
	return filter.Criteria{
		Skills:   m.inputs[inputSkills].Value(),
		Location: m.inputs[inputLocation].Value(),
		Function: m.inputs[inputFunction].Value(),
	}
}

func (m *recommendModel) runSearch() {
	res, err := m.recommender.Recommend(context.Background(), m.criteria())
	if err != nil {
		m.err = err
		m.result = nil
		return
	}
	m.err = nil
	m.result = &res
	m.results = newResultsTable(res.Postings, max(min(len(res.Postings), m.recommender.Limit())+1, 2))
	m.results.SetWidth(m.width)
}

func (m recommendModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Job Recommendations"))
	b.WriteString("\n  Tell me a bit about yourself, and I'll suggest some jobs for you.\n\n")

	for i, prompt := range inputPrompts {
		b.WriteString("  " + labelStyle.Render(prompt) + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n\n")
	}

	button := buttonStyle.Render("Find Jobs")
	if m.focus == focusButton {
		button = activeButtonStyle.Render("Find Jobs")
	}
	b.WriteString("  " + button + "\n")

	switch {
	case m.err != nil:
		b.WriteString("\n  " + errorStyle.Render("⚠ "+m.err.Error()) + "\n")
	case m.result != nil && m.result.Empty():
		b.WriteString("\n  " + warningStyle.Render(m.result.Message) + "\n")
	case m.result != nil:
		heading := fmt.Sprintf("%s Matching Jobs Found", humanize.Comma(int64(m.result.Total)))
		b.WriteString(sectionStyle.Render("  "+heading) + "\n")
		b.WriteString(m.results.View() + "\n")
	}

	statusBar := statusBarStyle.Width(max(m.width, 40)).Render(" tab/shift+tab move  enter next/find  ↑/↓ scroll results  esc quit")
	return b.String() + "\n" + statusBar
}

// RunRecommendTUI launches the interactive recommendation form.
func RunRecommendTUI(r *recommend.Recommender) error {
	p := tea.NewProgram(newRecommendModel(r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
