package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View identifies one of the interactive screens.
type View int

const (
	ViewNone View = iota
	ViewRecommend
	ViewInsights
)

var pickerChoices = []struct {
	label string
	view  View
}{
	{"Job recommendations: filter by skills, location and function", ViewRecommend},
	{"Job market insights: metrics, charts and CSV export", ViewInsights},
}

type pickerModel struct {
	cursor int
	chosen View
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = ViewNone
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(pickerChoices)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = pickerChoices[m.cursor].view
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := titleStyle.Render("jobpulse: select a view")
	s += "\n"

	for i, c := range pickerChoices {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+c.label) + "\n"
		} else {
			s += pickerItemStyle.Render(c.label) + "\n"
		}
	}

	s += hintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// RunViewPicker shows the view selector. Returns ViewNone if the user quit.
func RunViewPicker() (View, error) {
	p := tea.NewProgram(pickerModel{})
	result, err := p.Run()
	if err != nil {
		return ViewNone, err
	}
	return result.(pickerModel).chosen, nil
}
