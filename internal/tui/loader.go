package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/jobpulse/internal/model"
)

// errLoadCancelled is returned when the user quits before the table loads.
var errLoadCancelled = errors.New("load cancelled")

const loadTimeout = 2 * time.Minute

type tableLoadedMsg struct {
	table *model.Table
	err   error
}

type loaderModel struct {
	path    string
	loadFn  func(ctx context.Context) (*model.Table, error)
	spinner spinner.Model
	table   *model.Table
	err     error
	done    bool
}

func newLoaderModel(path string, loadFn func(ctx context.Context) (*model.Table, error)) loaderModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = barStyle
	return loaderModel{path: path, loadFn: loadFn, spinner: s}
}

func (m loaderModel) Init() tea.Cmd {
	loadFn := m.loadFn
	load := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		table, err := loadFn(ctx)
		return tableLoadedMsg{table: table, err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m loaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tableLoadedMsg:
		m.table, m.err, m.done = msg.table, msg.err, true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.err, m.done = errLoadCancelled, true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m loaderModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Reading job postings from %s\n", m.spinner.View(), m.path)
}

// RunLoader reads the table behind an inline spinner (no alt screen).
func RunLoader(path string, loadFn func(ctx context.Context) (*model.Table, error)) (*model.Table, error) {
	result, err := tea.NewProgram(newLoaderModel(path, loadFn)).Run()
	if err != nil {
		return nil, err
	}
	final := result.(loaderModel)
	return final.table, final.err
}
