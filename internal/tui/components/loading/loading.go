// Package loading tracks the "not loaded yet" and "load failed" states a
// data-backed screen shows before its content.
package loading

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	apperrors "github.com/julianstephens/onetake/internal/errors"
	"github.com/julianstephens/onetake/internal/theme"
)

type Status int

const (
	Loading Status = iota
	Ready
	Failed
)

// RetryKey restarts a failed load.
var RetryKey = key.NewBinding(
	key.WithKeys("r"),
	key.WithHelp("r", "retry"),
)

type Model struct {
	Status  Status
	Err     error
	spinner spinner.Model
}

func New() Model {
	return Model{
		Status:  Loading,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Start moves back to Loading and returns the spinner tick.
func (m *Model) Start() tea.Cmd {
	m.Status = Loading
	m.Err = nil
	return m.spinner.Tick
}

// Done records the outcome of a load.
func (m *Model) Done(err error) {
	if err != nil {
		m.Status = Failed
		m.Err = err
		return
	}
	m.Status = Ready
	m.Err = nil
}

func (m Model) Ready() bool {
	return m.Status == Ready
}

// Update advances the spinner while loading and reports whether a failed
// load should be retried.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.Status != Loading {
			return m, nil, false
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd, false
	case tea.KeyMsg:
		if m.Status == Failed && key.Matches(msg, RetryKey) {
			return m, nil, true
		}
	}
	return m, nil, false
}

// View renders the placeholder for a screen that is not Ready.
func (m Model) View(st theme.Styles, width, height int) string {
	var body string
	switch m.Status {
	case Loading:
		m.spinner.Style = st.Accent
		body = m.spinner.View() + " " + st.Muted.Render(constants.LoadingText)
	case Failed:
		body = lipgloss.JoinVertical(lipgloss.Center,
			st.Error.Render(apperrors.Message(m.Err)),
			st.Muted.Render(constants.RetryHint),
		)
	default:
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
