package project

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/loading"
)

type loadedMsg struct {
	project models.Project
	err     error
}

type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Overview   key.Binding
	Team       key.Binding
	Milestones key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Overview: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", constants.TabOverview),
		),
		Team: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", constants.TabTeam),
		),
		Milestones: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", constants.TabMilestones),
		),
	}
}

type Model struct {
	provider storage.Provider
	themes   *theme.Store
	keys     KeyMap

	load    loading.Model
	state   State
	project models.Project
	width   int
	height  int
}

func New(provider storage.Provider, themes *theme.Store) Model {
	return Model{
		provider: provider,
		themes:   themes,
		keys:     DefaultKeyMap(),
		load:     loading.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load.Start(), m.fetch())
}

func (m Model) fetch() tea.Cmd {
	p := m.provider
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), constants.LoadTimeout)
		defer cancel()
		project, err := p.GetProject(ctx)
		return loadedMsg{project: project, err: err}
	}
}

func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Prev, m.keys.Overview, m.keys.Team, m.keys.Milestones}
}

func (m Model) State() State {
	return m.state
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.load.Done(msg.err)
		if msg.err != nil {
			logger.Error("project load failed", "err", msg.err)
		} else {
			m.project = msg.project
		}
		return m, nil

	case tea.KeyMsg:
		tabs := Tabs()
		switch {
		case key.Matches(msg, m.keys.Next):
			m.state = m.state.SelectTab(tabs[(int(m.state.Active)+1)%len(tabs)])
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.state = m.state.SelectTab(tabs[(int(m.state.Active)-1+len(tabs))%len(tabs)])
			return m, nil
		case key.Matches(msg, m.keys.Overview):
			m.state = m.state.SelectTab(TabOverview)
			return m, nil
		case key.Matches(msg, m.keys.Team):
			m.state = m.state.SelectTab(TabTeam)
			return m, nil
		case key.Matches(msg, m.keys.Milestones):
			m.state = m.state.SelectTab(TabMilestones)
			return m, nil
		}
	}

	var cmd tea.Cmd
	var retry bool
	m.load, cmd, retry = m.load.Update(msg)
	if retry {
		return m, tea.Batch(m.load.Start(), m.fetch())
	}
	return m, cmd
}

func (m Model) View() string {
	st := theme.NewStyles(m.themes.Tokens())
	if !m.load.Ready() {
		return m.load.View(st, m.width, m.height)
	}

	barWidth := m.width - 2*theme.Cells(st.Tokens.Spacing.MD)
	body := Render(Derive(m.state, m.project), st, NewBar(st, barWidth))

	return st.Doc.Render(lipgloss.JoinVertical(lipgloss.Left,
		Header(m.project, st),
		"",
		TabBar(m.state.Active, st),
		"",
		body,
	))
}
