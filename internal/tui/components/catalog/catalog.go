package catalog

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
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
	services []models.Service
	err      error
}

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Pick key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next category"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev category"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "category"),
		),
	}
}

type Model struct {
	provider storage.Provider
	themes   *theme.Store
	keys     KeyMap

	load     loading.Model
	state    State
	services []models.Service
	viewport viewport.Model
	width    int
	height   int
}

func New(provider storage.Provider, themes *theme.Store) Model {
	return Model{
		provider: provider,
		themes:   themes,
		keys:     DefaultKeyMap(),
		load:     loading.New(),
		state:    NewState(),
		viewport: viewport.New(0, 0),
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
		services, err := p.GetServices(ctx)
		return loadedMsg{services: services, err: err}
	}
}

func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Prev, m.keys.Pick}
}

func (m Model) State() State {
	return m.state
}

// Visible returns the entries the current filter shows.
func (m Model) Visible() []models.Service {
	return Filter(m.services, m.state.Selected)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(0, height-chipsHeight)
}

// chipsHeight is the rows the category selector takes above the list.
const chipsHeight = 3

func (m Model) selectOffset(delta int) Model {
	cats := models.Categories()
	idx := 0
	for i, c := range cats {
		if c.ID == m.state.Selected {
			idx = i
		}
	}
	return m.selectCategory(cats[(idx+delta+len(cats))%len(cats)].ID)
}

func (m Model) selectCategory(c models.Category) Model {
	if c == m.state.Selected {
		return m
	}
	m.state = m.state.SelectCategory(c)
	m.viewport.GotoTop()
	logger.Debug("catalog filter", "category", c)
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.load.Done(msg.err)
		if msg.err != nil {
			logger.Error("catalog load failed", "err", msg.err)
		} else {
			m.services = msg.services
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.selectOffset(1), nil
		case key.Matches(msg, m.keys.Prev):
			return m.selectOffset(-1), nil
		case key.Matches(msg, m.keys.Pick):
			cats := models.Categories()
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(cats) {
				return m.selectCategory(cats[idx].ID), nil
			}
		}
	}

	var cmd tea.Cmd
	var retry bool
	m.load, cmd, retry = m.load.Update(msg)
	if retry {
		return m, tea.Batch(m.load.Start(), m.fetch())
	}
	if cmd != nil {
		return m, cmd
	}

	m.viewport.SetContent(m.list(theme.NewStyles(m.themes.Tokens())))
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) list(st theme.Styles) string {
	width := m.width - 2*theme.Cells(st.Tokens.Spacing.MD) - 4
	return st.Doc.Render(List(m.Visible(), st, max(width, 20)))
}

func (m Model) View() string {
	st := theme.NewStyles(m.themes.Tokens())
	chips := st.Doc.Render(Chips(m.state.Selected, st))

	if !m.load.Ready() {
		return lipgloss.JoinVertical(lipgloss.Left, chips, m.load.View(st, m.width, m.viewport.Height))
	}

	vp := m.viewport
	vp.SetContent(m.list(st))
	return lipgloss.JoinVertical(lipgloss.Left, chips, vp.View())
}
