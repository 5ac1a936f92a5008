package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/loading"
)

const chartHeight = 6

type loadedMsg struct {
	data Data
	err  error
}

type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Chat   key.Binding
	Proj   key.Binding
	Svc    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev action"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next action"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chat"),
		),
		Proj: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "project"),
		),
		Svc: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "services"),
		),
	}
}

type Model struct {
	provider storage.Provider
	themes   *theme.Store
	keys     KeyMap
	now      func() time.Time

	load     loading.Model
	data     Data
	focus    int
	viewport viewport.Model
	width    int
	height   int
}

func New(provider storage.Provider, themes *theme.Store) Model {
	return Model{
		provider: provider,
		themes:   themes,
		keys:     DefaultKeyMap(),
		now:      time.Now,
		load:     loading.New(),
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
		data, err := Load(ctx, p)
		return loadedMsg{data: data, err: err}
	}
}

// Bindings lists the keys shown in the help footer.
func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Left, m.keys.Right, m.keys.Select, m.keys.Chat, m.keys.Proj, m.keys.Svc}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// Focused returns the quick action under the cursor.
func (m Model) Focused() QuickAction {
	return Actions()[m.focus]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.load.Done(msg.err)
		if msg.err != nil {
			logger.Error("dashboard load failed", "err", msg.err)
			return m, nil
		}
		m.data = msg.data
		return m, nil

	case tea.KeyMsg:
		actions := Actions()
		switch {
		case key.Matches(msg, m.keys.Left):
			m.focus = (m.focus - 1 + len(actions)) % len(actions)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.focus = (m.focus + 1) % len(actions)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m, nav.To(actions[m.focus].Target)
		case key.Matches(msg, m.keys.Chat):
			return m, nav.To(nav.Chat)
		case key.Matches(msg, m.keys.Proj):
			return m, nav.To(nav.ProjectDetails)
		case key.Matches(msg, m.keys.Svc):
			return m, nav.To(nav.ServiceCatalog)
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

	m.viewport.SetContent(m.render(theme.NewStyles(m.themes.Tokens())))
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	st := theme.NewStyles(m.themes.Tokens())
	vp := m.viewport
	vp.SetContent(m.render(st))
	return vp.View()
}

func (m Model) render(st theme.Styles) string {
	sections := []string{m.viewGreeting(st), m.viewActions(st)}
	if m.load.Ready() {
		sections = append(sections,
			m.viewTimeline(st),
			m.viewMetrics(st),
			m.viewUpdates(st),
		)
	} else {
		sections = append(sections, m.load.View(st, m.width, chartHeight))
	}
	return st.Doc.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewGreeting(st theme.Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(constants.Greeting),
		st.Muted.Render(m.now().Format(constants.LongDateFormat)),
	)
}

func (m Model) viewActions(st theme.Styles) string {
	var tiles []string
	for i, a := range Actions() {
		label := fmt.Sprintf("%s  %s [%s]", a.Icon, a.Label, a.Key)
		style := st.Card
		if i == m.focus {
			style = style.BorderForeground(lipgloss.Color(st.Tokens.Colors.Primary))
			label = st.Accent.Render(label)
		} else {
			label = st.Text.Render(label)
		}
		tiles = append(tiles, style.Render(label))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, tiles...),
	)
}

func (m Model) viewTimeline(st theme.Styles) string {
	var rows []string
	for _, item := range m.data.Timeline {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor(item.Status, st.Tokens.Colors))).
			Render("●")
		rows = append(rows, fmt.Sprintf("%s %s  %s", dot, st.Text.Render(item.Title), st.Muted.Render(item.Date)))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Heading.Render(constants.SectionTimeline),
		st.Card.Render(strings.Join(rows, "\n")),
	)
}

func (m Model) viewMetrics(st theme.Styles) string {
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(st.Tokens.Colors.Primary))
	chart := RenderChart(m.data.Metrics, chartHeight, bar, st.Muted)
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Heading.Render(constants.SectionMetrics),
		st.Card.Render(chart),
	)
}

func (m Model) viewUpdates(st theme.Styles) string {
	now := m.now()
	var rows []string
	for _, u := range m.data.Updates {
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
			st.Text.Render(u.Title),
			st.Muted.Render(humanize.RelTime(u.At, now, "ago", "from now")),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Heading.Render(constants.SectionUpdates),
		st.Card.Render(strings.Join(rows, "\n")),
	)
}
