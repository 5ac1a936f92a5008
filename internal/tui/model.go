package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/session"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/catalog"
	"github.com/julianstephens/onetake/internal/tui/components/chat"
	"github.com/julianstephens/onetake/internal/tui/components/dashboard"
	"github.com/julianstephens/onetake/internal/tui/components/login"
	"github.com/julianstephens/onetake/internal/tui/components/project"
)

// Model is the navigation shell. It owns one model per screen; a screen's
// model is rebuilt each time the screen is entered, except on the way back.
type Model struct {
	provider storage.Provider
	session  *session.Store
	themes   *theme.Store

	stack    nav.Stack
	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int

	loginModel     login.Model
	dashboardModel dashboard.Model
	projectModel   project.Model
	catalogModel   catalog.Model
	chatModel      chat.Model
}

func NewModel(provider storage.Provider, sess *session.Store, themes *theme.Store) Model {
	return Model{
		provider:   provider,
		session:    sess,
		themes:     themes,
		stack:      nav.NewStack(sess.IsAuthenticated),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		loginModel: login.New(sess, themes),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loginModel.Init()
}

// Current returns the screen on top of the stack.
func (m Model) Current() nav.Screen {
	return m.stack.Current()
}

// takesText reports whether the current screen has a focused text field,
// in which case printable global keys belong to the field.
func (m Model) takesText() bool {
	switch m.stack.Current() {
	case nav.Login, nav.Chat:
		return true
	}
	return false
}

func (m Model) screenBindings() []key.Binding {
	switch m.stack.Current() {
	case nav.Dashboard:
		return m.dashboardModel.Bindings()
	case nav.ProjectDetails:
		return m.projectModel.Bindings()
	case nav.ServiceCatalog:
		return m.catalogModel.Bindings()
	case nav.Chat:
		return m.chatModel.Bindings()
	}
	return nil
}

func (m Model) globalBindings() []key.Binding {
	if m.stack.Current() == nav.Login {
		return []key.Binding{m.keys.ToggleTheme, m.keys.Quit}
	}
	bindings := []key.Binding{m.keys.Back, m.keys.ToggleTheme, m.keys.Logout}
	if !m.takesText() {
		bindings = append(bindings, m.keys.Help)
	}
	return append(bindings, m.keys.Quit)
}

func (m Model) ShortHelp() []key.Binding {
	return append(m.globalBindings(), m.screenBindings()...)
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.globalBindings(), m.screenBindings()}
}
