package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/catalog"
	"github.com/julianstephens/onetake/internal/tui/components/chat"
	"github.com/julianstephens/onetake/internal/tui/components/dashboard"
	"github.com/julianstephens/onetake/internal/tui/components/login"
	"github.com/julianstephens/onetake/internal/tui/components/project"
)

// themeChangedMsg tells the current screen the theme store flipped.
type themeChangedMsg struct {
	mode theme.Mode
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case nav.NavigateMsg:
		return m.navigate(msg.Target, msg.Mode)

	case nav.BackMsg:
		return m.back()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleTheme):
			mode := m.themes.Toggle()
			logger.Info("theme toggled", "mode", mode)
			return m.forward(themeChangedMsg{mode: mode})
		case m.stack.Current() == nav.Login:
			// everything else belongs to the login form
		case key.Matches(msg, m.keys.Back):
			return m.back()
		case key.Matches(msg, m.keys.Logout):
			return m.logout()
		case key.Matches(msg, m.keys.Help) && !m.takesText():
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		}
	}

	return m.forward(msg)
}

// forward hands msg to the screen on top of the stack.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stack.Current() {
	case nav.Login:
		m.loginModel, cmd = m.loginModel.Update(msg)
	case nav.Dashboard:
		m.dashboardModel, cmd = m.dashboardModel.Update(msg)
	case nav.ProjectDetails:
		m.projectModel, cmd = m.projectModel.Update(msg)
	case nav.ServiceCatalog:
		m.catalogModel, cmd = m.catalogModel.Update(msg)
	case nav.Chat:
		m.chatModel, cmd = m.chatModel.Update(msg)
	}
	return m, cmd
}

func (m Model) navigate(target nav.Screen, mode nav.Mode) (tea.Model, tea.Cmd) {
	from := m.stack.Current()
	if err := m.stack.Navigate(target, mode); err != nil {
		logger.Warn("navigation refused", "err", err)
		return m, nil
	}
	logger.Info("navigate", "from", from, "to", target, "mode", mode)
	return m, m.enter(target)
}

// enter builds a fresh model for screen and returns its Init command.
func (m *Model) enter(screen nav.Screen) tea.Cmd {
	var cmd tea.Cmd
	switch screen {
	case nav.Login:
		m.loginModel = login.New(m.session, m.themes)
		cmd = m.loginModel.Init()
	case nav.Dashboard:
		m.dashboardModel = dashboard.New(m.provider, m.themes)
		cmd = m.dashboardModel.Init()
	case nav.ProjectDetails:
		m.projectModel = project.New(m.provider, m.themes)
		cmd = m.projectModel.Init()
	case nav.ServiceCatalog:
		m.catalogModel = catalog.New(m.provider, m.themes)
		cmd = m.catalogModel.Init()
	case nav.Chat:
		m.chatModel = chat.New(m.provider, m.themes)
		cmd = m.chatModel.Init()
	}
	m.resize()
	return cmd
}

func (m Model) back() (tea.Model, tea.Cmd) {
	from := m.stack.Current()
	to, ok := m.stack.Back()
	if !ok {
		return m, nil
	}
	logger.Info("navigate back", "from", from, "to", to)
	m.resize()
	return m, nil
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.session.Logout()
	m.stack.Reset()
	m.help.ShowAll = false
	logger.Info("logged out")
	return m, m.enter(nav.Login)
}

// contentSize is the area left for the screen between header and help.
func (m Model) contentSize() (int, int) {
	chrome := lipgloss.Height(m.viewHeader()) + lipgloss.Height(m.help.View(m))
	return m.width, max(0, m.height-chrome)
}

func (m *Model) resize() {
	if m.width == 0 && m.height == 0 {
		return
	}
	w, h := m.contentSize()
	switch m.stack.Current() {
	case nav.Login:
		m.loginModel.SetSize(w, h)
	case nav.Dashboard:
		m.dashboardModel.SetSize(w, h)
	case nav.ProjectDetails:
		m.projectModel.SetSize(w, h)
	case nav.ServiceCatalog:
		m.catalogModel.SetSize(w, h)
	case nav.Chat:
		m.chatModel.SetSize(w, h)
	}
}
