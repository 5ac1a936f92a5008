package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/theme"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.stack.Current() {
	case nav.Login:
		content = m.loginModel.View()
	case nav.Dashboard:
		content = m.dashboardModel.View()
	case nav.ProjectDetails:
		content = m.projectModel.View()
	case nav.ServiceCatalog:
		content = m.catalogModel.View()
	case nav.Chat:
		content = m.chatModel.View()
	}

	_, h := m.contentSize()
	content = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	st := theme.NewStyles(m.themes.Tokens())

	title := constants.AppTitle
	if t := m.stack.Current().Title(); t != "" {
		title = t
	}
	if m.stack.Depth() > 1 {
		title = "← " + title
	}

	left := st.Header.Render(title)
	right := st.Header.Render(string(m.themes.Mode()))
	if user, ok := m.session.User(); ok {
		right = st.Header.Render(user.Name + " · " + string(m.themes.Mode()))
	}

	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	fill := st.Header.Padding(0).Render(lipgloss.PlaceHorizontal(gap, lipgloss.Left, ""))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, fill, right)
}
