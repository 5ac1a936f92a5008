package nav

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the shell to move to Target. Screens emit it instead of
// knowing about each other.
type NavigateMsg struct {
	Target Screen
	Mode   Mode
}

// BackMsg asks the shell to pop the current screen.
type BackMsg struct{}

// To returns a command emitting a push to target.
func To(target Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target, Mode: Push} }
}

// ReplaceWith returns a command emitting a replace to target.
func ReplaceWith(target Screen) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Target: target, Mode: Replace} }
}

// GoBack returns a command emitting BackMsg.
func GoBack() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}
