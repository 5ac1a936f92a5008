package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/theme"
)

// ModeSelector renders the team/assistant switch.
func ModeSelector(active models.ChatMode, st theme.Styles) string {
	modes := []struct {
		mode  models.ChatMode
		label string
	}{
		{models.ChatModeTeam, "👥 " + constants.TeamModeLabel},
		{models.ChatModeAssistant, "🤖 " + constants.AssistantDisplayName},
	}
	var tabs []string
	for _, m := range modes {
		if m.mode == active {
			tabs = append(tabs, st.ActiveTab.Render(m.label))
		} else {
			tabs = append(tabs, st.InactiveTab.Render(m.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderThread draws the messages of one mode, user messages on the right.
func RenderThread(thread []models.Message, mode models.ChatMode, st theme.Styles, width int) string {
	bubbleWidth := max(width*7/10, 10)
	avatar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(st.Tokens.Colors.Primary)).
		Bold(true)

	var blocks []string
	for _, msg := range thread {
		stamp := msg.Timestamp
		if msg.Pending {
			stamp += " · " + constants.PendingMark
		}

		if msg.Sender == models.SenderUser {
			bubble := st.UserBubble.MaxWidth(bubbleWidth).Width(min(lipgloss.Width(msg.Text)+2, bubbleWidth)).Render(msg.Text)
			block := lipgloss.JoinVertical(lipgloss.Right, bubble, st.Muted.Render(stamp))
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Right, block))
			continue
		}

		var sender string
		if mode == models.ChatModeAssistant {
			sender = st.Accent.Render("🤖") + " " + st.Muted.Render(constants.AssistantDisplayName)
		} else {
			sender = avatar.Render(" "+models.Initials(msg.DisplayName)+" ") + " " + st.Muted.Render(msg.DisplayName)
		}
		bubble := st.OtherBubble.Width(min(lipgloss.Width(msg.Text)+2, bubbleWidth)).Render(msg.Text)
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, sender, bubble, st.Muted.Render(stamp)))
	}
	return strings.Join(blocks, "\n\n")
}
