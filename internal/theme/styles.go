package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/models"
)

// Styles are the lipgloss styles every screen renders with. They are
// rebuilt from Tokens on each frame, never cached across a toggle.
type Styles struct {
	Tokens Tokens

	Doc         lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Card        lipgloss.Style
	Badge       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Button      lipgloss.Style
	ButtonOff   lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	UserBubble  lipgloss.Style
	OtherBubble lipgloss.Style
}

// Cells converts a spacing token into terminal cells.
func Cells(units int) int {
	return units / 8
}

func NewStyles(t Tokens) Styles {
	c := t.Colors
	pad := Cells(t.Spacing.MD)

	return Styles{
		Tokens: t,
		Doc:    lipgloss.NewStyle().Padding(Cells(t.Spacing.SM), pad),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Primary)).
			Bold(true).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Bold(t.Typography.H1.Bold),
		Heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Bold(t.Typography.H3.Bold).
			MarginTop(1),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextSecondary)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Background(lipgloss.Color(c.Surface)).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Primary)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Primary)).
			Underline(true).
			Bold(true).
			Padding(0, 1),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TextSecondary)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Primary)).
			Bold(true).
			Padding(0, 2),
		ButtonOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TextSecondary)).
			Background(lipgloss.Color(c.Surface)).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)).Italic(true),
		UserBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Primary)).
			Padding(0, 1),
		OtherBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Text)).
			Background(lipgloss.Color(c.Surface)).
			Padding(0, 1),
	}
}

// StatusColor is the fixed status palette used by the dashboard timeline
// and the project milestones.
func StatusColor(status models.Status, c Colors) string {
	switch status {
	case models.StatusCompleted:
		return c.Success
	case models.StatusInProgress:
		return c.Primary
	default:
		return c.Secondary
	}
}
