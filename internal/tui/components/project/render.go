package project

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/theme"
)

// Header renders the project name with its status badge.
func Header(p models.Project, st theme.Styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(p.Name),
		st.Badge.Render(p.Status.Label()),
	)
}

// TabBar renders the tab strip with active highlighted.
func TabBar(active Tab, st theme.Styles) string {
	var tabs []string
	for i, t := range Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Label())
		if t == active {
			tabs = append(tabs, st.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, st.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Render draws a derived view. bar is used for the overview progress.
func Render(v View, st theme.Styles, bar progress.Model) string {
	switch v := v.(type) {
	case OverviewView:
		return renderOverview(v, st, bar)
	case TeamView:
		return renderTeam(v, st)
	case MilestonesView:
		return renderMilestones(v, st)
	default:
		return ""
	}
}

func renderOverview(v OverviewView, st theme.Styles, bar progress.Model) string {
	info := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Card.Render(st.Muted.Render(constants.LabelStart)+"\n"+st.Text.Render(v.StartDate)),
		" ",
		st.Card.Render(st.Muted.Render(constants.LabelDeadline)+"\n"+st.Text.Render(v.Deadline)),
	)
	progressTitle := fmt.Sprintf("%s  %s",
		st.Text.Render(constants.OverallProgress),
		st.Accent.Render(fmt.Sprintf("%d%%", v.ProgressPercent)),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		st.Text.Render(v.Description),
		"",
		info,
		"",
		progressTitle,
		bar.ViewAs(v.Fill),
	)
}

func renderTeam(v TeamView, st theme.Styles) string {
	avatar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(st.Tokens.Colors.Primary)).
		Bold(true).
		Padding(0, 1)

	rows := make([]string, len(v.Members))
	for i, m := range v.Members {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Center,
			avatar.Render(m.Initials),
			" ",
			lipgloss.JoinVertical(lipgloss.Left, st.Text.Bold(true).Render(m.Name), st.Muted.Render(m.Role)),
		)
	}
	return st.Card.Render(strings.Join(rows, "\n\n"))
}

func renderMilestones(v MilestonesView, st theme.Styles) string {
	rows := make([]string, len(v.Items))
	for i, m := range v.Items {
		marker := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.StatusColor(m.Status, st.Tokens.Colors))).
			Render(statusGlyph(m.Status))
		rows[i] = fmt.Sprintf("%s %s  %s", marker, st.Text.Render(m.Title), st.Muted.Render(m.Date))
	}
	return st.Card.Render(strings.Join(rows, "\n"))
}

func statusGlyph(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return "✔"
	case models.StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

// NewBar returns the overview progress bar in the primary color.
func NewBar(st theme.Styles, width int) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(st.Tokens.Colors.Primary),
		progress.WithoutPercentage(),
	)
	if width > 0 {
		bar.Width = width
	}
	return bar
}
