package catalog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/theme"
)

// Chips renders the category selector with selected highlighted.
func Chips(selected models.Category, st theme.Styles) string {
	var chips []string
	for i, c := range models.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c.Label)
		if c.ID == selected {
			chips = append(chips, st.ActiveTab.Render(label))
		} else {
			chips = append(chips, st.InactiveTab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// Card renders one catalog entry.
func Card(svc models.Service, st theme.Styles, width int) string {
	var features []string
	for _, f := range svc.Features {
		features = append(features, st.Success.Render("✔ ")+st.Text.Render(f))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Accent.Render(svc.Name),
		st.Muted.Width(width).Render(svc.Description),
		"",
		strings.Join(features, "\n"),
		"",
		st.Text.Bold(true).Render(svc.Price),
		st.Button.Render(constants.QuoteButton),
	)
	return st.Card.Width(width).Render(body)
}

// ContactCard is always shown after the entries.
func ContactCard(st theme.Styles, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Heading.UnsetMarginTop().Render(constants.ContactTitle),
		st.Muted.Width(width).Render(constants.ContactText),
		"",
		st.Button.Render("✉ "+constants.ContactButton),
	)
	return st.Card.Width(width).BorderForeground(lipgloss.Color(st.Tokens.Colors.Primary)).Render(body)
}

// List renders the filtered entries followed by the contact card.
func List(services []models.Service, st theme.Styles, width int) string {
	cards := make([]string, 0, len(services)+1)
	for _, svc := range services {
		cards = append(cards, Card(svc, st, width))
	}
	cards = append(cards, ContactCard(st, width))
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
