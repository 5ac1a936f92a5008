package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/theme"
	"github.com/julianstephens/onetake/internal/tui/components/project"
)

type ProjectCmd struct {
	Tab string `help:"Tab to print (overview, team, milestones)." default:"overview" enum:"overview,team,milestones"`
}

func (c *ProjectCmd) Run(ctx *Context) error {
	tab, err := project.ParseTab(c.Tab)
	if err != nil {
		return err
	}

	if err := ctx.Store.Load(context.Background()); err != nil {
		return err
	}
	defer ctx.Store.Close()

	p, err := ctx.Store.GetProject(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	st := theme.NewStyles(ctx.Themes.Tokens())
	view := project.Derive(project.State{}.SelectTab(tab), p)
	fmt.Fprintln(ctx.out(), lipgloss.JoinVertical(lipgloss.Left,
		project.Header(p, st),
		"",
		project.TabBar(tab, st),
		"",
		project.Render(view, st, project.NewBar(st, 40)),
	))
	return nil
}
