package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/logger"
	"github.com/julianstephens/onetake/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	loadCtx, cancel := context.WithTimeout(context.Background(), constants.LoadTimeout)
	defer cancel()
	if err := ctx.Store.Load(loadCtx); err != nil {
		return fmt.Errorf("failed to load %s data: %w", ctx.Store.Name(), err)
	}
	defer ctx.Store.Close()

	var opts []tea.ProgramOption
	if ctx.Config == nil || ctx.Config.AltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("starting tui", "data", ctx.Store.Name(), "theme", ctx.Themes.Mode())
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Session, ctx.Themes), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited: %w", err)
	}
	return nil
}
