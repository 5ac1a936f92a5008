package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/onetake/internal/models"
)

type DebugCmd struct {
	Config *DebugConfigCmd `cmd:"" help:"Show the effective configuration."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump fixture data as JSON."`
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *Context) error {
	output := map[string]any{
		"config_path":    ctx.ConfigPath,
		"theme":          ctx.Themes.Mode(),
		"data_driver":    ctx.Store.Name(),
		"require_fields": ctx.Config.RequireFields(),
		"alt_screen":     ctx.Config.AltScreen(),
		"log_dir":        ctx.Config.Log.Dir,
		"log_debug":      ctx.Config.Log.Debug,
	}
	return writeJSON(ctx, output)
}

type DebugDumpCmd struct {
	What string `arg:"" help:"What to dump (project, services, team, assistant, timeline, metrics, updates)." enum:"project,services,team,assistant,timeline,metrics,updates"`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	bg := context.Background()
	if err := ctx.Store.Load(bg); err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}
	defer ctx.Store.Close()

	var (
		data any
		err  error
	)
	switch cmd.What {
	case "project":
		data, err = ctx.Store.GetProject(bg)
	case "services":
		data, err = ctx.Store.GetServices(bg)
	case "team":
		data, err = ctx.Store.GetThread(bg, models.ChatModeTeam)
	case "assistant":
		data, err = ctx.Store.GetThread(bg, models.ChatModeAssistant)
	case "timeline":
		data, err = ctx.Store.GetTimeline(bg)
	case "metrics":
		data, err = ctx.Store.GetMetrics(bg)
	case "updates":
		data, err = ctx.Store.GetUpdates(bg)
	default:
		return fmt.Errorf("unknown dump target: %s", cmd.What)
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", cmd.What, err)
	}
	return writeJSON(ctx, data)
}

func writeJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.out(), string(jsonBytes))
	return nil
}
