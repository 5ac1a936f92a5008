package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/onetake/internal/cli"
	"github.com/julianstephens/onetake/internal/config"
	"github.com/julianstephens/onetake/internal/constants"
	apperrors "github.com/julianstephens/onetake/internal/errors"
	"github.com/julianstephens/onetake/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Verbose bool   `name:"debug" help:"Enable debug logging."`
	Mode    string `name:"theme" help:"Override the configured theme (light or dark)."`
	Data    string `help:"Override the fixture source (memory or sqlite)."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the client portal." default:"1"`
	Services cli.ServicesCmd `cmd:"" help:"List the service catalog."`
	Project  cli.ProjectCmd  `cmd:"" help:"Show project details."`
	Theme    cli.ThemeCmd    `cmd:"" help:"Print the design tokens."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run diagnostics."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.AppTitle+" client portal"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		os.Exit(1)
	}
	if CLI.Mode != "" {
		cfg.UI.Theme = CLI.Mode
	}
	if CLI.Data != "" {
		cfg.Data.Driver = CLI.Data
	}
	if err := cfg.Validate(); err != nil {
		ctx.Fatalf("%v", err)
	}
	cfg.Log.Debug = cfg.Log.Debug || CLI.Verbose

	// the TUI owns the terminal, so only the print commands tee to stderr
	if err := logger.Init(logger.Config{
		Debug:   cfg.Log.Debug,
		Dir:     cfg.Log.Dir,
		Console: ctx.Command() != "tui",
	}); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Formatf("failed to initialize logger: %v", err))
	}

	appCtx, err := cli.NewContext(cfg, CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
