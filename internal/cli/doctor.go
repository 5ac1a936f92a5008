package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.out()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	checks := []struct {
		name string
		run  func(*Context) error
	}{
		{"Config valid", checkConfig},
		{"Log directory writable", checkLogDir},
		{"Data source loads", checkDataSource},
	}

	hasError := false
	for _, c := range checks {
		if err := c.run(ctx); err != nil {
			fmt.Fprintf(out, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(out, "   Error: %v\n", err)
			hasError = true
			continue
		}
		fmt.Fprintf(out, "✓ %s: OK\n", c.name)
	}

	fmt.Fprintln(out)
	if hasError {
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

func checkConfig(ctx *Context) error {
	if ctx.Config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	return ctx.Config.Validate()
}

func checkLogDir(ctx *Context) error {
	dir := filepath.Join(ctx.Config.Log.Dir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkDataSource(ctx *Context) error {
	bg, cancel := context.WithTimeout(context.Background(), constants.LoadTimeout)
	defer cancel()

	if err := ctx.Store.Load(bg); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if _, err := ctx.Store.GetProject(bg); err != nil {
		return err
	}
	if _, err := ctx.Store.GetServices(bg); err != nil {
		return err
	}
	for _, mode := range []models.ChatMode{models.ChatModeTeam, models.ChatModeAssistant} {
		if _, err := ctx.Store.GetThread(bg, mode); err != nil {
			return err
		}
	}
	return nil
}
