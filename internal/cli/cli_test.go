package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/onetake/internal/config"
	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
)

func setupTestContext(t *testing.T, driver string) (*Context, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.Default(path)
	cfg.Data.Driver = driver

	ctx, err := NewContext(cfg, path)
	if err != nil {
		t.Fatalf("failed to build context: %v", err)
	}
	var out bytes.Buffer
	ctx.Out = &out
	return ctx, &out
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{constants.DataDriverMemory, constants.DataDriverMemory, false},
		{constants.DataDriverSQLite, constants.DataDriverSQLite, false},
		{"", constants.DataDriverMemory, false},
		{"postgres", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			p, err := NewProvider(tt.driver)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, p.Name())
			}
		})
	}
}

func TestNewContextAuthChoice(t *testing.T) {
	ctx, _ := setupTestContext(t, constants.DataDriverMemory)
	if err := ctx.Session.Login(context.Background(), "", ""); err == nil {
		t.Error("blank credentials accepted with require_fields on")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.Default(path)
	off := false
	cfg.Auth.RequireFields = &off
	ctx, err := NewContext(cfg, path)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Session.Login(context.Background(), "", ""); err != nil {
		t.Errorf("stub should accept anything, got %v", err)
	}
}

func TestServicesCmd(t *testing.T) {
	for _, driver := range []string{constants.DataDriverMemory, constants.DataDriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx, out := setupTestContext(t, driver)
			cmd := &ServicesCmd{Category: "marketing"}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}

			got := out.String()
			seo := strings.Index(got, "Otimização SEO")
			perf := strings.Index(got, "Marketing de Performance")
			if seo < 0 || perf < 0 || seo > perf {
				t.Errorf("expected both marketing entries in order, got:\n%s", got)
			}
			if strings.Contains(got, "Gestão de Redes Sociais") {
				t.Error("social entry listed under marketing")
			}
			if !strings.Contains(got, constants.ContactTitle) {
				t.Error("contact card missing")
			}
		})
	}
}

func TestServicesCmdUnknownCategory(t *testing.T) {
	ctx, _ := setupTestContext(t, constants.DataDriverMemory)
	if err := (&ServicesCmd{Category: "video"}).Run(ctx); err == nil {
		t.Error("expected an error for an unknown category")
	}
}

func TestProjectCmd(t *testing.T) {
	tests := []struct {
		tab  string
		want string
	}{
		{"overview", "65%"},
		{"team", "Carlos Santos"},
		{"milestones", "Planejamento Estratégico"},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			ctx, out := setupTestContext(t, constants.DataDriverMemory)
			if err := (&ProjectCmd{Tab: tt.tab}).Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestThemeCmd(t *testing.T) {
	ctx, out := setupTestContext(t, constants.DataDriverMemory)
	if err := (&ThemeCmd{Mode: "light"}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Theme: light", "#FFFFFF", "#6C63FF", "full=9999", "h1       32/40 bold"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	if err := (&ThemeCmd{Mode: "sepia"}).Run(ctx); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestDebugDumpCmd(t *testing.T) {
	ctx, out := setupTestContext(t, constants.DataDriverSQLite)
	if err := (&DebugDumpCmd{What: "team"}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var thread []models.Message
	if err := json.Unmarshal(out.Bytes(), &thread); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(thread) != 3 || thread[0].DisplayName != "Ana Silva" {
		t.Errorf("unexpected thread %+v", thread)
	}
}

func TestDebugConfigCmd(t *testing.T) {
	ctx, out := setupTestContext(t, constants.DataDriverMemory)
	if err := (&DebugConfigCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["data_driver"] != constants.DataDriverMemory || got["theme"] != constants.ThemeModeDark {
		t.Errorf("unexpected config dump %v", got)
	}
}

func TestDoctorCmd(t *testing.T) {
	ctx, out := setupTestContext(t, constants.DataDriverSQLite)
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All checks passed.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
