package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/onetake/internal/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected defaults for a missing file, got %v", err)
	}
	if cfg.UI.Theme != constants.ThemeModeDark {
		t.Errorf("expected dark theme, got %q", cfg.UI.Theme)
	}
	if cfg.Data.Driver != constants.DataDriverMemory {
		t.Errorf("expected memory driver, got %q", cfg.Data.Driver)
	}
	if !cfg.AltScreen() || !cfg.RequireFields() {
		t.Error("expected alt_screen and require_fields to default to true")
	}
	if cfg.Log.Dir != dir {
		t.Errorf("expected log dir %q, got %q", dir, cfg.Log.Dir)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			body: "ui:\n  theme: light\n  alt_screen: false\nauth:\n  require_fields: false\ndata:\n  driver: sqlite\nlog:\n  debug: true\n  dir: /tmp/onetake\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.UI.Theme != constants.ThemeModeLight {
					t.Errorf("expected light theme, got %q", cfg.UI.Theme)
				}
				if cfg.AltScreen() {
					t.Error("expected alt_screen false")
				}
				if cfg.RequireFields() {
					t.Error("expected require_fields false")
				}
				if cfg.Data.Driver != constants.DataDriverSQLite {
					t.Errorf("expected sqlite driver, got %q", cfg.Data.Driver)
				}
				if !cfg.Log.Debug || cfg.Log.Dir != "/tmp/onetake" {
					t.Errorf("unexpected log config %+v", cfg.Log)
				}
			},
		},
		{
			name: "partial file keeps defaults",
			body: "data:\n  driver: sqlite\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.UI.Theme != constants.ThemeModeDark {
					t.Errorf("expected dark theme, got %q", cfg.UI.Theme)
				}
				if !cfg.RequireFields() {
					t.Error("expected require_fields true")
				}
			},
		},
		{
			name:    "unknown theme",
			body:    "ui:\n  theme: sepia\n",
			wantErr: "ui.theme",
		},
		{
			name:    "unknown driver",
			body:    "data:\n  driver: postgres\n",
			wantErr: "data.driver",
		},
		{
			name:    "malformed yaml",
			body:    "ui: [\n",
			wantErr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.body))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
