package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/theme"
)

// failingProvider fails metrics and serves everything else from memory.
type failingProvider struct {
	*storage.MemoryStore
}

func (failingProvider) GetMetrics(context.Context) (models.MetricSeries, error) {
	return models.MetricSeries{}, errors.New("metrics offline")
}

func loadedStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store
}

func TestLoad(t *testing.T) {
	data, err := Load(context.Background(), loadedStore(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Timeline) != 3 {
		t.Errorf("expected 3 timeline steps, got %d", len(data.Timeline))
	}
	if len(data.Metrics.Values) != 6 {
		t.Errorf("expected 6 metric points, got %d", len(data.Metrics.Values))
	}
	if len(data.Updates) != 1 {
		t.Errorf("expected 1 update, got %d", len(data.Updates))
	}
}

func TestLoadFailure(t *testing.T) {
	_, err := Load(context.Background(), failingProvider{loadedStore(t)})
	if err == nil || !strings.Contains(err.Error(), "load metrics") {
		t.Fatalf("expected wrapped metrics error, got %v", err)
	}
}

func TestBarHeights(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		height int
		want   []int
	}{
		{"fixture series", []float64{20, 45, 28, 80, 99, 43}, 6, []int{1, 3, 2, 5, 6, 3}},
		{"all zero", []float64{0, 0}, 4, []int{0, 0}},
		{"negative clamps to zero", []float64{-5, 10}, 4, []int{0, 4}},
		{"zero height", []float64{1, 2}, 0, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BarHeights(tt.values, tt.height)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}

func TestRenderChart(t *testing.T) {
	series := models.MetricSeries{Labels: []string{"Jan", "Fev"}, Values: []float64{50, 100}}
	out := RenderChart(series, 2, lipgloss.NewStyle(), lipgloss.NewStyle())

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 bar rows and a label row, got %d lines:\n%s", len(lines), out)
	}
	if strings.Count(out, "█") != 3*barWidth {
		t.Errorf("expected 3 filled cells, got:\n%s", out)
	}
	if !strings.Contains(lines[2], "Jan") || !strings.Contains(lines[2], "Fev") {
		t.Errorf("label row missing labels: %q", lines[2])
	}
}

func newTestModel(t *testing.T, p storage.Provider) Model {
	m := New(p, theme.NewStore(theme.Dark))
	m.now = func() time.Time { return time.Date(2023, 6, 12, 14, 0, 0, 0, time.UTC) }
	m.SetSize(100, 60)
	return m
}

func TestQuickActionsNavigate(t *testing.T) {
	m := newTestModel(t, loadedStore(t))

	tests := []struct {
		key  string
		want nav.Screen
	}{
		{"c", nav.Chat},
		{"p", nav.ProjectDetails},
		{"s", nav.ServiceCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if cmd == nil {
				t.Fatal("expected a navigation command")
			}
			msg, ok := cmd().(nav.NavigateMsg)
			if !ok || msg.Target != tt.want || msg.Mode != nav.Push {
				t.Errorf("expected Push(%v), got %#v", tt.want, msg)
			}
		})
	}
}

func TestFocusCyclesAndEnterPushes(t *testing.T) {
	m := newTestModel(t, loadedStore(t))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Focused().Target != nav.ServiceCatalog {
		t.Fatalf("expected focus to wrap to services, got %v", m.Focused().Target)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Focused().Target != nav.Chat {
		t.Fatalf("expected focus back on chat, got %v", m.Focused().Target)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(nav.NavigateMsg); !ok || msg.Target != nav.Chat {
		t.Errorf("expected Push(Chat), got %#v", msg)
	}
}

func TestViewAfterLoad(t *testing.T) {
	store := loadedStore(t)
	m := newTestModel(t, store)

	if view := m.View(); !strings.Contains(view, constants.LoadingText) {
		t.Errorf("expected loading placeholder before data arrives")
	}

	data, err := Load(context.Background(), store)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// pin the update time to the model clock
	data.Updates = []models.Update{{Title: "Nova versão do design disponível", At: m.now().Add(-2 * time.Hour)}}
	m, _ = m.Update(loadedMsg{data: data})

	view := m.View()
	for _, want := range []string{
		constants.Greeting,
		"Monday, 12 June 2023",
		"Briefing Finalizado",
		constants.SectionMetrics,
		"Nova versão do design disponível",
		"2 hours ago",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFailedLoadRetries(t *testing.T) {
	m := newTestModel(t, loadedStore(t))
	m, _ = m.Update(loadedMsg{err: errors.New("offline")})

	if view := m.View(); !strings.Contains(view, "offline") {
		t.Errorf("expected error on screen, got:\n%s", view)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("expected retry to start a new load")
	}
	if m.load.Ready() {
		t.Error("expected loading state after retry")
	}
}
