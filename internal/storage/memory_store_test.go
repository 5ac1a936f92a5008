package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/onetake/internal/models"
)

var _ Provider = (*MemoryStore)(nil)

func setupTestMemoryStore(t *testing.T) *MemoryStore {
	store := NewMemoryStore()
	store.now = func() time.Time { return time.Date(2023, 6, 12, 14, 0, 0, 0, time.UTC) }
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMemoryStoreNotLoaded(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetProject(ctx); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("GetProject before Load: expected ErrNotLoaded, got %v", err)
	}
	if _, err := store.GetServices(ctx); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("GetServices before Load: expected ErrNotLoaded, got %v", err)
	}

	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	store.Close()
	if _, err := store.GetTimeline(ctx); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("GetTimeline after Close: expected ErrNotLoaded, got %v", err)
	}
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	store := setupTestMemoryStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.GetMetrics(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestMemoryStoreThreads(t *testing.T) {
	store := setupTestMemoryStore(t)
	ctx := context.Background()

	tests := []struct {
		mode    models.ChatMode
		wantLen int
		wantErr error
	}{
		{models.ChatModeTeam, 3, nil},
		{models.ChatModeAssistant, 3, nil},
		{models.ChatMode("bogus"), 0, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			thread, err := store.GetThread(ctx, tt.mode)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if len(thread) != tt.wantLen {
				t.Errorf("expected %d messages, got %d", tt.wantLen, len(thread))
			}
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := setupTestMemoryStore(t)
	ctx := context.Background()

	first, err := store.GetServices(ctx)
	if err != nil {
		t.Fatalf("GetServices: %v", err)
	}
	first[0].Name = "mutated"
	first[0].Features[0] = "mutated"

	second, err := store.GetServices(ctx)
	if err != nil {
		t.Fatalf("GetServices: %v", err)
	}
	if second[0].Name == "mutated" || second[0].Features[0] == "mutated" {
		t.Error("mutating a result leaked into the store")
	}
}

func TestMemoryStoreData(t *testing.T) {
	store := setupTestMemoryStore(t)
	ctx := context.Background()

	project, err := store.GetProject(ctx)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if project.ProgressPercent != 65 {
		t.Errorf("expected progress 65, got %v", project.ProgressPercent)
	}
	if len(project.Team) != 3 || len(project.Milestones) != 4 {
		t.Errorf("expected 3 members and 4 milestones, got %d and %d", len(project.Team), len(project.Milestones))
	}

	metrics, err := store.GetMetrics(ctx)
	if err != nil {
		t.Fatalf("GetMetrics: %v", err)
	}
	if len(metrics.Labels) != 6 || len(metrics.Values) != 6 {
		t.Errorf("expected 6 metric points, got %d labels and %d values", len(metrics.Labels), len(metrics.Values))
	}

	updates, err := store.GetUpdates(ctx)
	if err != nil {
		t.Fatalf("GetUpdates: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(updates))
	}
	if got := store.now().Sub(updates[0].At); got != 2*time.Hour {
		t.Errorf("expected update 2h old, got %v", got)
	}
}
