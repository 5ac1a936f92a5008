package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage"
	"github.com/julianstephens/onetake/internal/storage/fixtures"
)

var fixedNow = time.Unix(1686578400, 0)

func setupTestStore(t *testing.T) *Store {
	store := NewStore()
	store.now = func() time.Time { return fixedNow }
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// The sqlite store is a drop-in for the memory store.
var _ storage.Provider = (*Store)(nil)

func TestStoreNotLoaded(t *testing.T) {
	store := NewStore()
	if _, err := store.GetProject(context.Background()); !errors.Is(err, storage.ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestStoreLoadTwice(t *testing.T) {
	store := setupTestStore(t)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	services, err := store.GetServices(context.Background())
	if err != nil {
		t.Fatalf("GetServices: %v", err)
	}
	if len(services) != len(fixtures.Services()) {
		t.Errorf("second Load reseeded: got %d services", len(services))
	}
}

func TestStoreMatchesFixtures(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("project", func(t *testing.T) {
		got, err := store.GetProject(ctx)
		if err != nil {
			t.Fatalf("GetProject: %v", err)
		}
		if want := fixtures.Project(); !reflect.DeepEqual(got, want) {
			t.Errorf("project mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("services", func(t *testing.T) {
		got, err := store.GetServices(ctx)
		if err != nil {
			t.Fatalf("GetServices: %v", err)
		}
		if want := fixtures.Services(); !reflect.DeepEqual(got, want) {
			t.Errorf("services mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("threads", func(t *testing.T) {
		for _, mode := range []models.ChatMode{models.ChatModeTeam, models.ChatModeAssistant} {
			got, err := store.GetThread(ctx, mode)
			if err != nil {
				t.Fatalf("GetThread(%s): %v", mode, err)
			}
			if want := fixtures.Thread(mode); !reflect.DeepEqual(got, want) {
				t.Errorf("thread %s mismatch:\n got %+v\nwant %+v", mode, got, want)
			}
		}
		if _, err := store.GetThread(ctx, "bogus"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound for unknown mode, got %v", err)
		}
	})

	t.Run("timeline", func(t *testing.T) {
		got, err := store.GetTimeline(ctx)
		if err != nil {
			t.Fatalf("GetTimeline: %v", err)
		}
		if want := fixtures.Timeline(); !reflect.DeepEqual(got, want) {
			t.Errorf("timeline mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		got, err := store.GetMetrics(ctx)
		if err != nil {
			t.Fatalf("GetMetrics: %v", err)
		}
		if want := fixtures.Metrics(); !reflect.DeepEqual(got, want) {
			t.Errorf("metrics mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("updates", func(t *testing.T) {
		got, err := store.GetUpdates(ctx)
		if err != nil {
			t.Fatalf("GetUpdates: %v", err)
		}
		want := fixtures.Updates(fixedNow)
		if len(got) != len(want) {
			t.Fatalf("expected %d updates, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].Title != want[i].Title || !got[i].At.Equal(want[i].At) {
				t.Errorf("update %d: got %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}

func TestLoadAppliesMigrations(t *testing.T) {
	s := NewStore()
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer s.Close()

	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != 4 {
		t.Errorf("schema version = %d, want 4", version)
	}
}
