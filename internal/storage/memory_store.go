package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/storage/fixtures"
)

// MemoryStore serves the fixtures straight from memory.
type MemoryStore struct {
	now func() time.Time

	mu     sync.RWMutex
	loaded bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Name() string {
	return constants.DataDriverMemory
}

func (s *MemoryStore) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (s *MemoryStore) GetProject(ctx context.Context) (models.Project, error) {
	if err := s.ready(ctx); err != nil {
		return models.Project{}, err
	}
	return fixtures.Project(), nil
}

func (s *MemoryStore) GetServices(ctx context.Context) ([]models.Service, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return fixtures.Services(), nil
}

func (s *MemoryStore) GetThread(ctx context.Context, mode models.ChatMode) ([]models.Message, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	thread := fixtures.Thread(mode)
	if thread == nil {
		return nil, fmt.Errorf("thread %q: %w", mode, ErrNotFound)
	}
	return thread, nil
}

func (s *MemoryStore) GetTimeline(ctx context.Context) ([]models.TimelineItem, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return fixtures.Timeline(), nil
}

func (s *MemoryStore) GetMetrics(ctx context.Context) (models.MetricSeries, error) {
	if err := s.ready(ctx); err != nil {
		return models.MetricSeries{}, err
	}
	return fixtures.Metrics(), nil
}

func (s *MemoryStore) GetUpdates(ctx context.Context) ([]models.Update, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	return fixtures.Updates(s.now()), nil
}
