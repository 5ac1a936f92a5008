package storage

import (
	"context"
	"errors"

	"github.com/julianstephens/onetake/internal/models"
)

var (
	// ErrNotLoaded is returned by getters called before Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("not found")
)

// Provider is where screens get their data from. Swapping the fixture
// providers for a backend client changes nothing above this interface.
type Provider interface {
	// Lifecycle
	Load(ctx context.Context) error
	Close() error

	// Project
	GetProject(ctx context.Context) (models.Project, error)

	// Catalog
	GetServices(ctx context.Context) ([]models.Service, error)

	// Chat
	GetThread(ctx context.Context, mode models.ChatMode) ([]models.Message, error)

	// Dashboard
	GetTimeline(ctx context.Context) ([]models.TimelineItem, error)
	GetMetrics(ctx context.Context) (models.MetricSeries, error)
	GetUpdates(ctx context.Context) ([]models.Update, error)

	// Utils
	Name() string
}
