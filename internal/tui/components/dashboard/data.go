package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
	"github.com/julianstephens/onetake/internal/nav"
	"github.com/julianstephens/onetake/internal/storage"
)

// QuickAction is one of the tiles under the greeting.
type QuickAction struct {
	Label  string
	Icon   string
	Key    string
	Target nav.Screen
}

// Actions returns the quick-action tiles in display order.
func Actions() []QuickAction {
	return []QuickAction{
		{Label: constants.ActionChat, Icon: "✉", Key: "c", Target: nav.Chat},
		{Label: constants.ActionProject, Icon: "◆", Key: "p", Target: nav.ProjectDetails},
		{Label: constants.ActionServices, Icon: "☰", Key: "s", Target: nav.ServiceCatalog},
	}
}

// Data is everything the dashboard renders below the quick actions.
type Data struct {
	Timeline []models.TimelineItem
	Metrics  models.MetricSeries
	Updates  []models.Update
}

// Load fetches the dashboard sections concurrently. The first failure
// cancels the remaining fetches.
func Load(ctx context.Context, p storage.Provider) (Data, error) {
	var d Data
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		timeline, err := p.GetTimeline(ctx)
		if err != nil {
			return fmt.Errorf("load timeline: %w", err)
		}
		d.Timeline = timeline
		return nil
	})
	g.Go(func() error {
		metrics, err := p.GetMetrics(ctx)
		if err != nil {
			return fmt.Errorf("load metrics: %w", err)
		}
		d.Metrics = metrics
		return nil
	})
	g.Go(func() error {
		updates, err := p.GetUpdates(ctx)
		if err != nil {
			return fmt.Errorf("load updates: %w", err)
		}
		d.Updates = updates
		return nil
	})

	if err := g.Wait(); err != nil {
		return Data{}, err
	}
	return d, nil
}
