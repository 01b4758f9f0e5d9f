package aggregator

import (
	"context"

	"github.com/KirkDiggler/dungeon-forge/internal/events"
)

// InvalidationListener drops a player's cached stats when one of their
// items changes. Subscribe it to events.EventTypeItemModified.
type InvalidationListener struct {
	stats Service
}

// NewInvalidationListener creates a listener that invalidates through stats
func NewInvalidationListener(stats Service) *InvalidationListener {
	return &InvalidationListener{stats: stats}
}

// HandleEvent implements events.Listener
func (l *InvalidationListener) HandleEvent(ctx context.Context, event *events.Event) error {
	if event.PlayerID == "" {
		return nil
	}
	return l.stats.InvalidateCache(ctx, event.PlayerID)
}

// Priority implements events.Listener
func (l *InvalidationListener) Priority() int { return 100 }

// ID implements events.Listener
func (l *InvalidationListener) ID() string { return "stats-invalidation" }
