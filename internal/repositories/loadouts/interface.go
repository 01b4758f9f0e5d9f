package loadouts

import (
	"context"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
)

// Repository defines the interface for loadout storage.
// Players without a stored loadout get an empty one.
type Repository interface {
	Get(ctx context.Context, playerID string) (*loadout.Loadout, error)
	Save(ctx context.Context, l *loadout.Loadout) error
	Delete(ctx context.Context, playerID string) error
}
