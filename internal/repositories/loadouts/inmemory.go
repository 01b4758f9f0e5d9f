package loadouts

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	loadouts map[string]*loadout.Loadout
}

// NewInMemoryRepository creates a new in-memory loadout repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		loadouts: make(map[string]*loadout.Loadout),
	}
}

func (r *inMemoryRepository) Get(ctx context.Context, playerID string) (*loadout.Loadout, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	l, exists := r.loadouts[playerID]
	if !exists {
		return loadout.New(playerID), nil
	}
	return l.Clone(), nil
}

func (r *inMemoryRepository) Save(ctx context.Context, l *loadout.Loadout) error {
	if l == nil {
		return forgeerr.InvalidArgument("loadout cannot be nil")
	}
	if l.PlayerID == "" {
		return forgeerr.InvalidArgument("player ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.loadouts[l.PlayerID] = l.Clone()
	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.loadouts, playerID)
	return nil
}
