package items

import (
	"context"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockitems -source=interface.go

// Repository defines the interface for equipment instance storage
type Repository interface {
	// Create stores a new instance, failing if the id is taken
	Create(ctx context.Context, instance *equipment.Instance) error

	// Get retrieves an instance by ID
	Get(ctx context.Context, id string) (*equipment.Instance, error)

	// Update replaces an existing instance
	Update(ctx context.Context, instance *equipment.Instance) error

	// Delete removes an instance
	Delete(ctx context.Context, id string) error

	// ListByOwner returns the owner's instances, oldest first
	ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error)
}
