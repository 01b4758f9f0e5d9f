package items

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu        sync.RWMutex
	instances map[string]*equipment.Instance
}

// NewInMemoryRepository creates a new in-memory equipment repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		instances: make(map[string]*equipment.Instance),
	}
}

// Create stores a new instance
func (r *inMemoryRepository) Create(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}
	if instance.ID == "" {
		return forgeerr.InvalidArgument("instance ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instances[instance.ID]; exists {
		return forgeerr.AlreadyExistsf("instance with ID %s already exists", instance.ID)
	}

	r.instances[instance.ID] = instance.Clone()
	return nil
}

// Get retrieves an instance by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*equipment.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instance, exists := r.instances[id]
	if !exists {
		return nil, forgeerr.NotFoundf("instance not found: %s", id)
	}

	return instance.Clone(), nil
}

// Update replaces an existing instance
func (r *inMemoryRepository) Update(ctx context.Context, instance *equipment.Instance) error {
	if instance == nil {
		return forgeerr.InvalidArgument("instance cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instances[instance.ID]; !exists {
		return forgeerr.NotFoundf("instance not found: %s", instance.ID)
	}

	r.instances[instance.ID] = instance.Clone()
	return nil
}

// Delete removes an instance
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.instances[id]; !exists {
		return forgeerr.NotFoundf("instance not found: %s", id)
	}

	delete(r.instances, id)
	return nil
}

// ListByOwner returns the owner's instances, oldest first
func (r *inMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*equipment.Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := []*equipment.Instance{}
	for _, instance := range r.instances {
		if instance.OwnerID == ownerID {
			owned = append(owned, instance.Clone())
		}
	}
	sortByCreated(owned)

	return owned, nil
}
