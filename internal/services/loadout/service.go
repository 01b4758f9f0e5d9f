package loadout

//go:generate mockgen -destination=mock/mock_service.go -package=mockloadout -source=service.go

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	loadoutdomain "github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/skills"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
)

// StatsInvalidator drops cached player stats
type StatsInvalidator interface {
	InvalidateCache(ctx context.Context, playerID string) error
}

// RuneCatalog is the part of the catalog the service reads
type RuneCatalog interface {
	Rune(id string) (*skills.RuneDefinition, bool)
}

// Service manages what a player has equipped and which runes are bound.
// Every change invalidates the player's cached stats.
type Service interface {
	Get(ctx context.Context, playerID string) (*loadoutdomain.Loadout, error)

	// Equip puts an instance into the slot of its base type
	Equip(ctx context.Context, playerID, instanceID string) (*EquipResult, error)

	Unequip(ctx context.Context, playerID string, slot equipment.Slot) (*loadoutdomain.Loadout, error)

	BindRune(ctx context.Context, playerID string, binding loadoutdomain.RuneBinding) (*loadoutdomain.Loadout, error)

	UnbindRune(ctx context.Context, playerID string, skillSlot int) (*loadoutdomain.Loadout, error)
}

// EquipResult carries the updated loadout and whatever the slot held before
type EquipResult struct {
	Loadout  *loadoutdomain.Loadout `json:"loadout"`
	Slot     equipment.Slot         `json:"slot"`
	Previous string                 `json:"previous,omitempty"`
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Loadouts loadouts.Repository
	Items    items.Repository
	Runes    RuneCatalog
	Stats    StatsInvalidator
	Logger   *slog.Logger     // Optional - defaults to slog.Default()
	Clock    func() time.Time // Optional - defaults to time.Now
}

type service struct {
	loadouts loadouts.Repository
	items    items.Repository
	runes    RuneCatalog
	stats    StatsInvalidator
	logger   *slog.Logger
	clock    func() time.Time
}

// NewService creates a new loadout service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Loadouts == nil || cfg.Items == nil || cfg.Runes == nil || cfg.Stats == nil {
		panic("loadout ServiceConfig requires Loadouts, Items, Runes and Stats")
	}

	svc := &service{
		loadouts: cfg.Loadouts,
		items:    cfg.Items,
		runes:    cfg.Runes,
		stats:    cfg.Stats,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.clock == nil {
		svc.clock = time.Now
	}
	return svc
}

func (s *service) Get(ctx context.Context, playerID string) (*loadoutdomain.Loadout, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID is required")
	}
	return s.loadouts.Get(ctx, playerID)
}

func (s *service) Equip(ctx context.Context, playerID, instanceID string) (*EquipResult, error) {
	if instanceID == "" {
		return nil, forgeerr.InvalidArgument("instance ID is required")
	}

	instance, err := s.items.Get(ctx, instanceID)
	if err != nil {
		return nil, err
	}
	// Currency changes notify the owner, so only owned items may be equipped
	if instance.OwnerID == "" {
		return nil, forgeerr.InvalidArgumentf("instance %s has no owner", instanceID)
	}
	if instance.OwnerID != playerID {
		return nil, forgeerr.InvalidArgumentf("instance %s does not belong to %s", instanceID, playerID).
			WithMeta("owner_id", instance.OwnerID)
	}

	var previous string
	l, err := s.update(ctx, playerID, func(l *loadoutdomain.Loadout) error {
		var err error
		previous, err = l.Equip(instance.Slot, instance.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "equipped item",
		"player_id", playerID,
		"slot", instance.Slot,
		"instance_id", instance.ID,
		"previous", previous)

	return &EquipResult{Loadout: l, Slot: instance.Slot, Previous: previous}, nil
}

func (s *service) Unequip(ctx context.Context, playerID string, slot equipment.Slot) (*loadoutdomain.Loadout, error) {
	if !slot.IsValid() {
		return nil, forgeerr.InvalidArgumentf("invalid slot %q", slot)
	}
	return s.update(ctx, playerID, func(l *loadoutdomain.Loadout) error {
		if _, ok := l.Unequip(slot); !ok {
			return forgeerr.NotFoundf("nothing equipped in %s", slot)
		}
		return nil
	})
}

func (s *service) BindRune(ctx context.Context, playerID string, binding loadoutdomain.RuneBinding) (*loadoutdomain.Loadout, error) {
	def, ok := s.runes.Rune(binding.RuneID)
	if !ok {
		return nil, forgeerr.InvalidArgumentf("unknown rune %q", binding.RuneID)
	}
	if binding.Level > def.MaxLevel {
		return nil, forgeerr.InvalidArgumentf("%s max level is %d, got %d", def.ID, def.MaxLevel, binding.Level)
	}
	return s.update(ctx, playerID, func(l *loadoutdomain.Loadout) error {
		return l.BindRune(binding)
	})
}

func (s *service) UnbindRune(ctx context.Context, playerID string, skillSlot int) (*loadoutdomain.Loadout, error) {
	return s.update(ctx, playerID, func(l *loadoutdomain.Loadout) error {
		if !l.UnbindRune(skillSlot) {
			return forgeerr.NotFoundf("no rune bound to skill slot %d", skillSlot)
		}
		return nil
	})
}

// update mutates a copy of the loadout, saves it and invalidates the player's stats
func (s *service) update(ctx context.Context, playerID string, mutate func(l *loadoutdomain.Loadout) error) (*loadoutdomain.Loadout, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID is required")
	}

	current, err := s.loadouts.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		if _, ok := err.(*forgeerr.Error); ok {
			return nil, err
		}
		return nil, forgeerr.WrapWithCode(err, forgeerr.CodeInvalidArgument, "invalid loadout change")
	}

	working.UpdatedAt = s.clock()
	if err := s.loadouts.Save(ctx, working); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to save loadout for %s", playerID)
	}

	if err := s.stats.InvalidateCache(ctx, playerID); err != nil {
		s.logger.ErrorContext(ctx, "stats invalidation failed after loadout change",
			"player_id", playerID,
			"error", err)
		return nil, err
	}
	return working, nil
}
