// Package aggregator folds a player's equipped items and bound runes into PlayerStats.
//
// Aggregated stats are cached per player. Nothing invalidates the cache on its own:
// whoever changes a loadout or an equipped instance must call InvalidateCache.
package aggregator

//go:generate mockgen -destination=mock/mock_service.go -package=mockaggregator -source=service.go

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/skills"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/loadouts"
)

// RuneCatalog is the part of the catalog the aggregator reads
type RuneCatalog interface {
	Rune(id string) (*skills.RuneDefinition, bool)
}

// Service aggregates player stats
type Service interface {
	// CollectStats returns the player's aggregated stats, from cache when possible
	CollectStats(ctx context.Context, playerID string) (*stats.PlayerStats, error)

	// InvalidateCache drops the player's cached stats
	InvalidateCache(ctx context.Context, playerID string) error

	// Sources lists every contribution that feeds the player's stats
	Sources(ctx context.Context, playerID string) ([]stats.Source, error)
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Loadouts loadouts.Repository
	Items    items.Repository
	Runes    RuneCatalog
	Cache    Cache            // Optional - defaults to an in-memory cache
	Metrics  *metrics.Metrics // Optional
	Logger   *slog.Logger     // Optional - defaults to slog.Default()
}

type service struct {
	loadouts loadouts.Repository
	items    items.Repository
	runes    RuneCatalog
	cache    Cache
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewService creates a new aggregator service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Loadouts == nil || cfg.Items == nil || cfg.Runes == nil {
		panic("aggregator ServiceConfig requires Loadouts, Items and Runes")
	}

	svc := &service{
		loadouts: cfg.Loadouts,
		items:    cfg.Items,
		runes:    cfg.Runes,
		cache:    cfg.Cache,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
	if svc.cache == nil {
		svc.cache = NewInMemoryCache()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

// contributions is everything gathered from a loadout
type contributions struct {
	sources []stats.Source
	weapons []equipment.DamageRange
}

func (s *service) CollectStats(ctx context.Context, playerID string) (*stats.PlayerStats, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID is required")
	}

	cached, ok, err := s.cache.Get(ctx, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "stats cache read failed", "player_id", playerID, "error", err)
	}
	if ok {
		s.metrics.RecordCacheLookup(true)
		return cached, nil
	}
	s.metrics.RecordCacheLookup(false)

	c, err := s.gather(ctx, playerID)
	if err != nil {
		return nil, err
	}

	out := stats.NewPlayerStats(playerID)
	for _, src := range c.sources {
		if src.Kind == stats.SourceKindWeapon {
			continue
		}
		if err := out.ApplySource(src); err != nil {
			return nil, forgeerr.Wrapf(err, "bad contribution from %s %s", src.Kind, src.SourceID)
		}
	}
	for _, w := range c.weapons {
		out.AddWeaponDamage(float64(w.Min), float64(w.Max))
	}

	if err := s.cache.Set(ctx, out); err != nil {
		s.logger.WarnContext(ctx, "stats cache write failed", "player_id", playerID, "error", err)
	}
	s.logger.DebugContext(ctx, "aggregated player stats",
		"player_id", playerID,
		"sources", len(c.sources))

	return out.Clone(), nil
}

func (s *service) InvalidateCache(ctx context.Context, playerID string) error {
	if playerID == "" {
		return forgeerr.InvalidArgument("player ID is required")
	}
	if err := s.cache.Delete(ctx, playerID); err != nil {
		return forgeerr.Wrapf(err, "failed to invalidate stats for %s", playerID)
	}
	return nil
}

func (s *service) Sources(ctx context.Context, playerID string) ([]stats.Source, error) {
	if playerID == "" {
		return nil, forgeerr.InvalidArgument("player ID is required")
	}
	c, err := s.gather(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return c.sources, nil
}

func (s *service) gather(ctx context.Context, playerID string) (*contributions, error) {
	l, err := s.loadouts.Get(ctx, playerID)
	if err != nil {
		return nil, forgeerr.Wrapf(err, "failed to load loadout for %s", playerID)
	}

	equipped, err := s.loadEquipped(ctx, l)
	if err != nil {
		return nil, err
	}

	c := &contributions{sources: []stats.Source{}}
	for _, instance := range equipped {
		if instance == nil {
			continue
		}
		c.addInstance(instance)
	}

	for _, binding := range l.Runes {
		def, ok := s.runes.Rune(binding.RuneID)
		if !ok {
			s.logger.WarnContext(ctx, "bound rune is not in the catalog",
				"player_id", playerID,
				"rune_id", binding.RuneID,
				"skill_slot", binding.SkillSlot)
			continue
		}
		c.sources = append(c.sources, stats.Source{
			Kind:     stats.SourceKindRune,
			SourceID: def.ID,
			Name:     fmt.Sprintf("%s (slot %d)", def.Name, binding.SkillSlot),
			Stat:     def.Stat,
			Value:    def.ValueAt(binding.Level),
		})
	}

	return c, nil
}

// loadEquipped fetches every equipped instance concurrently, keeping slot order.
// Instances deleted since they were equipped are skipped.
func (s *service) loadEquipped(ctx context.Context, l *loadout.Loadout) ([]*equipment.Instance, error) {
	out := make([]*equipment.Instance, len(l.Equipped))

	g, gctx := errgroup.WithContext(ctx)
	for i, e := range l.Equipped {
		g.Go(func() error {
			instance, err := s.items.Get(gctx, e.InstanceID)
			if err != nil {
				if forgeerr.IsNotFound(err) {
					s.logger.WarnContext(gctx, "equipped instance no longer exists",
						"player_id", l.PlayerID,
						"slot", e.Slot,
						"instance_id", e.InstanceID)
					return nil
				}
				return err
			}
			out[i] = instance
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to load equipment for %s", l.PlayerID)
	}
	return out, nil
}

func (c *contributions) addInstance(instance *equipment.Instance) {
	if instance.Implicit != nil {
		c.sources = append(c.sources, stats.Source{
			Kind:     stats.SourceKindImplicit,
			SourceID: instance.ID,
			Name:     instance.Name,
			Stat:     instance.Implicit.Stat,
			Value:    float64(instance.Implicit.Value),
		})
	}
	for _, a := range instance.Affixes() {
		c.sources = append(c.sources, stats.Source{
			Kind:     stats.SourceKindEquipment,
			SourceID: instance.ID,
			Name:     a.Name,
			Stat:     a.Stat,
			Value:    float64(a.Value),
		})
	}
	if instance.Damage != nil {
		c.weapons = append(c.weapons, *instance.Damage)
		c.sources = append(c.sources, stats.Source{
			Kind:     stats.SourceKindWeapon,
			SourceID: instance.ID,
			Name:     fmt.Sprintf("%s %d-%d", instance.Name, instance.Damage.Min, instance.Damage.Max),
			Value:    float64(instance.Damage.Min+instance.Damage.Max) / 2,
		})
	}
}
