package currency

//go:generate mockgen -destination=mock/mock_service.go -package=mockcurrency -source=service.go

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/affixes"
	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/events"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
	"github.com/KirkDiggler/dungeon-forge/internal/repositories/items"
)

// Operation names, also used as metric labels
const (
	OpRerollOneAffix    = "reroll_one_affix"
	OpAddRandomAffix    = "add_random_affix"
	OpRerollAffixValues = "reroll_affix_values"
	OpUpgradeRarity     = "upgrade_rarity"
)

// Service applies crafting currencies to stored equipment instances.
// Every operation either succeeds and persists or leaves the stored instance untouched.
type Service interface {
	// RerollOneAffix replaces one affix with a different one of the same position
	RerollOneAffix(ctx context.Context, input *RerollInput) (*Result, error)

	// AddRandomAffix adds one affix to a side that has room
	AddRandomAffix(ctx context.Context, instanceID string) (*Result, error)

	// RerollAffixValues rerolls every affix value inside its tier
	RerollAffixValues(ctx context.Context, instanceID string) (*Result, error)

	// UpgradeRarity raises normal to magic or magic to rare and adds one affix
	UpgradeRarity(ctx context.Context, instanceID string) (*Result, error)
}

// RerollInput selects the affix to replace.
// With both Position and Index set that exact affix is replaced. With only
// Position a random affix of that side is picked. Otherwise any affix may be.
type RerollInput struct {
	InstanceID string
	Position   *equipment.AffixPosition
	Index      *int
}

// AffixChange describes one affix before and after an operation.
// Old fields are empty for added affixes.
type AffixChange struct {
	Position   equipment.AffixPosition `json:"position"`
	Index      int                     `json:"index"`
	OldAffixID string                  `json:"old_affix_id,omitempty"`
	OldName    string                  `json:"old_name,omitempty"`
	OldValue   int                     `json:"old_value"`
	NewAffixID string                  `json:"new_affix_id"`
	NewName    string                  `json:"new_name"`
	NewValue   int                     `json:"new_value"`
	NewText    string                  `json:"new_text"`
}

// Result is returned by every successful operation
type Result struct {
	Success   bool                `json:"success"`
	Operation string              `json:"operation"`
	Instance  *equipment.Instance `json:"instance"`
	Changes   []AffixChange       `json:"changes"`
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog    *catalog.Catalog
	Repository items.Repository
	Roller     dice.Roller      // Optional - defaults to a time-seeded roller
	Metrics    *metrics.Metrics // Optional
	Events     *events.Bus      // Optional - receives item.modified after each stored change
	Logger     *slog.Logger     // Optional - defaults to slog.Default()
	Clock      func() time.Time // Optional - defaults to time.Now
}

type service struct {
	catalog *catalog.Catalog
	repo    items.Repository
	dice    dice.Roller
	affixes *affixes.Roller
	metrics *metrics.Metrics
	events  *events.Bus
	logger  *slog.Logger
	clock   func() time.Time
}

// NewService creates a new currency service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalog == nil || cfg.Repository == nil {
		panic("currency ServiceConfig requires Catalog and Repository")
	}

	svc := &service{
		catalog: cfg.Catalog,
		repo:    cfg.Repository,
		dice:    cfg.Roller,
		metrics: cfg.Metrics,
		events:  cfg.Events,
		logger:  cfg.Logger,
		clock:   cfg.Clock,
	}
	if svc.dice == nil {
		svc.dice = dice.NewRandomRoller(0)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.clock == nil {
		svc.clock = time.Now
	}
	svc.affixes = affixes.NewRoller(cfg.Catalog, svc.dice)

	return svc
}

type mutation func(instance *equipment.Instance) ([]AffixChange, error)

// apply loads the instance, mutates a clone and stores it only when everything succeeded
func (s *service) apply(ctx context.Context, op, instanceID string, mutate mutation) (*Result, error) {
	result, err := s.doApply(ctx, op, instanceID, mutate)
	if err != nil {
		s.metrics.RecordCurrencyOperation(op, forgeerr.Reason(err))
		s.logger.DebugContext(ctx, "currency operation failed",
			"operation", op,
			"instance_id", instanceID,
			"reason", forgeerr.Reason(err))
		return nil, err
	}

	result.Operation = op
	s.metrics.RecordCurrencyOperation(op, "success")
	s.logger.InfoContext(ctx, "currency operation applied",
		"operation", op,
		"instance_id", instanceID,
		"changes", len(result.Changes))
	return result, nil
}

func (s *service) doApply(ctx context.Context, op, instanceID string, mutate mutation) (*Result, error) {
	if instanceID == "" {
		return nil, forgeerr.InvalidIndexf("instance id is required")
	}

	stored, err := s.repo.Get(ctx, instanceID)
	if err != nil {
		if forgeerr.IsNotFound(err) {
			return nil, forgeerr.InvalidIndexf("no equipment instance %s", instanceID).
				WithMeta("instance_id", instanceID)
		}
		return nil, err
	}

	working := stored.Clone()
	changes, err := mutate(working)
	if err != nil {
		return nil, err
	}
	if base, ok := s.catalog.Base(working.BaseTypeID); ok {
		working.Name = working.DisplayName(base.Name)
	}
	if err := working.Validate(); err != nil {
		return nil, forgeerr.Wrap(err, "operation produced an invalid instance")
	}

	working.UpdatedAt = s.clock()
	if err := s.repo.Update(ctx, working); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to store instance %s", instanceID)
	}

	if err := s.notify(ctx, op, working); err != nil {
		if rbErr := s.repo.Update(ctx, stored); rbErr != nil {
			s.logger.ErrorContext(ctx, "failed to restore instance after listener error",
				"instance_id", instanceID,
				"error", rbErr)
			return nil, forgeerr.Wrapf(errors.Join(err, rbErr), "failed to restore %s", instanceID)
		}
		return nil, err
	}

	return &Result{
		Success:  true,
		Instance: working,
		Changes:  changes,
	}, nil
}

// notify tells item.modified listeners whose stats just changed
func (s *service) notify(ctx context.Context, op string, instance *equipment.Instance) error {
	if instance.OwnerID == "" {
		return nil
	}
	err := s.events.Emit(ctx, &events.Event{
		Type:       events.EventTypeItemModified,
		PlayerID:   instance.OwnerID,
		InstanceID: instance.ID,
		Operation:  op,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "item.modified listener failed",
			"instance_id", instance.ID,
			"player_id", instance.OwnerID,
			"error", err)
		return forgeerr.Wrapf(err, "listeners rejected the change to %s", instance.ID)
	}
	return nil
}

// RerollOneAffix replaces one affix with a different one of the same position
func (s *service) RerollOneAffix(ctx context.Context, input *RerollInput) (*Result, error) {
	if input == nil {
		return nil, forgeerr.InvalidArgument("input is required")
	}

	return s.apply(ctx, OpRerollOneAffix, input.InstanceID, func(instance *equipment.Instance) ([]AffixChange, error) {
		if instance.AffixCount() == 0 {
			return nil, forgeerr.NoAffixesPresentf("%s has no affixes to reroll", instance.ID)
		}

		pos, idx, err := s.pickTarget(instance, input)
		if err != nil {
			return nil, err
		}

		old := instance.AffixesAt(pos)[idx]
		replacement, err := s.affixes.Roll(instance.Slot, pos, instance.ItemLevel, instance.AffixIDs())
		if err != nil {
			return nil, err
		}
		if err := instance.ReplaceAffix(pos, idx, replacement); err != nil {
			return nil, forgeerr.Wrap(err, "failed to replace affix")
		}

		return []AffixChange{{
			Position:   pos,
			Index:      idx,
			OldAffixID: old.AffixID,
			OldName:    old.Name,
			OldValue:   old.Value,
			NewAffixID: replacement.AffixID,
			NewName:    replacement.Name,
			NewValue:   replacement.Value,
			NewText:    replacement.Text,
		}}, nil
	})
}

func (s *service) pickTarget(instance *equipment.Instance, input *RerollInput) (equipment.AffixPosition, int, error) {
	if input.Position != nil {
		pos := *input.Position
		if !pos.IsValid() {
			return "", 0, forgeerr.InvalidIndexf("invalid affix position %q", pos)
		}
		list := instance.AffixesAt(pos)
		if input.Index == nil {
			if len(list) == 0 {
				return "", 0, forgeerr.InvalidIndexf("%s has no %s", instance.ID, pos)
			}
			return pos, s.dice.Intn(len(list)), nil
		}
		if *input.Index < 0 || *input.Index >= len(list) {
			return "", 0, forgeerr.InvalidIndexf("%s index %d out of range, item has %d", pos, *input.Index, len(list)).
				WithMeta("index", *input.Index)
		}
		return pos, *input.Index, nil
	}

	// without a position the index addresses prefixes followed by suffixes
	idx := 0
	if input.Index != nil {
		idx = *input.Index
		if idx < 0 || idx >= instance.AffixCount() {
			return "", 0, forgeerr.InvalidIndexf("affix index %d out of range, item has %d", idx, instance.AffixCount()).
				WithMeta("index", idx)
		}
	} else {
		idx = s.dice.Intn(instance.AffixCount())
	}
	if idx < len(instance.Prefixes) {
		return equipment.PositionPrefix, idx, nil
	}
	return equipment.PositionSuffix, idx - len(instance.Prefixes), nil
}

// AddRandomAffix adds one affix to a side that has room
func (s *service) AddRandomAffix(ctx context.Context, instanceID string) (*Result, error) {
	return s.apply(ctx, OpAddRandomAffix, instanceID, func(instance *equipment.Instance) ([]AffixChange, error) {
		change, err := s.addAffix(instance)
		if err != nil {
			return nil, err
		}
		return []AffixChange{change}, nil
	})
}

func (s *service) addAffix(instance *equipment.Instance) (AffixChange, error) {
	canPrefix := instance.CanAddPrefix()
	canSuffix := instance.CanAddSuffix()
	if !canPrefix && !canSuffix {
		return AffixChange{}, forgeerr.AffixCapReachedf("%s %s is full", instance.Rarity, instance.ID).
			WithMeta("rarity", string(instance.Rarity))
	}

	var order []equipment.AffixPosition
	switch {
	case canPrefix && canSuffix:
		first := equipment.PositionPrefix
		if s.dice.Intn(2) == 1 {
			first = equipment.PositionSuffix
		}
		order = []equipment.AffixPosition{first, first.Opposite()}
	case canPrefix:
		order = []equipment.AffixPosition{equipment.PositionPrefix}
	default:
		order = []equipment.AffixPosition{equipment.PositionSuffix}
	}

	var lastErr error
	for _, pos := range order {
		affix, err := s.affixes.Roll(instance.Slot, pos, instance.ItemLevel, instance.AffixIDs())
		if err != nil {
			if forgeerr.Is(err, forgeerr.CodeAffixPoolExhausted) {
				lastErr = err
				continue
			}
			return AffixChange{}, err
		}
		if err := instance.AddAffix(affix); err != nil {
			return AffixChange{}, forgeerr.Wrap(err, "failed to add affix")
		}
		return AffixChange{
			Position:   pos,
			Index:      len(instance.AffixesAt(pos)) - 1,
			NewAffixID: affix.AffixID,
			NewName:    affix.Name,
			NewValue:   affix.Value,
			NewText:    affix.Text,
		}, nil
	}
	return AffixChange{}, lastErr
}

// RerollAffixValues rerolls every affix value inside its tier
func (s *service) RerollAffixValues(ctx context.Context, instanceID string) (*Result, error) {
	return s.apply(ctx, OpRerollAffixValues, instanceID, func(instance *equipment.Instance) ([]AffixChange, error) {
		if instance.AffixCount() == 0 {
			return nil, forgeerr.NoAffixesPresentf("%s has no affixes to reroll", instance.ID)
		}

		changes := make([]AffixChange, 0, instance.AffixCount())
		for _, pos := range []equipment.AffixPosition{equipment.PositionPrefix, equipment.PositionSuffix} {
			list := instance.AffixesAt(pos)
			for i, old := range list {
				rerolled := s.affixes.RerollValue(old)
				list[i] = rerolled
				changes = append(changes, AffixChange{
					Position:   pos,
					Index:      i,
					OldAffixID: old.AffixID,
					OldName:    old.Name,
					OldValue:   old.Value,
					NewAffixID: rerolled.AffixID,
					NewName:    rerolled.Name,
					NewValue:   rerolled.Value,
					NewText:    rerolled.Text,
				})
			}
		}
		return changes, nil
	})
}

// UpgradeRarity raises normal to magic or magic to rare and adds one affix
func (s *service) UpgradeRarity(ctx context.Context, instanceID string) (*Result, error) {
	return s.apply(ctx, OpUpgradeRarity, instanceID, func(instance *equipment.Instance) ([]AffixChange, error) {
		next, ok := instance.Rarity.Next()
		if !ok {
			return nil, forgeerr.AffixCapReachedf("%s items cannot be upgraded", instance.Rarity).
				WithMeta("rarity", string(instance.Rarity))
		}

		instance.Rarity = next
		change, err := s.addAffix(instance)
		if err != nil {
			return nil, err
		}
		return []AffixChange{change}, nil
	})
}
