// Package affixes rolls affix instances from the catalog.
// The forge and the currency operators share it so both draw the same way.
package affixes

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
)

// Pool is the part of the catalog the roller reads
type Pool interface {
	AffixPool(slot equipment.Slot, pos equipment.AffixPosition, itemLevel int, exclude map[string]bool) []*equipment.AffixDefinition
	Affix(id string) (*equipment.AffixDefinition, bool)
}

// Roller draws affixes and values
type Roller struct {
	pool Pool
	dice dice.Roller
}

// NewRoller creates a Roller
func NewRoller(pool Pool, roller dice.Roller) *Roller {
	return &Roller{pool: pool, dice: roller}
}

// Roll draws one affix uniformly from the applicable pool, picks one of its
// unlocked tiers by weight and rolls a value inside that tier
func (r *Roller) Roll(slot equipment.Slot, pos equipment.AffixPosition, itemLevel int, exclude map[string]bool) (equipment.AffixInstance, error) {
	candidates := r.pool.AffixPool(slot, pos, itemLevel, exclude)
	if len(candidates) == 0 {
		return equipment.AffixInstance{}, forgeerr.AffixPoolExhaustedf("no %s left for %s at item level %d", pos, slot, itemLevel).
			WithMeta("slot", string(slot)).
			WithMeta("position", string(pos))
	}

	def := candidates[r.dice.Intn(len(candidates))]
	tier, err := r.pickTier(def, itemLevel)
	if err != nil {
		return equipment.AffixInstance{}, err
	}

	value := r.dice.Range(tier.MinValue, tier.MaxValue)
	return equipment.AffixInstance{
		AffixID:  def.ID,
		Name:     def.Name,
		Text:     def.Render(value),
		Position: def.Position,
		Stat:     def.Stat,
		Tier:     tier.Tier,
		MinValue: tier.MinValue,
		MaxValue: tier.MaxValue,
		Value:    value,
	}, nil
}

func (r *Roller) pickTier(def *equipment.AffixDefinition, itemLevel int) (equipment.AffixTier, error) {
	tiers := def.EligibleTiers(itemLevel)
	weights := make([]int, len(tiers))
	for i, t := range tiers {
		weights[i] = t.Weight
	}
	idx := r.dice.Weighted(weights)
	if idx < 0 {
		return equipment.AffixTier{}, forgeerr.Internalf("affix %s has no rollable tier at item level %d", def.ID, itemLevel)
	}
	return tiers[idx], nil
}

// RerollValue returns the affix with a new value inside its existing tier
func (r *Roller) RerollValue(affix equipment.AffixInstance) equipment.AffixInstance {
	affix.Value = r.dice.Range(affix.MinValue, affix.MaxValue)
	affix.Text = r.render(affix)
	return affix
}

func (r *Roller) render(affix equipment.AffixInstance) string {
	if def, ok := r.pool.Affix(affix.AffixID); ok {
		return def.Render(affix.Value)
	}
	return fmt.Sprintf("%s %d", affix.Name, affix.Value)
}

// RollImplicit rolls the base type's implicit, nil when it has none
func (r *Roller) RollImplicit(base *equipment.BaseType) *equipment.Implicit {
	if base == nil || base.Implicit == nil {
		return nil
	}
	return &equipment.Implicit{
		Stat:  base.Implicit.Stat,
		Min:   base.Implicit.Min,
		Max:   base.Implicit.Max,
		Value: r.dice.Range(base.Implicit.Min, base.Implicit.Max),
	}
}
