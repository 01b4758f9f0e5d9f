package equipment

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// ImplicitRange is the built-in stat a base type always carries
type ImplicitRange struct {
	Stat stats.StatType `yaml:"stat" json:"stat"`
	Min  int            `yaml:"min" json:"min"`
	Max  int            `yaml:"max" json:"max"`
}

// DamageRange is the physical damage of a weapon base
type DamageRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// BaseType is an immutable item template loaded once at startup
type BaseType struct {
	ID               string         `yaml:"id"`
	Name             string         `yaml:"name"`
	Slot             Slot           `yaml:"slot"`
	Icon             string         `yaml:"icon"`
	LevelRequirement int            `yaml:"level"`
	Implicit         *ImplicitRange `yaml:"implicit"`
	Damage           *DamageRange   `yaml:"damage"`
}

// IsWeapon reports whether the base deals weapon damage
func (b *BaseType) IsWeapon() bool {
	return b.Damage != nil
}

// Validate checks the base type is internally consistent
func (b *BaseType) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("base type must have an id")
	}
	if !b.Slot.IsValid() {
		return fmt.Errorf("base type %s: invalid slot %q", b.ID, b.Slot)
	}
	if b.LevelRequirement < 1 {
		return fmt.Errorf("base type %s: level must be >= 1, got %d", b.ID, b.LevelRequirement)
	}
	if b.Implicit != nil {
		if !b.Implicit.Stat.IsValid() {
			return fmt.Errorf("base type %s: invalid implicit stat %q", b.ID, b.Implicit.Stat)
		}
		if b.Implicit.Min > b.Implicit.Max {
			return fmt.Errorf("base type %s: implicit min (%d) must be <= max (%d)", b.ID, b.Implicit.Min, b.Implicit.Max)
		}
	}
	if b.Damage != nil {
		if b.Damage.Min < 0 || b.Damage.Min > b.Damage.Max {
			return fmt.Errorf("base type %s: invalid damage range %d-%d", b.ID, b.Damage.Min, b.Damage.Max)
		}
	}
	return nil
}

// Implicit is the rolled value of a base type's implicit
type Implicit struct {
	Stat  stats.StatType `json:"stat"`
	Min   int            `json:"min"`
	Max   int            `json:"max"`
	Value int            `json:"value"`
}
