package skills

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// DamageType is the element a skill deals
type DamageType string

const (
	DamagePhysical  DamageType = "physical"
	DamageFire      DamageType = "fire"
	DamageCold      DamageType = "cold"
	DamageLightning DamageType = "lightning"
	DamageChaos     DamageType = "chaos"
)

// IsValid checks if the damage type is known
func (d DamageType) IsValid() bool {
	switch d {
	case DamagePhysical, DamageFire, DamageCold, DamageLightning, DamageChaos:
		return true
	}
	return false
}

// IsElemental reports whether increased elemental damage applies
func (d DamageType) IsElemental() bool {
	return d == DamageFire || d == DamageCold || d == DamageLightning
}

// Definition is a skill the damage calculator knows about
type Definition struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	// BaseDamage holds the base value per skill level, index 0 is level 1
	BaseDamage []float64 `yaml:"base_damage"`
	// WeaponDamageScale is the fraction of average weapon damage added to the base
	WeaponDamageScale float64          `yaml:"weapon_damage_scale"`
	DamageTypes       []DamageType     `yaml:"damage_types"`
	Tags              []stats.SkillTag `yaml:"tags"`
	// Cooldown is the base cooldown in seconds
	Cooldown float64 `yaml:"cooldown"`
	// MoreDamage lists skill-intrinsic "more" multipliers in percent
	MoreDamage []float64 `yaml:"more_damage"`
}

// MaxLevel is the highest level with its own damage entry
func (d *Definition) MaxLevel() int {
	return len(d.BaseDamage)
}

// BaseDamageAt returns the base damage for a level.
// Levels past the table use the last entry.
func (d *Definition) BaseDamageAt(level int) (float64, error) {
	if level < 1 {
		return 0, fmt.Errorf("skill %s: level must be >= 1, got %d", d.ID, level)
	}
	if len(d.BaseDamage) == 0 {
		return 0, fmt.Errorf("skill %s has no damage table", d.ID)
	}
	if level > len(d.BaseDamage) {
		level = len(d.BaseDamage)
	}
	return d.BaseDamage[level-1], nil
}

// HasDamageType reports whether the skill deals the damage type
func (d *Definition) HasDamageType(dt DamageType) bool {
	for _, t := range d.DamageTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// HasElementalDamage reports whether any damage type is elemental
func (d *Definition) HasElementalDamage() bool {
	for _, t := range d.DamageTypes {
		if t.IsElemental() {
			return true
		}
	}
	return false
}

// Validate checks the definition is usable by the calculator
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("skill must have an id")
	}
	if len(d.BaseDamage) == 0 {
		return fmt.Errorf("skill %s: base_damage must not be empty", d.ID)
	}
	for i, v := range d.BaseDamage {
		if v < 0 {
			return fmt.Errorf("skill %s: base_damage[%d] must be >= 0", d.ID, i)
		}
	}
	if d.WeaponDamageScale < 0 {
		return fmt.Errorf("skill %s: weapon_damage_scale must be >= 0", d.ID)
	}
	if d.Cooldown < 0 {
		return fmt.Errorf("skill %s: cooldown must be >= 0", d.ID)
	}
	for _, dt := range d.DamageTypes {
		if !dt.IsValid() {
			return fmt.Errorf("skill %s: invalid damage type %q", d.ID, dt)
		}
	}
	for _, tag := range d.Tags {
		switch tag {
		case stats.TagProjectile, stats.TagArea, stats.TagMelee, stats.TagSpell:
		default:
			return fmt.Errorf("skill %s: invalid tag %q", d.ID, tag)
		}
	}
	return nil
}
