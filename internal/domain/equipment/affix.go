package equipment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// AffixPosition says whether an affix is a prefix or a suffix
type AffixPosition string

const (
	PositionPrefix AffixPosition = "prefix"
	PositionSuffix AffixPosition = "suffix"
)

// IsValid checks the position is prefix or suffix
func (p AffixPosition) IsValid() bool {
	return p == PositionPrefix || p == PositionSuffix
}

// Opposite returns the other position
func (p AffixPosition) Opposite() AffixPosition {
	if p == PositionPrefix {
		return PositionSuffix
	}
	return PositionPrefix
}

func (p AffixPosition) String() string {
	return string(p)
}

// ValuePlaceholder is replaced with the rolled value when rendering an affix
const ValuePlaceholder = "{value}"

// AffixTier is one value band of an affix
type AffixTier struct {
	Tier         int `yaml:"tier" json:"tier"`
	MinItemLevel int `yaml:"min_item_level" json:"min_item_level"`
	MinValue     int `yaml:"min" json:"min"`
	MaxValue     int `yaml:"max" json:"max"`
	Weight       int `yaml:"weight" json:"weight"`
}

// Contains reports whether value lies within the tier's range
func (t AffixTier) Contains(value int) bool {
	return value >= t.MinValue && value <= t.MaxValue
}

// AffixDefinition describes an affix that can roll on generated equipment
type AffixDefinition struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Position AffixPosition  `yaml:"position"`
	Stat     stats.StatType `yaml:"stat"`
	Template string         `yaml:"template"`
	// Slots limits which slots the affix rolls on; empty means every slot
	Slots []Slot      `yaml:"slots"`
	Tiers []AffixTier `yaml:"tiers"`
}

// AppliesTo reports whether the affix may roll on the slot
func (d *AffixDefinition) AppliesTo(slot Slot) bool {
	if len(d.Slots) == 0 {
		return true
	}
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// EligibleTiers returns the tiers unlocked at the given item level
func (d *AffixDefinition) EligibleTiers(itemLevel int) []AffixTier {
	eligible := make([]AffixTier, 0, len(d.Tiers))
	for _, t := range d.Tiers {
		if t.MinItemLevel <= itemLevel {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// Tier looks up a tier by number
func (d *AffixDefinition) Tier(n int) (AffixTier, bool) {
	for _, t := range d.Tiers {
		if t.Tier == n {
			return t, true
		}
	}
	return AffixTier{}, false
}

// Render fills the template with a value
func (d *AffixDefinition) Render(value int) string {
	if d.Template == "" {
		return fmt.Sprintf("%s %d", d.Name, value)
	}
	return strings.ReplaceAll(d.Template, ValuePlaceholder, strconv.Itoa(value))
}

// Validate checks the definition is internally consistent
func (d *AffixDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("affix must have an id")
	}
	if !d.Position.IsValid() {
		return fmt.Errorf("affix %s: invalid position %q", d.ID, d.Position)
	}
	if !d.Stat.IsValid() {
		return fmt.Errorf("affix %s: invalid stat %q", d.ID, d.Stat)
	}
	for _, s := range d.Slots {
		if !s.IsValid() {
			return fmt.Errorf("affix %s: invalid slot %q", d.ID, s)
		}
	}
	if len(d.Tiers) == 0 {
		return fmt.Errorf("affix %s: at least one tier is required", d.ID)
	}
	seen := make(map[int]bool, len(d.Tiers))
	for i, t := range d.Tiers {
		if seen[t.Tier] {
			return fmt.Errorf("affix %s: duplicate tier %d", d.ID, t.Tier)
		}
		seen[t.Tier] = true
		if t.MinValue > t.MaxValue {
			return fmt.Errorf("affix %s: tier %d min (%d) must be <= max (%d)", d.ID, t.Tier, t.MinValue, t.MaxValue)
		}
		if t.Weight <= 0 {
			return fmt.Errorf("affix %s: tier %d weight must be > 0, got %d", d.ID, t.Tier, t.Weight)
		}
		if i > 0 && t.MinItemLevel < d.Tiers[i-1].MinItemLevel {
			return fmt.Errorf("affix %s: tiers must be ordered by min_item_level", d.ID)
		}
	}
	return nil
}

// AffixInstance is a rolled affix owned by exactly one equipment instance.
// The tier bounds are copied so value rerolls do not depend on the catalog.
type AffixInstance struct {
	AffixID  string         `json:"affix_id"`
	Name     string         `json:"name"`
	Text     string         `json:"text"`
	Position AffixPosition  `json:"position"`
	Stat     stats.StatType `json:"stat"`
	Tier     int            `json:"tier"`
	MinValue int            `json:"min"`
	MaxValue int            `json:"max"`
	Value    int            `json:"value"`
}

// InRange reports whether the rolled value lies inside the tier bounds
func (a *AffixInstance) InRange() bool {
	return a.Value >= a.MinValue && a.Value <= a.MaxValue
}
