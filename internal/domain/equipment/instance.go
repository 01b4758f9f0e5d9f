package equipment

import (
	"fmt"
	"slices"
	"time"
)

// Instance is a generated piece of equipment.
// It is created by the forge and mutated only by currency operators.
type Instance struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id,omitempty"`
	BaseTypeID string          `json:"base_type_id"`
	Name       string          `json:"name"`
	Slot       Slot            `json:"slot"`
	Icon       string          `json:"icon,omitempty"`
	Rarity     Rarity          `json:"rarity"`
	ItemLevel  int             `json:"item_level"`
	Implicit   *Implicit       `json:"implicit,omitempty"`
	Damage     *DamageRange    `json:"damage,omitempty"`
	Prefixes   []AffixInstance `json:"prefixes"`
	Suffixes   []AffixInstance `json:"suffixes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// AffixCount returns the number of prefixes and suffixes
func (i *Instance) AffixCount() int {
	return len(i.Prefixes) + len(i.Suffixes)
}

// Affixes returns prefixes followed by suffixes
func (i *Instance) Affixes() []AffixInstance {
	out := make([]AffixInstance, 0, i.AffixCount())
	out = append(out, i.Prefixes...)
	return append(out, i.Suffixes...)
}

// AffixesAt returns the affixes of one position
func (i *Instance) AffixesAt(pos AffixPosition) []AffixInstance {
	if pos == PositionPrefix {
		return i.Prefixes
	}
	return i.Suffixes
}

// HasAffix reports whether the affix id is already present on either side
func (i *Instance) HasAffix(affixID string) bool {
	for _, a := range i.Prefixes {
		if a.AffixID == affixID {
			return true
		}
	}
	for _, a := range i.Suffixes {
		if a.AffixID == affixID {
			return true
		}
	}
	return false
}

// AffixIDs returns the set of affix ids present on the item
func (i *Instance) AffixIDs() map[string]bool {
	ids := make(map[string]bool, i.AffixCount())
	for _, a := range i.Prefixes {
		ids[a.AffixID] = true
	}
	for _, a := range i.Suffixes {
		ids[a.AffixID] = true
	}
	return ids
}

// CanAdd reports whether one more affix of the position fits the rarity caps
func (i *Instance) CanAdd(pos AffixPosition) bool {
	rule := i.Rarity.Rule()
	if i.AffixCount() >= rule.MaxAffixes {
		return false
	}
	if pos == PositionPrefix {
		return len(i.Prefixes) < rule.MaxPrefixes
	}
	return len(i.Suffixes) < rule.MaxSuffixes
}

// AtCap reports whether no affix of either position can be added
func (i *Instance) AtCap() bool {
	return !i.CanAdd(PositionPrefix) && !i.CanAdd(PositionSuffix)
}

// AddAffix appends an affix to its position's list
func (i *Instance) AddAffix(affix AffixInstance) error {
	if !affix.Position.IsValid() {
		return fmt.Errorf("invalid affix position %q", affix.Position)
	}
	if !i.CanAdd(affix.Position) {
		return fmt.Errorf("%s item cannot take another %s", i.Rarity, affix.Position)
	}
	if i.HasAffix(affix.AffixID) {
		return fmt.Errorf("affix %s already present", affix.AffixID)
	}
	if affix.Position == PositionPrefix {
		i.Prefixes = append(i.Prefixes, affix)
	} else {
		i.Suffixes = append(i.Suffixes, affix)
	}
	return nil
}

// ReplaceAffix swaps the affix at index of the given position
func (i *Instance) ReplaceAffix(pos AffixPosition, index int, affix AffixInstance) error {
	list := i.AffixesAt(pos)
	if index < 0 || index >= len(list) {
		return fmt.Errorf("no %s at index %d", pos, index)
	}
	if affix.Position != pos {
		return fmt.Errorf("cannot place a %s in a %s slot", affix.Position, pos)
	}
	list[index] = affix
	return nil
}

// DisplayName names magic items after their first prefix and suffix.
// Every other rarity carries the base name.
func (i *Instance) DisplayName(baseName string) string {
	if i.Rarity != RarityMagic {
		return baseName
	}
	name := baseName
	if len(i.Prefixes) > 0 {
		name = i.Prefixes[0].Name + " " + name
	}
	if len(i.Suffixes) > 0 {
		name = name + " " + i.Suffixes[0].Name
	}
	return name
}

// CheckMinimums checks the affix floors a freshly generated item of its rarity must reach
func (i *Instance) CheckMinimums() error {
	rule := i.Rarity.Rule()
	if len(i.Prefixes) < rule.MinPrefixes {
		return fmt.Errorf("%s item has %d prefixes, min %d", i.Rarity, len(i.Prefixes), rule.MinPrefixes)
	}
	if len(i.Suffixes) < rule.MinSuffixes {
		return fmt.Errorf("%s item has %d suffixes, min %d", i.Rarity, len(i.Suffixes), rule.MinSuffixes)
	}
	if i.AffixCount() < rule.MinAffixes {
		return fmt.Errorf("%s item has %d affixes, min %d", i.Rarity, i.AffixCount(), rule.MinAffixes)
	}
	return nil
}

// Validate checks the rarity caps, duplicate ids and tier ranges
func (i *Instance) Validate() error {
	if !i.Rarity.IsValid() {
		return fmt.Errorf("invalid rarity %q", i.Rarity)
	}
	if !i.Slot.IsValid() {
		return fmt.Errorf("invalid slot %q", i.Slot)
	}
	if i.ItemLevel < 1 {
		return fmt.Errorf("item level must be >= 1, got %d", i.ItemLevel)
	}
	rule := i.Rarity.Rule()
	if len(i.Prefixes) > rule.MaxPrefixes {
		return fmt.Errorf("%s item has %d prefixes, max %d", i.Rarity, len(i.Prefixes), rule.MaxPrefixes)
	}
	if len(i.Suffixes) > rule.MaxSuffixes {
		return fmt.Errorf("%s item has %d suffixes, max %d", i.Rarity, len(i.Suffixes), rule.MaxSuffixes)
	}
	if i.AffixCount() > rule.MaxAffixes {
		return fmt.Errorf("%s item has %d affixes, max %d", i.Rarity, i.AffixCount(), rule.MaxAffixes)
	}

	seen := make(map[string]bool, i.AffixCount())
	for _, a := range i.Affixes() {
		if seen[a.AffixID] {
			return fmt.Errorf("affix %s appears more than once", a.AffixID)
		}
		seen[a.AffixID] = true
		if !a.InRange() {
			return fmt.Errorf("affix %s value %d outside tier %d range [%d, %d]", a.AffixID, a.Value, a.Tier, a.MinValue, a.MaxValue)
		}
	}
	for _, a := range i.Prefixes {
		if a.Position != PositionPrefix {
			return fmt.Errorf("affix %s stored as prefix but is a %s", a.AffixID, a.Position)
		}
	}
	for _, a := range i.Suffixes {
		if a.Position != PositionSuffix {
			return fmt.Errorf("affix %s stored as suffix but is a %s", a.AffixID, a.Position)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without touching the original
func (i *Instance) Clone() *Instance {
	if i == nil {
		return nil
	}
	out := *i
	if i.Implicit != nil {
		implicit := *i.Implicit
		out.Implicit = &implicit
	}
	if i.Damage != nil {
		dmg := *i.Damage
		out.Damage = &dmg
	}
	out.Prefixes = slices.Clone(i.Prefixes)
	if out.Prefixes == nil {
		out.Prefixes = []AffixInstance{}
	}
	out.Suffixes = slices.Clone(i.Suffixes)
	if out.Suffixes == nil {
		out.Suffixes = []AffixInstance{}
	}
	return &out
}

// CanAddPrefix reports whether a prefix fits
func (i *Instance) CanAddPrefix() bool {
	return i.CanAdd(PositionPrefix)
}

// CanAddSuffix reports whether a suffix fits
func (i *Instance) CanAddSuffix() bool {
	return i.CanAdd(PositionSuffix)
}
