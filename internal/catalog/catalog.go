// Package catalog holds the static base type, affix, skill and rune tables.
// A Catalog is immutable once built and safe for concurrent reads.
package catalog

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/skills"
)

// Catalog indexes the static tables by id while keeping file order for queries
type Catalog struct {
	bases       []*equipment.BaseType
	basesByID   map[string]*equipment.BaseType
	affixes     []*equipment.AffixDefinition
	affixesByID map[string]*equipment.AffixDefinition
	skills      []*skills.Definition
	skillsByID  map[string]*skills.Definition
	runes       []*skills.RuneDefinition
	runesByID   map[string]*skills.RuneDefinition
}

// New validates the tables and builds a catalog from them
func New(
	bases []*equipment.BaseType,
	affixes []*equipment.AffixDefinition,
	skillDefs []*skills.Definition,
	runes []*skills.RuneDefinition,
) (*Catalog, error) {
	c := &Catalog{
		basesByID:   make(map[string]*equipment.BaseType, len(bases)),
		affixesByID: make(map[string]*equipment.AffixDefinition, len(affixes)),
		skillsByID:  make(map[string]*skills.Definition, len(skillDefs)),
		runesByID:   make(map[string]*skills.RuneDefinition, len(runes)),
	}

	for _, b := range bases {
		if b == nil {
			continue
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.basesByID[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate base type id %q", b.ID)
		}
		c.basesByID[b.ID] = b
		c.bases = append(c.bases, b)
	}

	for _, a := range affixes {
		if a == nil {
			continue
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.affixesByID[a.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate affix id %q", a.ID)
		}
		c.affixesByID[a.ID] = a
		c.affixes = append(c.affixes, a)
	}

	for _, s := range skillDefs {
		if s == nil {
			continue
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.skillsByID[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate skill id %q", s.ID)
		}
		c.skillsByID[s.ID] = s
		c.skills = append(c.skills, s)
	}

	for _, r := range runes {
		if r == nil {
			continue
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		if _, dup := c.runesByID[r.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate rune id %q", r.ID)
		}
		c.runesByID[r.ID] = r
		c.runes = append(c.runes, r)
	}

	return c, nil
}

// Bases returns every base type in file order
func (c *Catalog) Bases() []*equipment.BaseType {
	return append([]*equipment.BaseType(nil), c.bases...)
}

// BasesFor returns the base types whose level requirement is met by itemLevel,
// optionally restricted to one slot
func (c *Catalog) BasesFor(itemLevel int, slot *equipment.Slot) []*equipment.BaseType {
	var out []*equipment.BaseType
	for _, b := range c.bases {
		if b.LevelRequirement > itemLevel {
			continue
		}
		if slot != nil && b.Slot != *slot {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Base looks up a base type
func (c *Catalog) Base(id string) (*equipment.BaseType, bool) {
	b, ok := c.basesByID[id]
	return b, ok
}

// Affixes returns every affix definition in file order
func (c *Catalog) Affixes() []*equipment.AffixDefinition {
	return append([]*equipment.AffixDefinition(nil), c.affixes...)
}

// Affix looks up an affix definition
func (c *Catalog) Affix(id string) (*equipment.AffixDefinition, bool) {
	a, ok := c.affixesByID[id]
	return a, ok
}

// AffixPool returns the affixes that can roll on a slot at a position and item level.
// Ids in exclude are left out. Order follows the file so seeded rolls are repeatable.
func (c *Catalog) AffixPool(slot equipment.Slot, pos equipment.AffixPosition, itemLevel int, exclude map[string]bool) []*equipment.AffixDefinition {
	var pool []*equipment.AffixDefinition
	for _, a := range c.affixes {
		if a.Position != pos || !a.AppliesTo(slot) {
			continue
		}
		if exclude[a.ID] {
			continue
		}
		if len(a.EligibleTiers(itemLevel)) == 0 {
			continue
		}
		pool = append(pool, a)
	}
	return pool
}

// Skills returns every skill in file order
func (c *Catalog) Skills() []*skills.Definition {
	return append([]*skills.Definition(nil), c.skills...)
}

// Skill looks up a skill definition
func (c *Catalog) Skill(id string) (*skills.Definition, bool) {
	s, ok := c.skillsByID[id]
	return s, ok
}

// Runes returns every rune in file order
func (c *Catalog) Runes() []*skills.RuneDefinition {
	return append([]*skills.RuneDefinition(nil), c.runes...)
}

// Rune looks up a rune definition
func (c *Catalog) Rune(id string) (*skills.RuneDefinition, bool) {
	r, ok := c.runesByID[id]
	return r, ok
}
