package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-forge/internal/catalog"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Bases())
	assert.NotEmpty(t, c.Affixes())
	assert.NotEmpty(t, c.Skills())
	assert.NotEmpty(t, c.Runes())

	_, ok := c.Skill("fireball")
	assert.True(t, ok)
	_, ok = c.Rune("fury")
	assert.True(t, ok)
	_, ok = c.Base("does_not_exist")
	assert.False(t, ok)
}

// Legendary items need three of each position for every slot at item level 1
func TestEmbeddedPoolsCoverLegendaryAtLevelOne(t *testing.T) {
	c := catalog.MustLoad()

	for _, slot := range equipment.AllSlots() {
		slot := slot
		t.Run(string(slot), func(t *testing.T) {
			assert.NotEmpty(t, c.BasesFor(1, &slot))
			assert.GreaterOrEqual(t, len(c.AffixPool(slot, equipment.PositionPrefix, 1, nil)), 3)
			assert.GreaterOrEqual(t, len(c.AffixPool(slot, equipment.PositionSuffix, 1, nil)), 3)
		})
	}
}

func TestBasesForFiltersByLevelAndSlot(t *testing.T) {
	c := catalog.MustLoad()

	for _, b := range c.BasesFor(10, nil) {
		assert.LessOrEqual(t, b.LevelRequirement, 10)
	}

	weapon := equipment.SlotWeapon
	all := c.BasesFor(100, &weapon)
	require.NotEmpty(t, all)
	for _, b := range all {
		assert.Equal(t, equipment.SlotWeapon, b.Slot)
	}
	assert.Less(t, len(c.BasesFor(1, &weapon)), len(all))
}

func TestAffixPool(t *testing.T) {
	c := catalog.MustLoad()

	pool := c.AffixPool(equipment.SlotBoots, equipment.PositionSuffix, 100, nil)
	ids := make(map[string]bool)
	for _, a := range pool {
		assert.Equal(t, equipment.PositionSuffix, a.Position)
		assert.True(t, a.AppliesTo(equipment.SlotBoots))
		ids[a.ID] = true
	}
	assert.True(t, ids["of_the_wind"])
	assert.False(t, ids["of_precision"], "slot filter")

	excluded := c.AffixPool(equipment.SlotBoots, equipment.PositionSuffix, 100, map[string]bool{"of_the_wind": true})
	assert.Len(t, excluded, len(pool)-1)

	// ruthless has no tier below item level 40
	low := c.AffixPool(equipment.SlotWeapon, equipment.PositionPrefix, 10, nil)
	for _, a := range low {
		assert.NotEqual(t, "ruthless", a.ID)
	}
}

func TestLoadDirOverridesOneTable(t *testing.T) {
	dir := t.TempDir()
	runes := `runes:
  - id: only
    name: Only Rune
    stat: strength
    value_per_level: 1
    max_level: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "runes.yaml"), []byte(runes), 0o644))

	c, err := catalog.LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, c.Runes(), 1)
	_, ok := c.Rune("only")
	assert.True(t, ok)
	assert.NotEmpty(t, c.Skills(), "missing tables fall back to the embedded defaults")
}

func TestLoadDirRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "duplicate affix",
			file: "affixes.yaml",
			body: `affixes:
  - {id: a, position: prefix, stat: armour, tiers: [{tier: 1, min_item_level: 1, min: 1, max: 2, weight: 1}]}
  - {id: a, position: prefix, stat: armour, tiers: [{tier: 1, min_item_level: 1, min: 1, max: 2, weight: 1}]}
`,
		},
		{
			name: "inverted tier",
			file: "affixes.yaml",
			body: `affixes:
  - {id: a, position: prefix, stat: armour, tiers: [{tier: 1, min_item_level: 1, min: 5, max: 2, weight: 1}]}
`,
		},
		{
			name: "unknown slot",
			file: "bases.yaml",
			body: `bases:
  - {id: b, name: B, slot: tail, level: 1}
`,
		},
		{
			name: "empty skill table",
			file: "skills.yaml",
			body: `skills:
  - {id: s, name: S, base_damage: []}
`,
		},
		{
			name: "not yaml",
			file: "runes.yaml",
			body: "runes: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte(tt.body), 0o644))

			_, err := catalog.LoadDir(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadDirMissing(t *testing.T) {
	_, err := catalog.LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
