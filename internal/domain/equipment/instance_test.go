package equipment_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func affix(id string, pos equipment.AffixPosition, value int) equipment.AffixInstance {
	return equipment.AffixInstance{
		AffixID:  id,
		Name:     id,
		Position: pos,
		Stat:     stats.StatIncreasedDamage,
		Tier:     1,
		MinValue: 1,
		MaxValue: 10,
		Value:    value,
	}
}

func newInstance(rarity equipment.Rarity) *equipment.Instance {
	return &equipment.Instance{
		ID:        "item-1",
		Slot:      equipment.SlotWeapon,
		Rarity:    rarity,
		ItemLevel: 10,
		Prefixes:  []equipment.AffixInstance{},
		Suffixes:  []equipment.AffixInstance{},
	}
}

func TestRarityCaps(t *testing.T) {
	tests := []struct {
		rarity      equipment.Rarity
		maxPrefixes int
		maxSuffixes int
		maxAffixes  int
	}{
		{equipment.RarityNormal, 0, 0, 0},
		{equipment.RarityMagic, 1, 1, 2},
		{equipment.RarityRare, 3, 3, 6},
		{equipment.RarityLegendary, 3, 3, 6},
	}
	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			assert.Equal(t, tt.maxPrefixes, equipment.MaxPrefixes(tt.rarity))
			assert.Equal(t, tt.maxSuffixes, equipment.MaxSuffixes(tt.rarity))
			assert.Equal(t, tt.maxAffixes, equipment.MaxAffixes(tt.rarity))
		})
	}
}

func TestRarityNext(t *testing.T) {
	next, ok := equipment.RarityNormal.Next()
	assert.True(t, ok)
	assert.Equal(t, equipment.RarityMagic, next)

	next, ok = equipment.RarityMagic.Next()
	assert.True(t, ok)
	assert.Equal(t, equipment.RarityRare, next)

	_, ok = equipment.RarityRare.Next()
	assert.False(t, ok)
	_, ok = equipment.RarityLegendary.Next()
	assert.False(t, ok)
}

func TestAddAffixRespectsCaps(t *testing.T) {
	item := newInstance(equipment.RarityMagic)

	require.NoError(t, item.AddAffix(affix("a", equipment.PositionPrefix, 5)))
	assert.False(t, item.CanAdd(equipment.PositionPrefix))
	assert.True(t, item.CanAdd(equipment.PositionSuffix))

	assert.Error(t, item.AddAffix(affix("b", equipment.PositionPrefix, 5)))
	require.NoError(t, item.AddAffix(affix("c", equipment.PositionSuffix, 5)))
	assert.True(t, item.AtCap())
}

func TestAddAffixRejectsDuplicates(t *testing.T) {
	item := newInstance(equipment.RarityRare)

	require.NoError(t, item.AddAffix(affix("a", equipment.PositionPrefix, 5)))
	err := item.AddAffix(affix("a", equipment.PositionPrefix, 6))

	assert.Error(t, err)
	assert.Len(t, item.Prefixes, 1)
}

func TestNormalCannotTakeAffixes(t *testing.T) {
	item := newInstance(equipment.RarityNormal)

	assert.True(t, item.AtCap())
	assert.Error(t, item.AddAffix(affix("a", equipment.PositionSuffix, 1)))
}

func TestReplaceAffix(t *testing.T) {
	item := newInstance(equipment.RarityRare)
	require.NoError(t, item.AddAffix(affix("a", equipment.PositionPrefix, 5)))

	require.NoError(t, item.ReplaceAffix(equipment.PositionPrefix, 0, affix("b", equipment.PositionPrefix, 7)))
	assert.Equal(t, "b", item.Prefixes[0].AffixID)

	assert.Error(t, item.ReplaceAffix(equipment.PositionPrefix, 1, affix("c", equipment.PositionPrefix, 7)))
	assert.Error(t, item.ReplaceAffix(equipment.PositionPrefix, 0, affix("c", equipment.PositionSuffix, 7)))
}

func TestValidate(t *testing.T) {
	t.Run("valid rare", func(t *testing.T) {
		item := newInstance(equipment.RarityRare)
		item.Prefixes = append(item.Prefixes, affix("a", equipment.PositionPrefix, 3))
		item.Suffixes = append(item.Suffixes, affix("b", equipment.PositionSuffix, 3))
		assert.NoError(t, item.Validate())
	})

	t.Run("too many prefixes", func(t *testing.T) {
		item := newInstance(equipment.RarityMagic)
		item.Prefixes = append(item.Prefixes,
			affix("a", equipment.PositionPrefix, 3),
			affix("b", equipment.PositionPrefix, 3),
		)
		assert.Error(t, item.Validate())
	})

	t.Run("duplicate across positions", func(t *testing.T) {
		item := newInstance(equipment.RarityRare)
		item.Prefixes = append(item.Prefixes, affix("a", equipment.PositionPrefix, 3))
		dup := affix("a", equipment.PositionSuffix, 3)
		item.Suffixes = append(item.Suffixes, dup)
		assert.Error(t, item.Validate())
	})

	t.Run("value out of range", func(t *testing.T) {
		item := newInstance(equipment.RarityRare)
		item.Prefixes = append(item.Prefixes, affix("a", equipment.PositionPrefix, 11))
		assert.Error(t, item.Validate())
	})

	t.Run("wrong side", func(t *testing.T) {
		item := newInstance(equipment.RarityRare)
		item.Prefixes = append(item.Prefixes, affix("a", equipment.PositionSuffix, 3))
		assert.Error(t, item.Validate())
	})
}

func TestCloneIsDeep(t *testing.T) {
	item := newInstance(equipment.RarityRare)
	item.Implicit = &equipment.Implicit{Stat: stats.StatArmour, Min: 1, Max: 5, Value: 3}
	require.NoError(t, item.AddAffix(affix("a", equipment.PositionPrefix, 5)))

	clone := item.Clone()
	clone.Prefixes[0].Value = 9
	clone.Implicit.Value = 1
	clone.Suffixes = append(clone.Suffixes, affix("b", equipment.PositionSuffix, 1))

	assert.Equal(t, 5, item.Prefixes[0].Value)
	assert.Equal(t, 3, item.Implicit.Value)
	assert.Empty(t, item.Suffixes)
}

func TestParseSlotAndRarity(t *testing.T) {
	slot, err := equipment.ParseSlot("ring")
	require.NoError(t, err)
	assert.Equal(t, equipment.SlotRing, slot)

	_, err = equipment.ParseSlot("tail")
	assert.Error(t, err)

	rarity, err := equipment.ParseRarity("legendary")
	require.NoError(t, err)
	assert.Equal(t, equipment.RarityLegendary, rarity)

	_, err = equipment.ParseRarity("mythic")
	assert.Error(t, err)

	assert.Len(t, equipment.AllSlots(), 9)
}

func TestDisplayName(t *testing.T) {
	magic := newInstance(equipment.RarityMagic)
	assert.Equal(t, "Sword", magic.DisplayName("Sword"))

	magic.Prefixes = append(magic.Prefixes, affix("Jagged", equipment.PositionPrefix, 3))
	assert.Equal(t, "Jagged Sword", magic.DisplayName("Sword"))

	magic.Suffixes = append(magic.Suffixes, affix("of Fire", equipment.PositionSuffix, 3))
	assert.Equal(t, "Jagged Sword of Fire", magic.DisplayName("Sword"))

	rare := magic.Clone()
	rare.Rarity = equipment.RarityRare
	assert.Equal(t, "Sword", rare.DisplayName("Sword"))
}

func TestCheckMinimums(t *testing.T) {
	assert.NoError(t, newInstance(equipment.RarityNormal).CheckMinimums())
	assert.Error(t, newInstance(equipment.RarityMagic).CheckMinimums())

	rare := newInstance(equipment.RarityRare)
	rare.Prefixes = append(rare.Prefixes, affix("a", equipment.PositionPrefix, 2), affix("b", equipment.PositionPrefix, 2))
	require.Error(t, rare.CheckMinimums())

	rare.Suffixes = append(rare.Suffixes, affix("c", equipment.PositionSuffix, 2))
	assert.NoError(t, rare.CheckMinimums())
}
