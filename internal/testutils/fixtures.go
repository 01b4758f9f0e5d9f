package testutils

import (
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// FixedTime is the timestamp fixtures are created at
var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// CreateTestAffix creates a rolled affix with a tier range around value
func CreateTestAffix(id string, pos equipment.AffixPosition, stat stats.StatType, value int) equipment.AffixInstance {
	return equipment.AffixInstance{
		AffixID:  id,
		Name:     id,
		Text:     id,
		Position: pos,
		Stat:     stat,
		Tier:     1,
		MinValue: value - 5,
		MaxValue: value + 5,
		Value:    value,
	}
}

// CreateTestInstance creates a rare chest piece with one prefix and one suffix
func CreateTestInstance(id, ownerID string) *equipment.Instance {
	return &equipment.Instance{
		ID:         id,
		OwnerID:    ownerID,
		BaseTypeID: "padded_vest",
		Name:       "Padded Vest",
		Slot:       equipment.SlotChest,
		Rarity:     equipment.RarityRare,
		ItemLevel:  25,
		Implicit: &equipment.Implicit{
			Stat:  stats.StatMaxLife,
			Min:   10,
			Max:   20,
			Value: 15,
		},
		Prefixes: []equipment.AffixInstance{
			CreateTestAffix("heavy", equipment.PositionPrefix, stats.StatIncreasedDamage, 12),
		},
		Suffixes: []equipment.AffixInstance{
			CreateTestAffix("of_the_furnace", equipment.PositionSuffix, stats.StatFireResistance, 20),
		},
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
}

// CreateTestWeapon creates a magic weapon with a damage range and a crit suffix
func CreateTestWeapon(id, ownerID string) *equipment.Instance {
	return &equipment.Instance{
		ID:         id,
		OwnerID:    ownerID,
		BaseTypeID: "rusty_sword",
		Name:       "Rusty Sword",
		Slot:       equipment.SlotWeapon,
		Rarity:     equipment.RarityMagic,
		ItemLevel:  10,
		Damage:     &equipment.DamageRange{Min: 4, Max: 10},
		Prefixes:   []equipment.AffixInstance{},
		Suffixes: []equipment.AffixInstance{
			CreateTestAffix("of_precision", equipment.PositionSuffix, stats.StatCritChance, 10),
		},
		CreatedAt: FixedTime,
		UpdatedAt: FixedTime,
	}
}

// CreateTestLoadout equips the given instances in their slots
func CreateTestLoadout(playerID string, instances ...*equipment.Instance) *loadout.Loadout {
	l := loadout.New(playerID)
	for _, instance := range instances {
		if _, err := l.Equip(instance.Slot, instance.ID); err != nil {
			panic(err)
		}
	}
	return l
}
