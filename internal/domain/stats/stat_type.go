package stats

// StatType names one bucket of a player's aggregated stats
type StatType string

const (
	StatIncreasedDamage          StatType = "increased_damage"
	StatIncreasedPhysicalDamage  StatType = "increased_physical_damage"
	StatIncreasedElementalDamage StatType = "increased_elemental_damage"
	StatMoreDamage               StatType = "more_damage"
	StatCritChance               StatType = "crit_chance"
	StatCritMultiplier           StatType = "crit_multiplier"
	StatProjectileDamage         StatType = "projectile_damage"
	StatAreaDamage               StatType = "area_damage"
	StatMeleeDamage              StatType = "melee_damage"
	StatSpellDamage              StatType = "spell_damage"
	StatCooldownReduction        StatType = "cooldown_reduction"
	StatFireResistance           StatType = "fire_resistance"
	StatColdResistance           StatType = "cold_resistance"
	StatLightningResistance      StatType = "lightning_resistance"
	StatFlatWeaponDamage         StatType = "flat_weapon_damage"
	StatStrength                 StatType = "strength"
	StatAgility                  StatType = "agility"
	StatIntelligence             StatType = "intelligence"
	StatMaxLife                  StatType = "max_life"
	StatArmour                   StatType = "armour"
	StatMovementSpeed            StatType = "movement_speed"
)

// AllStatTypes returns every known stat type in a stable order
func AllStatTypes() []StatType {
	return []StatType{
		StatIncreasedDamage,
		StatIncreasedPhysicalDamage,
		StatIncreasedElementalDamage,
		StatMoreDamage,
		StatCritChance,
		StatCritMultiplier,
		StatProjectileDamage,
		StatAreaDamage,
		StatMeleeDamage,
		StatSpellDamage,
		StatCooldownReduction,
		StatFireResistance,
		StatColdResistance,
		StatLightningResistance,
		StatFlatWeaponDamage,
		StatStrength,
		StatAgility,
		StatIntelligence,
		StatMaxLife,
		StatArmour,
		StatMovementSpeed,
	}
}

// IsValid reports whether the stat type is known
func (s StatType) IsValid() bool {
	_, ok := appliers[s]
	return ok
}

func (s StatType) String() string {
	return string(s)
}

// SourceKind identifies where a stat contribution came from
type SourceKind string

const (
	SourceKindEquipment SourceKind = "equipment"
	SourceKindImplicit  SourceKind = "implicit"
	SourceKindRune      SourceKind = "rune"
	SourceKindWeapon    SourceKind = "weapon"
)

// Source is a single contribution to a stat bucket
type Source struct {
	Kind     SourceKind `json:"kind"`
	SourceID string     `json:"source_id"`
	Name     string     `json:"name,omitempty"`
	Stat     StatType   `json:"stat"`
	Value    float64    `json:"value"`
}
