package stats

import (
	"fmt"
	"maps"
	"slices"
)

const (
	// BaseCritChance is the crit chance every player starts with, in percent
	BaseCritChance = 5.0

	// BaseCritMultiplier is the damage multiplier of a critical strike, in percent
	BaseCritMultiplier = 150.0
)

// SkillTag mirrors skills.Tag so stats do not depend on the skill catalog
type SkillTag string

const (
	TagProjectile SkillTag = "projectile"
	TagArea       SkillTag = "area"
	TagMelee      SkillTag = "melee"
	TagSpell      SkillTag = "spell"
)

// PlayerStats is the flat aggregate of every stat source a player has.
// It is transient: rebuilt from runes and equipment whenever the cache is invalidated.
type PlayerStats struct {
	PlayerID string `json:"player_id"`

	IncreasedDamage          float64 `json:"increased_damage"`
	IncreasedPhysicalDamage  float64 `json:"increased_physical_damage"`
	IncreasedElementalDamage float64 `json:"increased_elemental_damage"`

	// MoreDamage entries each compound multiplicatively
	MoreDamage []float64 `json:"more_damage"`

	CritChance     float64 `json:"crit_chance"`
	CritMultiplier float64 `json:"crit_multiplier"`

	SkillTagBonus map[SkillTag]float64 `json:"skill_tag_bonus"`

	CooldownReduction float64 `json:"cooldown_reduction"`

	FireResistance      float64 `json:"fire_resistance"`
	ColdResistance      float64 `json:"cold_resistance"`
	LightningResistance float64 `json:"lightning_resistance"`

	WeaponDamageMin float64 `json:"weapon_damage_min"`
	WeaponDamageMax float64 `json:"weapon_damage_max"`

	Strength      float64 `json:"strength"`
	Agility       float64 `json:"agility"`
	Intelligence  float64 `json:"intelligence"`
	MaxLife       float64 `json:"max_life"`
	Armour        float64 `json:"armour"`
	MovementSpeed float64 `json:"movement_speed"`
}

// NewPlayerStats returns stats with only the base values set
func NewPlayerStats(playerID string) *PlayerStats {
	return &PlayerStats{
		PlayerID:       playerID,
		MoreDamage:     []float64{},
		CritChance:     BaseCritChance,
		CritMultiplier: BaseCritMultiplier,
		SkillTagBonus:  make(map[SkillTag]float64),
	}
}

type applier func(p *PlayerStats, value float64)

func tagApplier(tag SkillTag) applier {
	return func(p *PlayerStats, v float64) {
		if p.SkillTagBonus == nil {
			p.SkillTagBonus = make(map[SkillTag]float64)
		}
		p.SkillTagBonus[tag] += v
	}
}

// appliers maps each stat type onto the bucket it feeds
var appliers = map[StatType]applier{
	StatIncreasedDamage:          func(p *PlayerStats, v float64) { p.IncreasedDamage += v },
	StatIncreasedPhysicalDamage:  func(p *PlayerStats, v float64) { p.IncreasedPhysicalDamage += v },
	StatIncreasedElementalDamage: func(p *PlayerStats, v float64) { p.IncreasedElementalDamage += v },
	StatMoreDamage:               func(p *PlayerStats, v float64) { p.MoreDamage = append(p.MoreDamage, v) },
	StatCritChance:               func(p *PlayerStats, v float64) { p.CritChance += v },
	StatCritMultiplier:           func(p *PlayerStats, v float64) { p.CritMultiplier += v },
	StatProjectileDamage:         tagApplier(TagProjectile),
	StatAreaDamage:               tagApplier(TagArea),
	StatMeleeDamage:              tagApplier(TagMelee),
	StatSpellDamage:              tagApplier(TagSpell),
	StatCooldownReduction:        func(p *PlayerStats, v float64) { p.CooldownReduction += v },
	StatFireResistance:           func(p *PlayerStats, v float64) { p.FireResistance += v },
	StatColdResistance:           func(p *PlayerStats, v float64) { p.ColdResistance += v },
	StatLightningResistance:      func(p *PlayerStats, v float64) { p.LightningResistance += v },
	StatFlatWeaponDamage: func(p *PlayerStats, v float64) {
		p.WeaponDamageMin += v
		p.WeaponDamageMax += v
	},
	StatStrength:      func(p *PlayerStats, v float64) { p.Strength += v },
	StatAgility:       func(p *PlayerStats, v float64) { p.Agility += v },
	StatIntelligence:  func(p *PlayerStats, v float64) { p.Intelligence += v },
	StatMaxLife:       func(p *PlayerStats, v float64) { p.MaxLife += v },
	StatArmour:        func(p *PlayerStats, v float64) { p.Armour += v },
	StatMovementSpeed: func(p *PlayerStats, v float64) { p.MovementSpeed += v },
}

// Apply adds a contribution to the bucket the stat type maps to
func (p *PlayerStats) Apply(stat StatType, value float64) error {
	apply, ok := appliers[stat]
	if !ok {
		return fmt.Errorf("unknown stat type %q", stat)
	}
	apply(p, value)
	return nil
}

// ApplySource adds a single source contribution
func (p *PlayerStats) ApplySource(src Source) error {
	return p.Apply(src.Stat, src.Value)
}

// AddWeaponDamage adds a weapon's base damage range
func (p *PlayerStats) AddWeaponDamage(minDamage, maxDamage float64) {
	p.WeaponDamageMin += minDamage
	p.WeaponDamageMax += maxDamage
}

// AverageWeaponDamage returns the midpoint of the weapon damage range
func (p *PlayerStats) AverageWeaponDamage() float64 {
	return (p.WeaponDamageMin + p.WeaponDamageMax) / 2
}

// TagBonus returns the summed bonus for the given tags
func (p *PlayerStats) TagBonus(tags ...SkillTag) float64 {
	total := 0.0
	for _, tag := range tags {
		total += p.SkillTagBonus[tag]
	}
	return total
}

// Clone returns a deep copy
func (p *PlayerStats) Clone() *PlayerStats {
	if p == nil {
		return nil
	}
	out := *p
	out.MoreDamage = slices.Clone(p.MoreDamage)
	if out.MoreDamage == nil {
		out.MoreDamage = []float64{}
	}
	out.SkillTagBonus = maps.Clone(p.SkillTagBonus)
	if out.SkillTagBonus == nil {
		out.SkillTagBonus = make(map[SkillTag]float64)
	}
	return &out
}

// EngineBonuses flattens the stats the host engine applies directly to the hero
func (p *PlayerStats) EngineBonuses() map[string]float64 {
	return map[string]float64{
		string(StatStrength):      p.Strength,
		string(StatAgility):       p.Agility,
		string(StatIntelligence):  p.Intelligence,
		string(StatMaxLife):       p.MaxLife,
		string(StatArmour):        p.Armour,
		string(StatMovementSpeed): p.MovementSpeed,
	}
}
