// Package damage turns a skill and a player's aggregated stats into a damage breakdown.
//
// Stages always run in the same order: base, increased, more, crit expectation and
// skill type. Each stage is a multiplier so the breakdown can be shown to players.
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=mockdamage -source=service.go

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/skills"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
	forgeerr "github.com/KirkDiggler/dungeon-forge/internal/errors"
	"github.com/KirkDiggler/dungeon-forge/internal/metrics"
)

const (
	// MaxCooldownReduction caps cooldown reduction, in percent
	MaxCooldownReduction = 75.0

	// MinCooldown is the shortest cooldown a skill with a cooldown can reach, in seconds
	MinCooldown = 0.1

	// MaxResistance caps elemental resistance, in percent
	MaxResistance = 75.0

	// MinResistance is the lowest resistance can be pushed, in percent
	MinResistance = -100.0
)

// SkillCatalog is the part of the catalog the calculator reads
type SkillCatalog interface {
	Skill(id string) (*skills.Definition, bool)
}

// Service calculates skill damage
type Service interface {
	// Calculate returns the damage breakdown of a skill at a level for the given stats
	Calculate(ctx context.Context, skillID string, skillLevel int, playerStats *stats.PlayerStats) (*Breakdown, error)
}

// Breakdown is every stage of a damage calculation
type Breakdown struct {
	SkillID    string `json:"skill_id"`
	SkillLevel int    `json:"skill_level"`

	BaseDamage          float64 `json:"base_damage"`
	WeaponDamage        float64 `json:"weapon_damage"`
	IncreasedMultiplier float64 `json:"increased_multiplier"`
	MoreMultiplier      float64 `json:"more_multiplier"`
	CritMultiplier      float64 `json:"crit_multiplier"`
	SkillTypeMultiplier float64 `json:"skill_type_multiplier"`

	FinalDamage   float64 `json:"final_damage"`
	DisplayDamage int     `json:"display_damage"`

	Cooldown float64 `json:"cooldown"`
	DPS      float64 `json:"dps"`
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Skills  SkillCatalog
	Metrics *metrics.Metrics // Optional
	Logger  *slog.Logger     // Optional - defaults to slog.Default()
}

type service struct {
	skills  SkillCatalog
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewService creates a new damage service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Skills == nil {
		panic("damage ServiceConfig requires Skills")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		skills:  cfg.Skills,
		metrics: cfg.Metrics,
		logger:  logger,
	}
}

func (s *service) Calculate(ctx context.Context, skillID string, skillLevel int, playerStats *stats.PlayerStats) (*Breakdown, error) {
	skill, ok := s.skills.Skill(skillID)
	if !ok {
		return nil, forgeerr.UnknownSkillf("unknown skill %q", skillID).WithMeta("skill_id", skillID)
	}
	if playerStats == nil {
		playerStats = stats.NewPlayerStats("")
	}

	base, err := skill.BaseDamageAt(skillLevel)
	if err != nil {
		return nil, forgeerr.WrapWithCode(err, forgeerr.CodeInvalidArgument, "invalid skill level")
	}

	b := &Breakdown{
		SkillID:      skill.ID,
		SkillLevel:   skillLevel,
		WeaponDamage: skill.WeaponDamageScale * playerStats.AverageWeaponDamage(),
	}
	b.BaseDamage = base + b.WeaponDamage
	b.IncreasedMultiplier = IncreasedMultiplier(IncreasedPercent(skill, playerStats))
	b.MoreMultiplier = MoreMultiplier(playerStats.MoreDamage, skill.MoreDamage)
	b.CritMultiplier = CritMultiplier(playerStats.CritChance, playerStats.CritMultiplier)
	b.SkillTypeMultiplier = 1 + playerStats.TagBonus(skill.Tags...)/100

	b.FinalDamage = b.BaseDamage *
		b.IncreasedMultiplier *
		b.MoreMultiplier *
		b.CritMultiplier *
		b.SkillTypeMultiplier
	b.DisplayDamage = int(math.Round(b.FinalDamage))

	b.Cooldown = Cooldown(skill.Cooldown, playerStats.CooldownReduction)
	b.DPS = b.FinalDamage / math.Max(b.Cooldown, MinCooldown)

	s.metrics.RecordDamageCalculation(skill.ID)
	s.logger.DebugContext(ctx, "calculated skill damage",
		"skill", skill.ID,
		"level", skillLevel,
		"player_id", playerStats.PlayerID,
		"final", b.FinalDamage)

	return b, nil
}

// IncreasedPercent sums the increased buckets that apply to a skill.
// Generic increased damage always applies. Physical applies to skills dealing
// physical damage and elemental applies once to skills dealing any element.
func IncreasedPercent(skill *skills.Definition, p *stats.PlayerStats) float64 {
	total := p.IncreasedDamage
	if skill.HasDamageType(skills.DamagePhysical) {
		total += p.IncreasedPhysicalDamage
	}
	if skill.HasElementalDamage() {
		total += p.IncreasedElementalDamage
	}
	return total
}

// IncreasedMultiplier converts summed increased percent into a multiplier, never below zero
func IncreasedMultiplier(percent float64) float64 {
	return math.Max(0, 1+percent/100)
}

// MoreMultiplier compounds every entry of every list
func MoreMultiplier(lists ...[]float64) float64 {
	mult := 1.0
	for _, entries := range lists {
		for _, v := range entries {
			mult *= math.Max(0, 1+v/100)
		}
	}
	return mult
}

// CritMultiplier is the expected damage multiplier from critical strikes.
// Chance is clamped to [0, 100]; a crit multiplier below 100 is treated as 100.
func CritMultiplier(chance, multiplier float64) float64 {
	chance = math.Min(100, math.Max(0, chance))
	bonus := math.Max(0, multiplier-100)
	return 1 + (chance/100)*(bonus/100)
}

// Cooldown applies cooldown reduction to a base cooldown in seconds
func Cooldown(base, reduction float64) float64 {
	if base <= 0 {
		return 0
	}
	reduction = math.Min(MaxCooldownReduction, math.Max(0, reduction))
	return math.Max(MinCooldown, base*(1-reduction/100))
}

// Mitigate reduces incoming damage by a resistance percent
func Mitigate(amount, resistance float64) float64 {
	resistance = math.Min(MaxResistance, math.Max(MinResistance, resistance))
	return amount * (1 - resistance/100)
}

// Resistance returns the player's resistance against a damage type
func Resistance(p *stats.PlayerStats, damageType skills.DamageType) float64 {
	switch damageType {
	case skills.DamageFire:
		return p.FireResistance
	case skills.DamageCold:
		return p.ColdResistance
	case skills.DamageLightning:
		return p.LightningResistance
	default:
		return 0
	}
}
