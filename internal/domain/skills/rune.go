package skills

import (
	"fmt"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// RuneDefinition is a passive bound to a skill slot that grants one stat
type RuneDefinition struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Stat          stats.StatType `yaml:"stat"`
	ValuePerLevel float64        `yaml:"value_per_level"`
	MaxLevel      int            `yaml:"max_level"`
}

// ValueAt returns the stat value granted at a rune level, clamped to MaxLevel
func (r *RuneDefinition) ValueAt(level int) float64 {
	if level < 1 {
		return 0
	}
	if r.MaxLevel > 0 && level > r.MaxLevel {
		level = r.MaxLevel
	}
	return r.ValuePerLevel * float64(level)
}

// Validate checks the rune maps onto a known stat
func (r *RuneDefinition) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rune must have an id")
	}
	if !r.Stat.IsValid() {
		return fmt.Errorf("rune %s: invalid stat %q", r.ID, r.Stat)
	}
	if r.MaxLevel < 1 {
		return fmt.Errorf("rune %s: max_level must be >= 1", r.ID)
	}
	return nil
}
