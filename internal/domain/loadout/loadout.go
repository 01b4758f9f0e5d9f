package loadout

import (
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
)

// MaxSkillSlots is the number of skill slots a rune can be bound to
const MaxSkillSlots = 6

// EquippedItem binds an equipment instance to a slot
type EquippedItem struct {
	Slot       equipment.Slot `json:"slot"`
	InstanceID string         `json:"instance_id"`
}

// RuneBinding binds a leveled rune to a skill slot
type RuneBinding struct {
	SkillSlot int    `json:"skill_slot"`
	RuneID    string `json:"rune_id"`
	Level     int    `json:"level"`
}

// Loadout is everything a player has equipped that feeds the stat aggregator.
// Both lists are kept sorted so serialized loadouts compare equal.
type Loadout struct {
	PlayerID  string         `json:"player_id"`
	Equipped  []EquippedItem `json:"equipped"`
	Runes     []RuneBinding  `json:"runes"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// New returns an empty loadout
func New(playerID string) *Loadout {
	return &Loadout{
		PlayerID: playerID,
		Equipped: []EquippedItem{},
		Runes:    []RuneBinding{},
	}
}

// ItemIn returns the instance id equipped in a slot
func (l *Loadout) ItemIn(slot equipment.Slot) (string, bool) {
	for _, e := range l.Equipped {
		if e.Slot == slot {
			return e.InstanceID, true
		}
	}
	return "", false
}

// Equip puts an instance into a slot and returns whatever was there before
func (l *Loadout) Equip(slot equipment.Slot, instanceID string) (string, error) {
	if !slot.IsValid() {
		return "", fmt.Errorf("invalid slot %q", slot)
	}
	if instanceID == "" {
		return "", fmt.Errorf("instance id is required")
	}
	for i, e := range l.Equipped {
		if e.InstanceID == instanceID && e.Slot != slot {
			return "", fmt.Errorf("instance %s is already equipped in %s", instanceID, e.Slot)
		}
		if e.Slot == slot {
			previous := e.InstanceID
			l.Equipped[i].InstanceID = instanceID
			return previous, nil
		}
	}
	l.Equipped = append(l.Equipped, EquippedItem{Slot: slot, InstanceID: instanceID})
	l.sortEquipped()
	return "", nil
}

// Unequip empties a slot and returns the instance that was there
func (l *Loadout) Unequip(slot equipment.Slot) (string, bool) {
	for i, e := range l.Equipped {
		if e.Slot == slot {
			l.Equipped = append(l.Equipped[:i], l.Equipped[i+1:]...)
			return e.InstanceID, true
		}
	}
	return "", false
}

// BindRune places a rune on a skill slot, replacing any rune already there
func (l *Loadout) BindRune(binding RuneBinding) error {
	if binding.SkillSlot < 1 || binding.SkillSlot > MaxSkillSlots {
		return fmt.Errorf("skill slot must be between 1 and %d, got %d", MaxSkillSlots, binding.SkillSlot)
	}
	if binding.RuneID == "" {
		return fmt.Errorf("rune id is required")
	}
	if binding.Level < 1 {
		return fmt.Errorf("rune level must be >= 1, got %d", binding.Level)
	}
	for i, r := range l.Runes {
		if r.SkillSlot == binding.SkillSlot {
			l.Runes[i] = binding
			return nil
		}
	}
	l.Runes = append(l.Runes, binding)
	sort.Slice(l.Runes, func(i, j int) bool {
		return l.Runes[i].SkillSlot < l.Runes[j].SkillSlot
	})
	return nil
}

// UnbindRune clears a skill slot
func (l *Loadout) UnbindRune(skillSlot int) bool {
	for i, r := range l.Runes {
		if r.SkillSlot == skillSlot {
			l.Runes = append(l.Runes[:i], l.Runes[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (l *Loadout) Clone() *Loadout {
	if l == nil {
		return nil
	}
	out := *l
	out.Equipped = append([]EquippedItem{}, l.Equipped...)
	out.Runes = append([]RuneBinding{}, l.Runes...)
	return &out
}

func (l *Loadout) sortEquipped() {
	order := make(map[equipment.Slot]int, len(equipment.AllSlots()))
	for i, s := range equipment.AllSlots() {
		order[s] = i
	}
	sort.Slice(l.Equipped, func(i, j int) bool {
		return order[l.Equipped[i].Slot] < order[l.Equipped[j].Slot]
	})
}
