package equipment

import "fmt"

// Slot is one of the nine places an item can be equipped
type Slot string

const (
	SlotWeapon  Slot = "weapon"
	SlotOffhand Slot = "offhand"
	SlotHelmet  Slot = "helmet"
	SlotChest   Slot = "chest"
	SlotGloves  Slot = "gloves"
	SlotBoots   Slot = "boots"
	SlotBelt    Slot = "belt"
	SlotAmulet  Slot = "amulet"
	SlotRing    Slot = "ring"
)

// AllSlots returns every equipment slot in display order
func AllSlots() []Slot {
	return []Slot{
		SlotWeapon,
		SlotOffhand,
		SlotHelmet,
		SlotChest,
		SlotGloves,
		SlotBoots,
		SlotBelt,
		SlotAmulet,
		SlotRing,
	}
}

// IsValid checks if the slot is one of the known slots
func (s Slot) IsValid() bool {
	for _, known := range AllSlots() {
		if s == known {
			return true
		}
	}
	return false
}

func (s Slot) String() string {
	return string(s)
}

// ParseSlot converts user input into a Slot
func ParseSlot(raw string) (Slot, error) {
	slot := Slot(raw)
	if !slot.IsValid() {
		return "", fmt.Errorf("unknown equipment slot %q", raw)
	}
	return slot, nil
}
