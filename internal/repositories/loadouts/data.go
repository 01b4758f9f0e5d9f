package loadouts

import (
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/loadout"
)

// Data is the storage schema of a loadout
type Data struct {
	PlayerID  string         `json:"player_id"`
	Equipped  []EquippedData `json:"equipped"`
	Runes     []RuneData     `json:"runes"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EquippedData is one slot binding
type EquippedData struct {
	Slot       string `json:"slot"`
	InstanceID string `json:"instance_id"`
}

// RuneData is one skill slot binding
type RuneData struct {
	SkillSlot int    `json:"skill_slot"`
	RuneID    string `json:"rune_id"`
	Level     int    `json:"level"`
}

func toData(l *loadout.Loadout) *Data {
	data := &Data{
		PlayerID:  l.PlayerID,
		Equipped:  make([]EquippedData, len(l.Equipped)),
		Runes:     make([]RuneData, len(l.Runes)),
		UpdatedAt: l.UpdatedAt,
	}
	for i, e := range l.Equipped {
		data.Equipped[i] = EquippedData{Slot: string(e.Slot), InstanceID: e.InstanceID}
	}
	for i, r := range l.Runes {
		data.Runes[i] = RuneData{SkillSlot: r.SkillSlot, RuneID: r.RuneID, Level: r.Level}
	}
	return data
}

func toLoadout(data *Data) *loadout.Loadout {
	l := loadout.New(data.PlayerID)
	l.UpdatedAt = data.UpdatedAt
	for _, e := range data.Equipped {
		l.Equipped = append(l.Equipped, loadout.EquippedItem{Slot: equipment.Slot(e.Slot), InstanceID: e.InstanceID})
	}
	for _, r := range data.Runes {
		l.Runes = append(l.Runes, loadout.RuneBinding{SkillSlot: r.SkillSlot, RuneID: r.RuneID, Level: r.Level})
	}
	return l
}
