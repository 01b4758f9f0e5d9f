package items

import (
	"sort"
	"time"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/stats"
)

// Data is the storage schema of an equipment instance.
// Affixes are kept as ordered lists so their order survives a round trip.
type Data struct {
	ID         string        `json:"id"`
	OwnerID    string        `json:"owner_id,omitempty"`
	BaseTypeID string        `json:"base_type_id"`
	Name       string        `json:"name"`
	Slot       string        `json:"slot"`
	Icon       string        `json:"icon,omitempty"`
	Rarity     string        `json:"rarity"`
	ItemLevel  int           `json:"item_level"`
	Implicit   *ImplicitData `json:"implicit,omitempty"`
	Damage     *DamageData   `json:"damage,omitempty"`
	Prefixes   []AffixData   `json:"prefixes"`
	Suffixes   []AffixData   `json:"suffixes"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// AffixData is the storage schema of one rolled affix
type AffixData struct {
	AffixID  string `json:"affix_id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Position string `json:"position"`
	Stat     string `json:"stat"`
	Tier     int    `json:"tier"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Value    int    `json:"value"`
}

// ImplicitData is the storage schema of a rolled implicit
type ImplicitData struct {
	Stat  string `json:"stat"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Value int    `json:"value"`
}

// DamageData is the storage schema of a weapon damage range
type DamageData struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func toData(instance *equipment.Instance) *Data {
	if instance == nil {
		return nil
	}

	data := &Data{
		ID:         instance.ID,
		OwnerID:    instance.OwnerID,
		BaseTypeID: instance.BaseTypeID,
		Name:       instance.Name,
		Slot:       string(instance.Slot),
		Icon:       instance.Icon,
		Rarity:     string(instance.Rarity),
		ItemLevel:  instance.ItemLevel,
		Prefixes:   toAffixData(instance.Prefixes),
		Suffixes:   toAffixData(instance.Suffixes),
		CreatedAt:  instance.CreatedAt,
		UpdatedAt:  instance.UpdatedAt,
	}
	if instance.Implicit != nil {
		data.Implicit = &ImplicitData{
			Stat:  string(instance.Implicit.Stat),
			Min:   instance.Implicit.Min,
			Max:   instance.Implicit.Max,
			Value: instance.Implicit.Value,
		}
	}
	if instance.Damage != nil {
		data.Damage = &DamageData{Min: instance.Damage.Min, Max: instance.Damage.Max}
	}
	return data
}

func toAffixData(affixes []equipment.AffixInstance) []AffixData {
	out := make([]AffixData, len(affixes))
	for i, a := range affixes {
		out[i] = AffixData{
			AffixID:  a.AffixID,
			Name:     a.Name,
			Text:     a.Text,
			Position: string(a.Position),
			Stat:     string(a.Stat),
			Tier:     a.Tier,
			Min:      a.MinValue,
			Max:      a.MaxValue,
			Value:    a.Value,
		}
	}
	return out
}

func toInstance(data *Data) *equipment.Instance {
	if data == nil {
		return nil
	}

	instance := &equipment.Instance{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		BaseTypeID: data.BaseTypeID,
		Name:       data.Name,
		Slot:       equipment.Slot(data.Slot),
		Icon:       data.Icon,
		Rarity:     equipment.Rarity(data.Rarity),
		ItemLevel:  data.ItemLevel,
		Prefixes:   toAffixInstances(data.Prefixes),
		Suffixes:   toAffixInstances(data.Suffixes),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Implicit != nil {
		instance.Implicit = &equipment.Implicit{
			Stat:  stats.StatType(data.Implicit.Stat),
			Min:   data.Implicit.Min,
			Max:   data.Implicit.Max,
			Value: data.Implicit.Value,
		}
	}
	if data.Damage != nil {
		instance.Damage = &equipment.DamageRange{Min: data.Damage.Min, Max: data.Damage.Max}
	}
	return instance
}

func toAffixInstances(data []AffixData) []equipment.AffixInstance {
	out := make([]equipment.AffixInstance, len(data))
	for i, a := range data {
		out[i] = equipment.AffixInstance{
			AffixID:  a.AffixID,
			Name:     a.Name,
			Text:     a.Text,
			Position: equipment.AffixPosition(a.Position),
			Stat:     stats.StatType(a.Stat),
			Tier:     a.Tier,
			MinValue: a.Min,
			MaxValue: a.Max,
			Value:    a.Value,
		}
	}
	return out
}

// sortByCreated orders instances oldest first, ties broken by id
func sortByCreated(instances []*equipment.Instance) {
	sort.Slice(instances, func(i, j int) bool {
		if instances[i].CreatedAt.Equal(instances[j].CreatedAt) {
			return instances[i].ID < instances[j].ID
		}
		return instances[i].CreatedAt.Before(instances[j].CreatedAt)
	})
}
