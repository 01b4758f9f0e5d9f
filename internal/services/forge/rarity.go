package forge

import "github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"

// rarityBand is the rarity weight table for items below MaxItemLevel
type rarityBand struct {
	MaxItemLevel int
	// Weights follow equipment.AllRarities order: normal, magic, rare, legendary
	Weights []int
}

// rarityBands shift weight from normal/magic towards rare/legendary as item level grows
var rarityBands = []rarityBand{
	{MaxItemLevel: 10, Weights: []int{60, 30, 9, 1}},
	{MaxItemLevel: 30, Weights: []int{40, 35, 20, 5}},
	{MaxItemLevel: 60, Weights: []int{25, 35, 30, 10}},
}

var topRarityWeights = []int{15, 30, 40, 15}

// RarityWeights returns the rarity weights used at an item level
func RarityWeights(itemLevel int) []int {
	for _, band := range rarityBands {
		if itemLevel < band.MaxItemLevel {
			return band.Weights
		}
	}
	return topRarityWeights
}

func (s *service) rollRarity(itemLevel int) equipment.Rarity {
	idx := s.roller.Weighted(RarityWeights(itemLevel))
	rarities := equipment.AllRarities()
	if idx < 0 || idx >= len(rarities) {
		return equipment.RarityNormal
	}
	return rarities[idx]
}

// rollCounts picks how many prefixes and suffixes a new item of the rarity gets
func (s *service) rollCounts(rarity equipment.Rarity) (prefixes, suffixes int) {
	rule := rarity.Rule()
	if rule.Fixed {
		return rule.MaxPrefixes, rule.MaxSuffixes
	}

	prefixes = s.roller.Range(rule.MinPrefixes, rule.MaxPrefixes)
	suffixes = s.roller.Range(rule.MinSuffixes, rule.MaxSuffixes)

	for prefixes+suffixes < rule.MinAffixes {
		canPrefix := prefixes < rule.MaxPrefixes
		canSuffix := suffixes < rule.MaxSuffixes
		switch {
		case canPrefix && canSuffix:
			if s.roller.Intn(2) == 0 {
				prefixes++
			} else {
				suffixes++
			}
		case canPrefix:
			prefixes++
		case canSuffix:
			suffixes++
		default:
			return prefixes, suffixes
		}
	}

	for prefixes+suffixes > rule.MaxAffixes {
		if prefixes >= suffixes && prefixes > rule.MinPrefixes {
			prefixes--
		} else {
			suffixes--
		}
	}
	return prefixes, suffixes
}
