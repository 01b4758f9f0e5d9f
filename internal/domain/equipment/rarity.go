package equipment

import "fmt"

// Rarity determines how many affixes an item may carry
type Rarity string

const (
	RarityNormal    Rarity = "normal"
	RarityMagic     Rarity = "magic"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns the rarities from most to least common
func AllRarities() []Rarity {
	return []Rarity{RarityNormal, RarityMagic, RarityRare, RarityLegendary}
}

// RarityRule holds the affix limits of one rarity
type RarityRule struct {
	MinPrefixes int
	MaxPrefixes int
	MinSuffixes int
	MaxSuffixes int
	// MinAffixes is the least number of affixes a freshly generated item carries
	MinAffixes int
	// MaxAffixes caps prefixes+suffixes independently of the per-side caps
	MaxAffixes int
	// Fixed items always roll at their maximum counts
	Fixed bool
}

var rarityRules = map[Rarity]RarityRule{
	RarityNormal:    {},
	RarityMagic:     {MaxPrefixes: 1, MaxSuffixes: 1, MinAffixes: 1, MaxAffixes: 2},
	RarityRare:      {MinPrefixes: 1, MaxPrefixes: 3, MinSuffixes: 1, MaxSuffixes: 3, MinAffixes: 2, MaxAffixes: 6},
	RarityLegendary: {MinPrefixes: 3, MaxPrefixes: 3, MinSuffixes: 3, MaxSuffixes: 3, MinAffixes: 6, MaxAffixes: 6, Fixed: true},
}

// IsValid checks if the rarity is known
func (r Rarity) IsValid() bool {
	_, ok := rarityRules[r]
	return ok
}

func (r Rarity) String() string {
	return string(r)
}

// Rule returns the affix limits for the rarity; unknown rarities get Normal limits
func (r Rarity) Rule() RarityRule {
	return rarityRules[r]
}

// Next returns the rarity a currency upgrade moves to.
// Rare and Legendary cannot be upgraded.
func (r Rarity) Next() (Rarity, bool) {
	switch r {
	case RarityNormal:
		return RarityMagic, true
	case RarityMagic:
		return RarityRare, true
	default:
		return r, false
	}
}

// MaxPrefixes returns the prefix cap for a rarity
func MaxPrefixes(r Rarity) int {
	return r.Rule().MaxPrefixes
}

// MaxSuffixes returns the suffix cap for a rarity
func MaxSuffixes(r Rarity) int {
	return r.Rule().MaxSuffixes
}

// MaxAffixes returns the total affix cap for a rarity
func MaxAffixes(r Rarity) int {
	return r.Rule().MaxAffixes
}

// ParseRarity converts user input into a Rarity
func ParseRarity(raw string) (Rarity, error) {
	r := Rarity(raw)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown rarity %q", raw)
	}
	return r, nil
}
