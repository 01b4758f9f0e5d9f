package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the randomness used by item generation and crafting.
// This allows us to inject deterministic implementations for testing.
type Roller interface {
	// Intn returns a value in [0, n). n <= 0 returns 0.
	Intn(n int) int

	// Range returns a value in [min, max] inclusive. If max < min, min is returned.
	Range(min, max int) int

	// Float64 returns a value in [0, 1)
	Float64() float64

	// Weighted picks an index with probability proportional to its weight.
	// Non-positive weights are never picked; -1 means nothing could be picked.
	Weighted(weights []int) int
}

// PickWeighted maps a roll in [0, total) onto the weights.
// Shared by every Roller so they agree on how a roll lands.
func PickWeighted(weights []int, roll int) int {
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return -1
}

// TotalWeight sums the positive weights
func TotalWeight(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	return total
}
