package dice

import (
	"math/rand/v2"
	"sync"
	"time"
)

// randomRoller implements Roller over a seeded PCG source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random roller.
// A zero seed uses the current time.
func NewRandomRoller(seed uint64) Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// Range implements Roller.Range
func (r *randomRoller) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Weighted implements Roller.Weighted
func (r *randomRoller) Weighted(weights []int) int {
	total := TotalWeight(weights)
	if total == 0 {
		return -1
	}
	return PickWeighted(weights, r.Intn(total))
}
