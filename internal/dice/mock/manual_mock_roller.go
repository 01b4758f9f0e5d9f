package mockdice

import (
	"sync"

	"github.com/KirkDiggler/dungeon-forge/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results.
// Every call consumes the next queued value; an empty queue yields 0 and values
// outside the requested bounds are clamped into them.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	floats    []float64
	floatIdx  int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues one more roll result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetFloats replaces the queued Float64 results
func (m *ManualMockRoller) SetFloats(floats []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.floatIdx = 0
}

// Reset clears all queued values
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.floats = nil
	m.floatIdx = 0
}

// Remaining returns how many queued rolls have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) next() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0
	}
	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Intn implements dice.Roller.Intn
func (m *ManualMockRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return clamp(m.next(), 0, n-1)
}

// Range implements dice.Roller.Range. Queued values are the result itself, not an offset.
func (m *ManualMockRoller) Range(min, max int) int {
	if max <= min {
		return min
	}
	m.mu.Lock()
	empty := m.rollIndex >= len(m.rolls)
	m.mu.Unlock()
	if empty {
		return min
	}
	return clamp(m.next(), min, max)
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.floatIdx >= len(m.floats) {
		return 0
	}
	f := m.floats[m.floatIdx]
	m.floatIdx++
	return f
}

// Weighted implements dice.Roller.Weighted. The queued value is the chosen index.
func (m *ManualMockRoller) Weighted(weights []int) int {
	if dice.TotalWeight(weights) == 0 {
		return -1
	}
	idx := clamp(m.next(), 0, len(weights)-1)
	if weights[idx] <= 0 {
		// fall through to the first pickable index
		return dice.PickWeighted(weights, 0)
	}
	return idx
}
