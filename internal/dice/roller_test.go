package dice_test

import (
	"testing"

	"github.com/KirkDiggler/dungeon-forge/internal/dice"
	mockdice "github.com/KirkDiggler/dungeon-forge/internal/dice/mock"
	"github.com/stretchr/testify/assert"
)

func TestPickWeighted(t *testing.T) {
	weights := []int{60, 0, 30, 10}

	tests := []struct {
		name string
		roll int
		want int
	}{
		{name: "first band start", roll: 0, want: 0},
		{name: "first band end", roll: 59, want: 0},
		{name: "zero weight skipped", roll: 60, want: 2},
		{name: "last band", roll: 95, want: 3},
		{name: "past total", roll: 100, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.PickWeighted(weights, tt.roll))
		})
	}
	assert.Equal(t, 100, dice.TotalWeight(weights))
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := dice.NewRandomRoller(42)

	for i := 0; i < 500; i++ {
		v := roller.Range(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)

		n := roller.Intn(4)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 4)

		f := roller.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)

		w := roller.Weighted([]int{0, 5, 0, 1})
		assert.Contains(t, []int{1, 3}, w)
	}

	assert.Equal(t, 5, roller.Range(5, 5))
	assert.Equal(t, 5, roller.Range(5, 2))
	assert.Equal(t, 0, roller.Intn(0))
	assert.Equal(t, -1, roller.Weighted([]int{0, 0}))
	assert.Equal(t, -1, roller.Weighted(nil))
}

func TestRandomRoller_SeedIsDeterministic(t *testing.T) {
	a := dice.NewRandomRoller(7)
	b := dice.NewRandomRoller(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Range(1, 1000), b.Range(1, 1000))
	}
}

func TestManualMockRoller(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{2, 9, 15, 1, 3})
	roller.SetFloats([]float64{0.25})

	assert.Equal(t, 2, roller.Intn(5))
	assert.Equal(t, 4, roller.Intn(5), "clamped into range")
	assert.Equal(t, 12, roller.Range(5, 12), "clamped to max")
	assert.Equal(t, 1, roller.Weighted([]int{10, 10}))
	assert.Equal(t, 3, roller.Weighted([]int{10, 0, 5, 1}))
	assert.Equal(t, 0, roller.Remaining())

	assert.Equal(t, 0.25, roller.Float64())
	assert.Equal(t, 0.0, roller.Float64())

	assert.Equal(t, 4, roller.Range(4, 9), "empty queue yields min")
	assert.Equal(t, 0, roller.Intn(3))
}
