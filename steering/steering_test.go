package steering

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("empty_map_does_not_move", func(t *testing.T) {
		var m ContextMap
		_, strength, idx := Resolve(&m)
		assert.Zero(t, strength)
		assert.Equal(t, 0, idx)
	})

	t.Run("single_interest", func(t *testing.T) {
		var m ContextMap
		m.Interest[3] = 1.0
		dir, strength, idx := Resolve(&m)
		assert.Equal(t, 3, idx)
		assert.Equal(t, 1.0, strength)
		assert.InDelta(t, math.Cos(3*math.Pi/4), dir.X, 1e-9)
		assert.InDelta(t, math.Sin(3*math.Pi/4), dir.Y, 1e-9)
	})

	t.Run("ties_keep_first", func(t *testing.T) {
		var m ContextMap
		m.Interest[2] = 0.5
		m.Interest[6] = 0.5
		_, strength, idx := Resolve(&m)
		assert.Equal(t, 2, idx)
		assert.Equal(t, 0.5, strength)
	})

	t.Run("clamps_above_one", func(t *testing.T) {
		var m ContextMap
		m.Interest[1] = 4
		_, strength, _ := Resolve(&m)
		assert.Equal(t, 1.0, strength)
	})

	t.Run("many_dangers_outweigh_interest", func(t *testing.T) {
		var m ContextMap
		m.Interest[0] = 1
		for i := 0; i < 5; i++ {
			m.Danger[0] += 0.3
		}
		m.Interest[1] = 0.2
		_, strength, idx := Resolve(&m)
		assert.Equal(t, 1, idx)
		assert.InDelta(t, 0.2, strength, 1e-9)
	})
}

func TestSeekTapersToNearestSlots(t *testing.T) {
	var onSlot ContextMap
	Seek(&onSlot, cp.Vector{}, cp.Vector{Y: 10}, 1)
	assert.InDelta(t, 1, onSlot.Interest[2], 1e-9)
	for i, v := range onSlot.Interest {
		if i != 2 {
			assert.InDelta(t, 0, v, 1e-9, "slot %d", i)
		}
	}

	var between ContextMap
	Seek(&between, cp.Vector{}, cp.ForAngle(SlotSpacing/4).Mult(10), 1)
	assert.InDelta(t, 0.75, between.Interest[0], 1e-9)
	assert.InDelta(t, 0.25, between.Interest[1], 1e-9)

	var wrap ContextMap
	Seek(&wrap, cp.Vector{}, cp.ForAngle(-SlotSpacing/2).Mult(10), 1)
	assert.InDelta(t, 0.5, wrap.Interest[0], 1e-9)
	assert.InDelta(t, 0.5, wrap.Interest[7], 1e-9)
}

func TestSeekAtTargetIsNoop(t *testing.T) {
	var m ContextMap
	Seek(&m, cp.Vector{X: 3}, cp.Vector{X: 3}, 1)
	assert.Equal(t, ContextMap{}, m)
}

func TestFlankSeekRotatesBearing(t *testing.T) {
	var m ContextMap
	FlankSeek(&m, cp.Vector{}, cp.Vector{X: 10}, SlotSpacing, 1)
	_, _, idx := Resolve(&m)
	assert.Equal(t, 1, idx)
}

func TestContributorsAreAdditiveAndOrderFree(t *testing.T) {
	from := cp.Vector{}
	target := cp.Vector{X: 100}
	obstacles := []Obstacle{{Center: cp.Vector{X: 30, Y: 5}, Radius: 10}}
	others := []cp.Vector{{X: 5, Y: 5}}

	var a, b ContextMap
	Seek(&a, from, target, 1)
	ObstacleDanger(&a, from, obstacles, 40, 0.5)
	SeparationDanger(&a, from, others, 20, 0.5)

	SeparationDanger(&b, from, others, 20, 0.5)
	ObstacleDanger(&b, from, obstacles, 40, 0.5)
	Seek(&b, from, target, 1)

	for i := 0; i < Directions; i++ {
		assert.InDelta(t, a.Interest[i], b.Interest[i], 1e-12)
		assert.InDelta(t, a.Danger[i], b.Danger[i], 1e-12)
	}
}

func TestEmptyCandidatesAreNoops(t *testing.T) {
	var m ContextMap
	ObstacleDanger(&m, cp.Vector{}, nil, 50, 1)
	SeparationDanger(&m, cp.Vector{}, nil, 50, 1)
	OccupiedAngleDanger(&m, cp.Vector{}, cp.Vector{X: 10}, nil, 1, 1)
	ProximityDanger(&m, cp.Vector{}, cp.Vector{X: 100}, 10, 1)
	assert.Equal(t, ContextMap{}, m)
}

func TestNearZeroDistancesStayFinite(t *testing.T) {
	var m ContextMap
	SeparationDanger(&m, cp.Vector{}, []cp.Vector{{}}, 20, 1)
	ProximityDanger(&m, cp.Vector{}, cp.Vector{X: 1e-9}, 10, 1)
	ObstacleDanger(&m, cp.Vector{}, []Obstacle{{Radius: 5}}, 30, 1)

	for i := 0; i < Directions; i++ {
		assert.False(t, math.IsNaN(m.Danger[i]) || math.IsInf(m.Danger[i], 0), "slot %d", i)
	}
	assert.InDelta(t, 3*MaxInverseScale, m.Danger[0], 1e-9)
}

func TestDangerScalesWithInverseDistance(t *testing.T) {
	var near, far ContextMap
	SeparationDanger(&near, cp.Vector{}, []cp.Vector{{X: 5}}, 20, 1)
	SeparationDanger(&far, cp.Vector{}, []cp.Vector{{X: 15}}, 20, 1)
	assert.Greater(t, near.Danger[0], far.Danger[0])
	assert.Zero(t, near.Danger[4])
}

func TestOccupiedAngleDangerSpreadsApproach(t *testing.T) {
	target := cp.Vector{}
	from := cp.Vector{X: -50}
	sameLane := []cp.Vector{{X: -30}}
	otherSide := []cp.Vector{{X: 30}}

	var blocked, free ContextMap
	OccupiedAngleDanger(&blocked, from, target, sameLane, math.Pi/4, 1)
	OccupiedAngleDanger(&free, from, target, otherSide, math.Pi/4, 1)

	assert.InDelta(t, 1, blocked.Danger[0], 1e-9)
	assert.Equal(t, ContextMap{}, free)
}

func TestProximityDangerInsideMinDistance(t *testing.T) {
	var m ContextMap
	Seek(&m, cp.Vector{}, cp.Vector{X: 5}, 1)
	ProximityDanger(&m, cp.Vector{}, cp.Vector{X: 5}, 10, 1)
	_, strength, idx := Resolve(&m)
	assert.NotEqual(t, 0, idx)
	assert.Zero(t, strength)
}

func TestNewFlankOffset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawLeft, sawRight := false, false
	for i := 0; i < 64; i++ {
		off := NewFlankOffset(rng, 0.3, 0.6)
		mag := math.Abs(off)
		require.GreaterOrEqual(t, mag, 0.3)
		require.LessOrEqual(t, mag, 0.6)
		if off < 0 {
			sawLeft = true
		} else {
			sawRight = true
		}
	}
	assert.True(t, sawLeft)
	assert.True(t, sawRight)
}
