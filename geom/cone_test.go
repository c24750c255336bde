package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestHitConeHalfAndQuarterCircle(t *testing.T) {
	const r = 30.0
	half := NewHitCone(cp.Vector{}, cp.Vector{X: 1}, r, math.Pi)
	quarter := NewHitCone(cp.Vector{}, cp.Vector{X: 1}, r, math.Pi/2)

	tests := []struct {
		name  string
		cone  HitCone
		point cp.Vector
		want  bool
	}{
		{"ahead_in_range", half, cp.Vector{X: r - 1}, true},
		{"behind", half, cp.Vector{X: -1}, false},
		{"perpendicular_half_circle", half, cp.Vector{Y: r - 1}, true},
		{"perpendicular_quarter_circle", quarter, cp.Vector{Y: -(r - 1)}, false},
		{"out_of_range", half, cp.Vector{X: r + 1}, false},
		{"origin_is_degenerate", half, cp.Vector{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cone.Hits(tc.point, 0))
		})
	}
}

func TestHitConeInflatesByRadius(t *testing.T) {
	cone := NewHitCone(cp.Vector{}, cp.Vector{X: 1}, 20, math.Pi/2)

	// Centre just beyond range, edge inside.
	assert.False(t, cone.Hits(cp.Vector{X: 24}, 0))
	assert.True(t, cone.Hits(cp.Vector{X: 24}, 5))

	// Centre outside the 45 degree edge, circle overlapping it.
	p := cp.ForAngle(math.Pi / 3).Mult(10)
	assert.False(t, cone.Hits(p, 0))
	assert.True(t, cone.Hits(p, 3))
}

func TestHitConeFullCircle(t *testing.T) {
	cone := NewHitCone(cp.Vector{X: 5, Y: 5}, cp.Vector{Y: 1}, 10, 2*math.Pi)
	for i := 0; i < 8; i++ {
		p := cp.Vector{X: 5, Y: 5}.Add(cp.ForAngle(float64(i) * math.Pi / 4).Mult(9))
		assert.True(t, cone.Hits(p, 0), "angle index %d", i)
	}
	assert.False(t, cone.Hits(cp.Vector{X: 5, Y: 16}, 0))
}

func TestHitConeZeroDirectionFallsBackEast(t *testing.T) {
	cone := NewHitCone(cp.Vector{}, cp.Vector{}, 10, 1)
	assert.Equal(t, cp.Vector{X: 1}, cone.Direction())
	assert.True(t, cone.Hits(cp.Vector{X: 5}, 0))
}

func TestHitsColliderAnyCircle(t *testing.T) {
	cone := NewHitCone(cp.Vector{}, cp.Vector{X: 1}, 20, math.Pi/2)
	tall := NewHitCollider(
		Circle{Offset: cp.Vector{Y: -30}, Radius: 4},
		Circle{Offset: cp.Vector{}, Radius: 4},
	)

	// Anchor ahead of the cone: the lower circle touches even though the
	// upper one and the centroid do not.
	assert.True(t, cone.HitsCollider(cp.Vector{X: 10}, &tall))
	assert.False(t, cone.HitsCollider(cp.Vector{X: 10, Y: 60}, &tall))
	assert.False(t, cone.Hits(cp.Vector{X: 10, Y: -15}, 0))

	// Missing collider degrades to a point test.
	assert.True(t, cone.HitsCollider(cp.Vector{X: 10}, nil))
	assert.False(t, cone.HitsCollider(cp.Vector{X: -10}, nil))
}

func TestColliderDerivedQuantities(t *testing.T) {
	c := NewHitCollider(
		Circle{Offset: cp.Vector{Y: -8}, Radius: 6},
		Circle{Offset: cp.Vector{}, Radius: 9},
	)
	assert.Equal(t, 9.0, c.MaxRadius())
	assert.Equal(t, 8.0, c.MaxOffset())
	assert.Equal(t, 14.0, c.BoundingRadius())

	var empty *HitCollider
	assert.Zero(t, empty.MaxRadius())
	assert.Zero(t, empty.BoundingRadius())
}

func TestEllipsePushOut(t *testing.T) {
	e := Ellipse{Center: cp.Vector{X: 100, Y: 100}, RX: 20, RY: 10}

	p, moved := e.PushOut(cp.Vector{X: 150, Y: 100}, 5)
	assert.False(t, moved)
	assert.Equal(t, cp.Vector{X: 150, Y: 100}, p)

	p, moved = e.PushOut(cp.Vector{X: 110, Y: 100}, 5)
	assert.True(t, moved)
	assert.InDelta(t, 125, p.X, 1e-9)
	assert.InDelta(t, 100, p.Y, 1e-9)

	p, moved = e.PushOut(cp.Vector{X: 100, Y: 95}, 2)
	assert.True(t, moved)
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, 88, p.Y, 1e-9)
	assert.False(t, e.Overlaps(p.Add(cp.Vector{Y: -0.01}), 2))

	p, moved = e.PushOut(e.Center, 0)
	assert.True(t, moved)
	assert.Equal(t, cp.Vector{X: 120, Y: 100}, p)
}
