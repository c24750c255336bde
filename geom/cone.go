// Package geom holds the pure hit-test math shared by every attack.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Epsilon is the distance under which a point counts as the cone origin.
const Epsilon = 1e-6

// edgeSlack keeps points lying exactly on the cone edge inside it despite
// float rounding of cos(pi/2) and friends.
const edgeSlack = 1e-9

// HitCone is a directional sector with its trigonometry precomputed. Build
// one per attack resolution and test it against every candidate.
type HitCone struct {
	origin    cp.Vector
	direction cp.Vector
	rng       float64
	cosHalf   float64
	sinHalf   float64
}

// NewHitCone builds a cone. fullAngle is the whole arc width in radians;
// a zero direction falls back to East.
func NewHitCone(origin, direction cp.Vector, rng, fullAngle float64) HitCone {
	dir := unitOr(direction, cp.Vector{X: 1})
	half := fullAngle / 2
	return HitCone{
		origin:    origin,
		direction: dir,
		rng:       rng,
		cosHalf:   math.Cos(half),
		sinHalf:   math.Sin(half),
	}
}

func (c HitCone) Origin() cp.Vector    { return c.origin }
func (c HitCone) Direction() cp.Vector { return c.direction }
func (c HitCone) Range() float64       { return c.rng }

// Bounds is the broad-phase box of every point the cone can reach.
func (c HitCone) Bounds() cp.BB {
	return cp.NewBBForCircle(c.origin, c.rng)
}

// Hits reports whether a circle of pointRadius centred on point touches the
// cone. The cone edge is inflated by the radius so edges, not only centres,
// count.
func (c HitCone) Hits(point cp.Vector, pointRadius float64) bool {
	d := point.Sub(c.origin)
	dist := d.Length()
	if dist < Epsilon {
		return false
	}
	if dist-pointRadius >= c.rng {
		return false
	}
	return d.Dot(c.direction) > dist*(c.cosHalf-edgeSlack)-pointRadius*c.sinHalf
}

// HitsCollider is true when any circle of the collider touches the cone.
// A nil or empty collider is tested as a zero-radius point at pos.
func (c HitCone) HitsCollider(pos cp.Vector, collider *HitCollider) bool {
	if collider == nil || len(collider.Circles) == 0 {
		return c.Hits(pos, 0)
	}
	if !c.Bounds().Intersects(collider.Bounds(pos)) {
		return false
	}
	for _, circle := range collider.Circles {
		if c.Hits(pos.Add(circle.Offset), circle.Radius) {
			return true
		}
	}
	return false
}

func unitOr(v, fallback cp.Vector) cp.Vector {
	l := v.Length()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return v.Mult(1 / l)
}

// UnitOr normalizes v, returning fallback when v is degenerate.
func UnitOr(v, fallback cp.Vector) cp.Vector {
	return unitOr(v, fallback)
}
