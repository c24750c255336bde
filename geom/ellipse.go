package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Ellipse is an axis-aligned static obstacle.
type Ellipse struct {
	Center cp.Vector
	RX     float64
	RY     float64
}

// Radius approximates the ellipse with its larger semi-axis.
func (e Ellipse) Radius() float64 {
	return math.Max(e.RX, e.RY)
}

// Overlaps reports whether a circle at p with radius intrudes into the
// ellipse inflated by that radius.
func (e Ellipse) Overlaps(p cp.Vector, radius float64) bool {
	_, k, ok := e.normalized(p, radius)
	return ok && k < 1
}

// PushOut moves a circle at p with radius to the boundary of the inflated
// ellipse along its normalized offset. It returns p unchanged and false when
// there is no overlap. A circle exactly on the centre is pushed East.
func (e Ellipse) PushOut(p cp.Vector, radius float64) (cp.Vector, bool) {
	n, k, ok := e.normalized(p, radius)
	if !ok || k >= 1 {
		return p, false
	}
	rx, ry := e.RX+radius, e.RY+radius
	if k < Epsilon {
		return e.Center.Add(cp.Vector{X: rx}), true
	}
	return e.Center.Add(cp.Vector{X: n.X / k * rx, Y: n.Y / k * ry}), true
}

func (e Ellipse) normalized(p cp.Vector, radius float64) (cp.Vector, float64, bool) {
	rx, ry := e.RX+radius, e.RY+radius
	if rx < Epsilon || ry < Epsilon {
		return cp.Vector{}, 0, false
	}
	d := p.Sub(e.Center)
	n := cp.Vector{X: d.X / rx, Y: d.Y / ry}
	return n, n.Length(), true
}
